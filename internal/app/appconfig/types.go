package appconfig

import (
	"fmt"
	"strings"
)

type StoreDriver string

const (
	StoreMongo    StoreDriver = "mongo"
	StorePostgres StoreDriver = "postgres"
	StoreMemory   StoreDriver = "memory"
)

func (d *StoreDriver) Decode(value string) error {
	switch v := StoreDriver(strings.ToLower(strings.TrimSpace(value))); v {
	case StoreMongo, StorePostgres, StoreMemory:
		*d = v
		return nil
	default:
		return fmt.Errorf("invalid store driver: expect one of mongo, postgres, memory, but got: %s", value)
	}
}
