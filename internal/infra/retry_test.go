package infra

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"mergington.dev/backend/internal/app/appconfig"
)

func TestConnectWithRetry(t *testing.T) {
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		StoreConnectAttempts: 3,
		StoreConnectDelay:    time.Millisecond,
	}}
	errRefused := errors.New("connection refused")

	calls := 0
	err := connectWithRetry(context.Background(), conf, "test", func(context.Context) error {
		calls++
		if calls < 3 {
			return errRefused
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)

	calls = 0
	err = connectWithRetry(context.Background(), conf, "test", func(context.Context) error {
		calls++
		return errRefused
	})
	assert.ErrorIs(t, err, errRefused)
	assert.Equal(t, 3, calls)
}
