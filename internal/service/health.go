package service

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"mergington.dev/backend/internal/repo"
)

var (
	ErrStoreNotReachable = errors.New("activity store not reachable")
	ErrNATSNotReachable  = errors.New("nats not reachable")
)

type Health struct {
	ActivityStore repo.ActivityStore
	NATS          *nats.Conn
}

func NewHealth(store repo.ActivityStore, nc *nats.Conn) *Health {
	return &Health{
		ActivityStore: store,
		NATS:          nc,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.ActivityStore.Ping(ctx); err != nil {
			return errors.Wrap(ErrStoreNotReachable, err.Error())
		}
		return nil
	})

	// nats pings on its own every 20 seconds (configured at infra/nats.go); only the status is checked here
	g.Go(func() error {
		if s.NATS == nil {
			return nil
		}
		status := s.NATS.Status()
		if status != nats.CONNECTED && status != nats.DRAINING_PUBS && status != nats.DRAINING_SUBS {
			return errors.Wrap(ErrNATSNotReachable, status.String())
		}
		return nil
	})

	return g.Wait()
}
