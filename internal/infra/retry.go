package infra

import (
	"context"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"mergington.dev/backend/internal/app/appconfig"
)

// connectWithRetry calls dial until it succeeds or the configured attempts are exhausted.
func connectWithRetry(ctx context.Context, conf *appconfig.Config, component string, dial func(ctx context.Context) error) error {
	return retry.Do(
		func() error {
			return dial(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(conf.StoreConnectAttempts),
		retry.Delay(conf.StoreConnectDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Err(err).
				Str("evt.name", "infra."+component+".retry").
				Uint("attempt", n+1).
				Msg("failed to connect, retrying")
		}),
	)
}
