package infra

import (
	"context"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"mergington.dev/backend/internal/app/appconfig"
)

const (
	RosterStreamName    = "mergington-rosters"
	RosterSubjectPrefix = "ROSTER."
)

// NATS connects to NATS and prepares the roster stream. Both returned values
// are nil when no NATS URL is configured.
func NATS(conf *appconfig.Config, lc fx.Lifecycle) (*nats.Conn, nats.JetStreamContext, error) {
	if conf.NatsURL == "" {
		log.Info().
			Str("evt.name", "infra.nats.disabled").
			Msg("roster events are disabled due to missing NATS URL")
		return nil, nil, nil
	}

	errorHandler := func(conn *nats.Conn, sub *nats.Subscription, err error) {
		evt := log.Error().
			Str("evt.name", "nats.error").
			Err(err).
			Str("conn.url", conn.ConnectedUrlRedacted())
		if sub != nil {
			evt = evt.Str("sub.subject", sub.Subject)
		}
		evt.Msg("nats error")
	}

	nc, err := nats.Connect(conf.NatsURL,
		nats.Name("mergington-backend"),
		nats.PingInterval(time.Second*20),
		nats.ErrorHandler(errorHandler),
	)
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to connect to NATS")
		return nil, nil, err
	}

	js, err := nc.JetStream(nats.PublishAsyncMaxPending(128))
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to initialize NATS JetStream")
		nc.Close()
		return nil, nil, err
	}

	_, err = js.AddStream(&nats.StreamConfig{
		Name: RosterStreamName,
		Subjects: []string{
			RosterSubjectPrefix + "*",
		},
		Retention:  nats.LimitsPolicy,
		Discard:    nats.DiscardOld,
		Storage:    nats.FileStorage,
		MaxAge:     time.Hour * 24 * 30,
		Replicas:   1,
		Duplicates: time.Minute * 10,
	})
	if err != nil {
		log.Warn().Err(err).Msg("infra: nats: failed to create jetstream stream: is it already created?")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return nc.Drain()
		},
	})

	return nc, js, nil
}
