package infra

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"

	"mergington.dev/backend/internal/app/appconfig"
)

const connectTimeout = time.Second * 5

func Mongo(conf *appconfig.Config, lc fx.Lifecycle) (*mongo.Client, error) {
	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI(conf.MongoURL).
		SetAppName("mergington-backend").
		SetConnectTimeout(connectTimeout))
	if err != nil {
		log.Error().Err(err).Msg("infra: mongo: failed to create client")
		return nil, errors.Wrap(err, "infra: mongo: create client")
	}

	// check mongo connection
	err = connectWithRetry(context.Background(), conf, "mongo", func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		return client.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		log.Error().Err(err).Msg("infra: mongo: failed to ping deployment")
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "infra: mongo: ping")
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	log.Info().
		Str("evt.name", "infra.mongo.connected").
		Str("database", conf.MongoDatabase).
		Msg("connected to mongo")

	return client, nil
}

func MongoCollection(conf *appconfig.Config, client *mongo.Client) *mongo.Collection {
	return client.Database(conf.MongoDatabase).Collection(conf.MongoCollection)
}
