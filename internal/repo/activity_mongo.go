package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"mergington.dev/backend/internal/model"
	"mergington.dev/backend/internal/pkg/apierr"
)

const driverMongo = "mongo"

// activityDocument is the stored shape of an activity; the name is the document _id.
type activityDocument struct {
	Name            string   `bson:"_id"`
	Description     string   `bson:"description"`
	Schedule        string   `bson:"schedule"`
	MaxParticipants int      `bson:"max_participants"`
	Participants    []string `bson:"participants"`
}

func (d *activityDocument) toModel() *model.Activity {
	return &model.Activity{
		Name:            d.Name,
		Description:     d.Description,
		Schedule:        d.Schedule,
		MaxParticipants: d.MaxParticipants,
		Participants:    nonNilParticipants(d.Participants),
	}
}

type MongoActivity struct {
	coll *mongo.Collection
}

func NewMongoActivity(coll *mongo.Collection) *MongoActivity {
	return &MongoActivity{coll: coll}
}

func (r *MongoActivity) Count(ctx context.Context) (int64, error) {
	defer observe(driverMongo, "count")()

	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "repo: mongo: count activities")
	}
	return n, nil
}

func (r *MongoActivity) InsertActivities(ctx context.Context, activities []model.Activity) error {
	defer observe(driverMongo, "insert")()

	if len(activities) == 0 {
		return nil
	}

	docs := lo.Map(activities, func(a model.Activity, _ int) any {
		return activityDocument{
			Name:            a.Name,
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			// a nil slice would be stored as null, which $addToSet refuses to update
			Participants: nonNilParticipants(a.Participants),
		}
	})

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return errors.Wrap(err, "repo: mongo: insert activities")
	}
	return nil
}

func (r *MongoActivity) GetActivities(ctx context.Context) ([]*model.Activity, error) {
	defer observe(driverMongo, "find")()

	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "repo: mongo: find activities")
	}

	var docs []*activityDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "repo: mongo: decode activities")
	}

	return lo.Map(docs, func(d *activityDocument, _ int) *model.Activity {
		return d.toModel()
	}), nil
}

func (r *MongoActivity) GetActivityByName(ctx context.Context, name string) (*model.Activity, error) {
	defer observe(driverMongo, "find_one")()

	var doc activityDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: name}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apierr.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "repo: mongo: find activity")
	}

	return doc.toModel(), nil
}

func (r *MongoActivity) AddParticipant(ctx context.Context, name, email string) (int64, error) {
	defer observe(driverMongo, "add_participant")()

	return r.updateRoster(ctx, name, bson.D{{Key: "$addToSet", Value: bson.D{{Key: "participants", Value: email}}}})
}

func (r *MongoActivity) RemoveParticipant(ctx context.Context, name, email string) (int64, error) {
	defer observe(driverMongo, "remove_participant")()

	return r.updateRoster(ctx, name, bson.D{{Key: "$pull", Value: bson.D{{Key: "participants", Value: email}}}})
}

func (r *MongoActivity) updateRoster(ctx context.Context, name string, update bson.D) (int64, error) {
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: name}}, update)
	if err != nil {
		return 0, errors.Wrap(err, "repo: mongo: update roster")
	}
	return res.ModifiedCount, nil
}

func (r *MongoActivity) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}
