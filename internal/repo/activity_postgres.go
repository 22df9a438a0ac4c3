package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/uptrace/bun"
	"go.uber.org/fx"

	"mergington.dev/backend/internal/model"
	"mergington.dev/backend/internal/repo/selector"
)

const driverPostgres = "postgres"

// activityRow is the stored shape of an activity. Position keeps the insertion
// order so listings come back in seed order.
type activityRow struct {
	bun.BaseModel `bun:"table:activities,alias:a"`

	Name            string   `bun:"name,pk"`
	Position        int      `bun:"position,notnull"`
	Description     string   `bun:"description,notnull"`
	Schedule        string   `bun:"schedule,notnull"`
	MaxParticipants int      `bun:"max_participants,notnull"`
	Participants    []string `bun:"participants,array,notnull"`
}

func (r *activityRow) toModel() *model.Activity {
	return &model.Activity{
		Name:            r.Name,
		Description:     r.Description,
		Schedule:        r.Schedule,
		MaxParticipants: r.MaxParticipants,
		Participants:    nonNilParticipants(r.Participants),
	}
}

type PostgresActivity struct {
	db  *bun.DB
	sel selector.S[activityRow]
}

// NewPostgresActivity creates the activities table on start if it does not exist yet.
func NewPostgresActivity(db *bun.DB, lc fx.Lifecycle) *PostgresActivity {
	r := &PostgresActivity{db: db, sel: selector.New[activityRow](db)}
	lc.Append(fx.Hook{
		OnStart: r.CreateTable,
	})
	return r
}

func (r *PostgresActivity) CreateTable(ctx context.Context) error {
	_, err := r.db.NewCreateTable().
		Model((*activityRow)(nil)).
		IfNotExists().
		Exec(ctx)
	return errors.Wrap(err, "repo: postgres: create activities table")
}

func (r *PostgresActivity) Count(ctx context.Context) (int64, error) {
	defer observe(driverPostgres, "count")()

	n, err := r.sel.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "repo: postgres: count activities")
	}
	return int64(n), nil
}

func (r *PostgresActivity) InsertActivities(ctx context.Context, activities []model.Activity) error {
	defer observe(driverPostgres, "insert")()

	if len(activities) == 0 {
		return nil
	}

	rows := lo.Map(activities, func(a model.Activity, i int) *activityRow {
		return &activityRow{
			Name:            a.Name,
			Position:        i,
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    nonNilParticipants(a.Participants),
		}
	})

	_, err := r.db.NewInsert().Model(&rows).Exec(ctx)
	return errors.Wrap(err, "repo: postgres: insert activities")
}

func (r *PostgresActivity) GetActivities(ctx context.Context) ([]*model.Activity, error) {
	defer observe(driverPostgres, "find")()

	rows, err := r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("position ASC")
	})
	if err != nil {
		return nil, errors.Wrap(err, "repo: postgres: select activities")
	}

	return lo.Map(rows, func(row *activityRow, _ int) *model.Activity {
		return row.toModel()
	}), nil
}

func (r *PostgresActivity) GetActivityByName(ctx context.Context, name string) (*model.Activity, error) {
	defer observe(driverPostgres, "find_one")()

	row, err := r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("name = ?", name)
	})
	if err != nil {
		return nil, err
	}

	return row.toModel(), nil
}

// AddParticipant appends email only when it is absent, mirroring a set-like push.
func (r *PostgresActivity) AddParticipant(ctx context.Context, name, email string) (int64, error) {
	defer observe(driverPostgres, "add_participant")()

	res, err := r.db.NewUpdate().
		Model((*activityRow)(nil)).
		Set("participants = array_append(participants, ?)", email).
		Where("name = ?", name).
		Where("NOT (? = ANY(participants))", email).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "repo: postgres: add participant")
	}
	return res.RowsAffected()
}

func (r *PostgresActivity) RemoveParticipant(ctx context.Context, name, email string) (int64, error) {
	defer observe(driverPostgres, "remove_participant")()

	res, err := r.db.NewUpdate().
		Model((*activityRow)(nil)).
		Set("participants = array_remove(participants, ?)", email).
		Where("name = ?", name).
		Where("? = ANY(participants)", email).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "repo: postgres: remove participant")
	}
	return res.RowsAffected()
}

func (r *PostgresActivity) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
