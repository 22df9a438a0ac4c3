package repo

import (
	"context"
	"time"

	"mergington.dev/backend/internal/model"
	"mergington.dev/backend/internal/pkg/observability"
)

// ActivityStore persists activities. Implementations must apply AddParticipant
// and RemoveParticipant as single atomic updates of one activity and report how
// many activities the update modified.
type ActivityStore interface {
	// Count returns the number of stored activities.
	Count(ctx context.Context) (int64, error)

	// InsertActivities stores activities in the given order.
	InsertActivities(ctx context.Context, activities []model.Activity) error

	// GetActivities returns every activity in store order.
	GetActivities(ctx context.Context) ([]*model.Activity, error)

	// GetActivityByName returns apierr.ErrNotFound when no activity has the given name.
	GetActivityByName(ctx context.Context, name string) (*model.Activity, error)

	// AddParticipant appends email to the roster of the named activity unless it is already present.
	AddParticipant(ctx context.Context, name, email string) (modified int64, err error)

	// RemoveParticipant removes email from the roster of the named activity.
	RemoveParticipant(ctx context.Context, name, email string) (modified int64, err error)

	Ping(ctx context.Context) error
}

func observe(driver, operation string) func() {
	start := time.Now()
	return func() {
		observability.StoreOperationDuration.
			WithLabelValues(driver, operation).
			Observe(time.Since(start).Seconds())
	}
}

func nonNilParticipants(participants []string) []string {
	if participants == nil {
		return []string{}
	}
	return participants
}
