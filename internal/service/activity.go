package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"go.uber.org/fx"

	"mergington.dev/backend/internal/app/appconfig"
	"mergington.dev/backend/internal/model"
	"mergington.dev/backend/internal/pkg/apierr"
	"mergington.dev/backend/internal/pkg/observability"
	"mergington.dev/backend/internal/repo"
)

var (
	ErrActivityNotFound = apierr.ErrNotFound.Msg("Activity not found")
	ErrAlreadySignedUp  = apierr.ErrConflict.Msg("Already signed up")
	ErrNotRegistered    = apierr.ErrConflict.Msg("Student is not registered for this activity")
	ErrUpdateFailed     = apierr.ErrInternalError.Msg("Failed to update activity")
)

const (
	opSignup     = "signup"
	opUnregister = "unregister"
)

// Activity answers roster queries and applies roster changes. It holds no state
// of its own: every call reads the store and at most one conditional update
// follows. Two concurrent calls for the same activity and email may both pass
// the membership check; the store's single-document update decides which one
// modifies the roster and the other reports ErrUpdateFailed.
type Activity struct {
	ActivityStore repo.ActivityStore
	RosterEvents  *RosterEvents
}

func NewActivity(store repo.ActivityStore, events *RosterEvents) *Activity {
	return &Activity{
		ActivityStore: store,
		RosterEvents:  events,
	}
}

// Seed inserts model.DefaultActivities when the store holds no activity and
// returns how many activities were inserted.
func (s *Activity) Seed(ctx context.Context) (int, error) {
	n, err := s.ActivityStore.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "seed: count activities")
	}
	if n > 0 {
		log.Info().
			Str("evt.name", "seed.skipped").
			Int64("existing", n).
			Msg("activity store already seeded")
		return 0, nil
	}

	if err := s.ActivityStore.InsertActivities(ctx, model.DefaultActivities); err != nil {
		return 0, errors.Wrap(err, "seed: insert activities")
	}

	inserted := len(model.DefaultActivities)
	observability.SeededActivities.Set(float64(inserted))
	log.Info().
		Str("evt.name", "seed.inserted").
		Int("inserted", inserted).
		Msg("seeded activity store")

	return inserted, nil
}

// RegisterSeed runs Seed when the server starts.
func RegisterSeed(conf *appconfig.Config, lc fx.Lifecycle, s *Activity) {
	if !conf.AppContext.IsServer() || !conf.SeedOnStart {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := s.Seed(ctx)
			return err
		},
	})
}

// GetActivities lists every activity keyed by name, in store order.
func (s *Activity) GetActivities(ctx context.Context) (*model.ActivityDirectory, error) {
	activities, err := s.ActivityStore.GetActivities(ctx)
	if err != nil {
		return nil, err
	}

	directory := model.NewActivityDirectory(len(activities))
	for _, activity := range activities {
		var details model.ActivityDetails
		if err := copier.Copy(&details, activity); err != nil {
			return nil, errors.Wrapf(err, "copy details of %q", activity.Name)
		}
		directory.Put(activity.Name, &details)
	}

	return directory, nil
}

func (s *Activity) getActivity(ctx context.Context, name string) (*model.Activity, error) {
	activity, err := s.ActivityStore.GetActivityByName(ctx, name)
	if errors.Is(err, apierr.ErrNotFound) {
		return nil, ErrActivityNotFound
	}
	return activity, err
}

// SignUp adds email to the roster of the named activity. Capacity is not checked.
func (s *Activity) SignUp(ctx context.Context, name, email string) (string, error) {
	activity, err := s.getActivity(ctx, name)
	if err != nil {
		return "", s.failed(opSignup, err)
	}

	if lo.Contains(activity.Participants, email) {
		return "", s.failed(opSignup, ErrAlreadySignedUp)
	}

	modified, err := s.ActivityStore.AddParticipant(ctx, name, email)
	if err != nil {
		return "", s.failed(opSignup, err)
	}
	if modified == 0 {
		log.Ctx(ctx).Warn().
			Str("evt.name", "roster.signup.not_modified").
			Str("activity", name).
			Msg("roster changed between read and update")
		return "", s.failed(opSignup, ErrUpdateFailed)
	}

	observability.RosterMutations.WithLabelValues(opSignup, observability.OutcomeSuccess).Inc()
	s.RosterEvents.Publish(ctx, RosterEventSignup, name, email)

	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the roster of the named activity.
func (s *Activity) Unregister(ctx context.Context, name, email string) (string, error) {
	activity, err := s.getActivity(ctx, name)
	if err != nil {
		return "", s.failed(opUnregister, err)
	}

	if !lo.Contains(activity.Participants, email) {
		return "", s.failed(opUnregister, ErrNotRegistered)
	}

	modified, err := s.ActivityStore.RemoveParticipant(ctx, name, email)
	if err != nil {
		return "", s.failed(opUnregister, err)
	}
	if modified == 0 {
		log.Ctx(ctx).Warn().
			Str("evt.name", "roster.unregister.not_modified").
			Str("activity", name).
			Msg("roster changed between read and update")
		return "", s.failed(opUnregister, ErrUpdateFailed)
	}

	observability.RosterMutations.WithLabelValues(opUnregister, observability.OutcomeSuccess).Inc()
	s.RosterEvents.Publish(ctx, RosterEventUnregister, name, email)

	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

func (s *Activity) failed(op string, err error) error {
	outcome := observability.OutcomeFailed
	switch {
	case errors.Is(err, apierr.ErrNotFound):
		outcome = observability.OutcomeNotFound
	case errors.Is(err, apierr.ErrConflict):
		outcome = observability.OutcomeConflict
	}
	observability.RosterMutations.WithLabelValues(op, outcome).Inc()
	return err
}
