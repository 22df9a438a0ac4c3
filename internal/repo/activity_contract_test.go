package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington.dev/backend/internal/model"
	"mergington.dev/backend/internal/pkg/apierr"
)

// testActivityStore runs the behaviour every ActivityStore must share against an empty store.
func testActivityStore(t *testing.T, store ActivityStore) {
	ctx := context.Background()

	n, err := store.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n, "store must start empty")

	activities, err := store.GetActivities(ctx)
	require.NoError(t, err)
	assert.Empty(t, activities)

	require.NoError(t, store.InsertActivities(ctx, model.DefaultActivities))

	t.Run("CountsInsertedActivities", func(t *testing.T) {
		n, err := store.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, len(model.DefaultActivities), n)
	})

	t.Run("ListsInInsertionOrder", func(t *testing.T) {
		activities, err := store.GetActivities(ctx)
		require.NoError(t, err)
		require.Len(t, activities, len(model.DefaultActivities))
		for i, a := range activities {
			assert.Equal(t, model.DefaultActivities[i].Name, a.Name)
			assert.Equal(t, model.DefaultActivities[i].Description, a.Description)
			assert.Equal(t, model.DefaultActivities[i].Schedule, a.Schedule)
			assert.Equal(t, model.DefaultActivities[i].MaxParticipants, a.MaxParticipants)
			assert.Equal(t, model.DefaultActivities[i].Participants, a.Participants)
		}
	})

	t.Run("GetsByName", func(t *testing.T) {
		a, err := store.GetActivityByName(ctx, "Chess Club")
		require.NoError(t, err)
		assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, a.Participants)

		_, err = store.GetActivityByName(ctx, "Nonexistent Club")
		assert.ErrorIs(t, err, apierr.ErrNotFound)
	})

	t.Run("AddsParticipantOnce", func(t *testing.T) {
		modified, err := store.AddParticipant(ctx, "Basketball Team", "amy@mergington.edu")
		require.NoError(t, err)
		assert.EqualValues(t, 1, modified)

		modified, err = store.AddParticipant(ctx, "Basketball Team", "amy@mergington.edu")
		require.NoError(t, err)
		assert.EqualValues(t, 0, modified, "duplicate append must not modify the roster")

		a, err := store.GetActivityByName(ctx, "Basketball Team")
		require.NoError(t, err)
		assert.Equal(t, []string{"amy@mergington.edu"}, a.Participants)
	})

	t.Run("AppendsAtTheEnd", func(t *testing.T) {
		_, err := store.AddParticipant(ctx, "Chess Club", "zoe@mergington.edu")
		require.NoError(t, err)

		a, err := store.GetActivityByName(ctx, "Chess Club")
		require.NoError(t, err)
		assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu", "zoe@mergington.edu"}, a.Participants)
	})

	t.Run("RemovesParticipant", func(t *testing.T) {
		modified, err := store.RemoveParticipant(ctx, "Basketball Team", "amy@mergington.edu")
		require.NoError(t, err)
		assert.EqualValues(t, 1, modified)

		modified, err = store.RemoveParticipant(ctx, "Basketball Team", "amy@mergington.edu")
		require.NoError(t, err)
		assert.EqualValues(t, 0, modified)

		a, err := store.GetActivityByName(ctx, "Basketball Team")
		require.NoError(t, err)
		assert.Empty(t, a.Participants)
		assert.NotNil(t, a.Participants)
	})

	t.Run("UpdatesOfUnknownActivityModifyNothing", func(t *testing.T) {
		modified, err := store.AddParticipant(ctx, "Nonexistent Club", "x@y.edu")
		require.NoError(t, err)
		assert.EqualValues(t, 0, modified)

		modified, err = store.RemoveParticipant(ctx, "Nonexistent Club", "x@y.edu")
		require.NoError(t, err)
		assert.EqualValues(t, 0, modified)
	})

	t.Run("Pings", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}
