package repo

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington.dev/backend/internal/model"
	"mergington.dev/backend/internal/pkg/apierr"
	"mergington.dev/backend/internal/pkg/observability"
)

func TestMemoryActivity(t *testing.T) {
	testActivityStore(t, NewMemoryActivity())
}

func TestMemoryActivityReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryActivity()
	require.NoError(t, store.InsertActivities(ctx, model.DefaultActivities))

	a, err := store.GetActivityByName(ctx, "Chess Club")
	require.NoError(t, err)
	a.Participants[0] = "mallory@mergington.edu"

	again, err := store.GetActivityByName(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, "michael@mergington.edu", again.Participants[0])
	assert.Equal(t, "michael@mergington.edu", model.DefaultActivities[0].Participants[0], "seed data must not be aliased")
}

func TestMemoryActivityRejectsDuplicateNames(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryActivity()
	require.NoError(t, store.InsertActivities(ctx, model.DefaultActivities[:1]))

	err := store.InsertActivities(ctx, model.DefaultActivities[:2])
	assert.ErrorIs(t, err, apierr.ErrConflict)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n, "a rejected batch must not be partially applied")
}

func observedCount(t *testing.T, operation string) uint64 {
	t.Helper()

	histogram, ok := observability.StoreOperationDuration.WithLabelValues(driverMemory, operation).(prometheus.Histogram)
	require.True(t, ok)

	var m dto.Metric
	require.NoError(t, histogram.Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestMemoryActivityObservesEveryOperation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryActivity()

	for _, op := range []struct {
		name string
		call func() error
	}{
		{"count", func() error { _, err := store.Count(ctx); return err }},
		{"insert", func() error { return store.InsertActivities(ctx, model.DefaultActivities) }},
		{"find", func() error { _, err := store.GetActivities(ctx); return err }},
		{"find_one", func() error { _, err := store.GetActivityByName(ctx, "Chess Club"); return err }},
		{"add_participant", func() error { _, err := store.AddParticipant(ctx, "Chess Club", "a@mergington.edu"); return err }},
		{"remove_participant", func() error { _, err := store.RemoveParticipant(ctx, "Chess Club", "a@mergington.edu"); return err }},
	} {
		before := observedCount(t, op.name)
		require.NoError(t, op.call(), op.name)
		assert.Equal(t, before+1, observedCount(t, op.name), op.name)
	}
}
