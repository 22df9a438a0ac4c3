package repo

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"mergington.dev/backend/internal/model"
	"mergington.dev/backend/internal/pkg/apierr"
)

const driverMemory = "memory"

// MemoryActivity keeps activities in process memory. Intended for local
// development and tests; nothing survives a restart.
type MemoryActivity struct {
	mu         sync.RWMutex
	names      []string
	activities map[string]*model.Activity
}

func NewMemoryActivity() *MemoryActivity {
	return &MemoryActivity{
		activities: map[string]*model.Activity{},
	}
}

func clone(a *model.Activity) *model.Activity {
	c := *a
	c.Participants = append([]string{}, a.Participants...)
	return &c
}

func (r *MemoryActivity) Count(ctx context.Context) (int64, error) {
	defer observe(driverMemory, "count")()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.names)), nil
}

func (r *MemoryActivity) InsertActivities(ctx context.Context, activities []model.Activity) error {
	defer observe(driverMemory, "insert")()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range activities {
		if _, ok := r.activities[a.Name]; ok {
			return apierr.ErrConflict.Msg("activity %q already exists", a.Name)
		}
	}
	for i := range activities {
		r.names = append(r.names, activities[i].Name)
		r.activities[activities[i].Name] = clone(&activities[i])
	}
	return nil
}

func (r *MemoryActivity) GetActivities(ctx context.Context) ([]*model.Activity, error) {
	defer observe(driverMemory, "find")()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.names, func(name string, _ int) *model.Activity {
		return clone(r.activities[name])
	}), nil
}

func (r *MemoryActivity) GetActivityByName(ctx context.Context, name string) (*model.Activity, error) {
	defer observe(driverMemory, "find_one")()

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, apierr.ErrNotFound
	}
	return clone(a), nil
}

func (r *MemoryActivity) AddParticipant(ctx context.Context, name, email string) (int64, error) {
	defer observe(driverMemory, "add_participant")()

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok || lo.Contains(a.Participants, email) {
		return 0, nil
	}
	a.Participants = append(a.Participants, email)
	return 1, nil
}

func (r *MemoryActivity) RemoveParticipant(ctx context.Context, name, email string) (int64, error) {
	defer observe(driverMemory, "remove_participant")()

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok || !lo.Contains(a.Participants, email) {
		return 0, nil
	}
	a.Participants = lo.Without(a.Participants, email)
	return 1, nil
}

func (r *MemoryActivity) Ping(ctx context.Context) error {
	return nil
}
