package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"mergington.dev/backend/internal/repo"
)

type unreachableStore struct {
	repo.ActivityStore
}

func (unreachableStore) Ping(context.Context) error {
	return errors.New("dial tcp: connection refused")
}

func TestHealthPing(t *testing.T) {
	assert.NoError(t, NewHealth(repo.NewMemoryActivity(), nil).Ping(context.Background()))

	err := NewHealth(unreachableStore{}, nil).Ping(context.Background())
	assert.ErrorIs(t, err, ErrStoreNotReachable)
}
