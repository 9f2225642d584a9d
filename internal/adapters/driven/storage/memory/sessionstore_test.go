package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
)

func TestSessionStore_SaveLoad(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	log := &domain.SessionLog{Records: []domain.ControlVector{{Throttle: 0.7}}}
	require.NoError(t, store.Save(ctx, "a.json", log))

	loaded, err := store.Load(ctx, "a.json")
	require.NoError(t, err)
	assert.Equal(t, log.Records, loaded.Records)
}

func TestSessionStore_LoadMissing(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Load(context.Background(), "missing.json")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionStore_SaveRejectsNil(t *testing.T) {
	store := NewSessionStore()

	err := store.Save(context.Background(), "x.json", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSessionStore_CopiesAreIndependent(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	log := &domain.SessionLog{Records: []domain.ControlVector{{Steer: 0.1}}}
	require.NoError(t, store.Save(ctx, "a.json", log))

	// Mutating the original after save must not affect the store.
	log.Records[0].Steer = 0.7
	loaded, err := store.Load(ctx, "a.json")
	require.NoError(t, err)
	assert.Equal(t, 0.1, loaded.Records[0].Steer)

	// Mutating a loaded copy must not affect later loads.
	loaded.Records[0].Steer = -0.7
	again, err := store.Load(ctx, "a.json")
	require.NoError(t, err)
	assert.Equal(t, 0.1, again.Records[0].Steer)
}
