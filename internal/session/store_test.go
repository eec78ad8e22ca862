package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasarkita/marketplace/internal/domain"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	user := domain.User{ID: 1, Username: "alice"}

	token, err := store.Create(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, ok, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, user, got)

	_, ok, err = store.Get(ctx, "no-such-token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Destroy(ctx, token))

	_, ok, err = store.Get(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)

	// Destroying an already-destroyed token is fine.
	require.NoError(t, store.Destroy(ctx, token))
}

func TestMemoryStore_TokensAreUnique(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, err := store.Create(ctx, domain.User{ID: 1, Username: "alice"})
	require.NoError(t, err)
	second, err := store.Create(ctx, domain.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestMemoryStore_SnapshotIsNotResynced(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	user := domain.User{ID: 7, Username: "before-edit"}
	token, err := store.Create(ctx, user)
	require.NoError(t, err)

	// Later edits to the caller's copy must not leak into the session.
	user.Username = "after-edit"

	got, ok, err := store.Get(ctx, token)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "before-edit", got.Username)
}
