package dao

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, InitTables(db))

	return db
}

func TestUserDAO_InsertRejectsDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	d := NewUserDAO(newTestDB(t))

	_, err := d.Insert(ctx, User{Username: "alice", Password: "x"})
	require.NoError(t, err)

	_, err = d.Insert(ctx, User{Username: "alice", Password: "y"})
	require.ErrorIs(t, err, ErrUsernameTaken)

	users, err := d.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserDAO_FindByUsername(t *testing.T) {
	ctx := context.Background()
	d := NewUserDAO(newTestDB(t))

	created, err := d.Insert(ctx, User{Username: "alice", Password: "x"})
	require.NoError(t, err)

	found, err := d.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = d.FindByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserDAO_UpdateUsernameUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	d := NewUserDAO(newTestDB(t))

	require.NoError(t, d.UpdateUsername(ctx, 42, "ghost"))

	users, err := d.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserDAO_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	d := NewUserDAO(newTestDB(t))

	created, err := d.Insert(ctx, User{Username: "alice", Password: "x"})
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, created.ID))
	require.NoError(t, d.Delete(ctx, created.ID))
	require.NoError(t, d.Delete(ctx, 999))

	users, err := d.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestSellerDAO_FindAllOrdersByID(t *testing.T) {
	ctx := context.Background()
	d := NewSellerDAO(newTestDB(t))

	for _, name := range []string{"Acme", "Bolt", "Cartel"} {
		_, err := d.Insert(ctx, Seller{Name: name})
		require.NoError(t, err)
	}

	sellers, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, sellers, 3)
	for i := 1; i < len(sellers); i++ {
		assert.Greater(t, sellers[i].ID, sellers[i-1].ID)
	}
}

func TestStockDAO_RoundTrip(t *testing.T) {
	ctx := context.Background()
	d := NewStockDAO(newTestDB(t))

	created, err := d.Insert(ctx, Stock{ProductName: "beras", Quantity: 50})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	stocks, err := d.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, stocks, 1)
	assert.Equal(t, "beras", stocks[0].ProductName)
	assert.Equal(t, 50, stocks[0].Quantity)
}
