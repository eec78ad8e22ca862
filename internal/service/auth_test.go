package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pasarkita/marketplace/internal/repository"
	"github.com/pasarkita/marketplace/internal/repository/dao"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	return db
}

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()

	repo := repository.NewUserRepository(dao.NewUserDAO(newTestDB(t)))

	return NewAuthService(repo), repo
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	created, err := svc.Register(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	// The stored credential must not be the plaintext password.
	assert.NotEqual(t, "secret123", created.Password)

	user, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_RegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAuthService(t)

	_, err := svc.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other-password")
	require.ErrorIs(t, err, ErrUsernameTaken)

	// The failed attempt must not have inserted anything.
	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "alice", "not-the-password")
	_, unknownUser := svc.Login(ctx, "nobody", "secret123")

	assert.ErrorIs(t, wrongPassword, ErrWrongCredentials)
	assert.ErrorIs(t, unknownUser, ErrWrongCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestAuthService_UsernameIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "Alice", "secret123")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "secret123")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}
