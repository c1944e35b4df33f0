package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowcart/internal/store"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestJWTSignParseRoundTrip(t *testing.T) {
	mgr := NewJWTManager(JWTConfig{
		Issuer:         "glowcart-test",
		AccessSecret:   "access-secret",
		RefreshSecret:  "refresh-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 30,
	})

	token, _, err := mgr.SignAccess(42, "admin")
	require.NoError(t, err)

	claims, err := mgr.ParseAccess(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	// an access token is not a refresh token
	_, err = mgr.ParseRefresh(token)
	assert.Error(t, err)
}

func TestUserRepoDuplicateUsername(t *testing.T) {
	repo := NewUserRepo(store.New())
	ctx := context.Background()

	_, err := repo.Create(ctx, "ama", "ama@example.com", "hash", "user")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "AMA", "other@example.com", "hash", "user")
	assert.ErrorIs(t, err, store.ErrConflict, "usernames are case-insensitively unique")

	_, err = repo.Create(ctx, "kwame", "ama@example.com", "hash", "user")
	assert.ErrorIs(t, err, store.ErrConflict, "emails too")
}

func TestRefreshRepoLifecycle(t *testing.T) {
	repo := NewRefreshRepo(store.New())
	ctx := context.Background()

	mgr := NewJWTManager(JWTConfig{RefreshSecret: "s", RefreshTTLDays: 1})
	token, exp, err := mgr.SignRefresh(7, "user")
	require.NoError(t, err)

	hash := HashToken(token)
	require.NoError(t, repo.Store(ctx, 7, hash, exp))

	ok, err := repo.IsValid(ctx, 7, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = repo.IsValid(ctx, 8, hash)
	assert.False(t, ok, "token is bound to its user")

	require.NoError(t, repo.Revoke(ctx, 7, hash))
	ok, _ = repo.IsValid(ctx, 7, hash)
	assert.False(t, ok)
}
