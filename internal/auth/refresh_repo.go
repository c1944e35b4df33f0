package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"glowcart/internal/store"
)

// HashToken is what actually gets persisted: refresh tokens are keyed
// by their sha256, never stored in the clear.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

type RefreshRepo struct {
	s *store.Store
}

func NewRefreshRepo(s *store.Store) *RefreshRepo {
	return &RefreshRepo{s: s}
}

func (r *RefreshRepo) Store(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	r.s.Lock()
	defer r.s.Unlock()

	r.s.RefreshTokens[tokenHash] = store.RefreshToken{UserID: userID, ExpiresAt: expiresAt}
	return nil
}

func (r *RefreshRepo) IsValid(ctx context.Context, userID int64, tokenHash string) (bool, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	t, ok := r.s.RefreshTokens[tokenHash]
	if !ok || t.UserID != userID || t.RevokedAt != nil {
		return false, nil
	}
	return time.Now().Before(t.ExpiresAt), nil
}

func (r *RefreshRepo) Revoke(ctx context.Context, userID int64, tokenHash string) error {
	r.s.Lock()
	defer r.s.Unlock()

	t, ok := r.s.RefreshTokens[tokenHash]
	if !ok || t.UserID != userID || t.RevokedAt != nil {
		return nil
	}
	now := time.Now()
	t.RevokedAt = &now
	r.s.RefreshTokens[tokenHash] = t
	return nil
}
