package auth

import (
	"context"
	"sort"
	"strings"
	"time"

	"glowcart/internal/domain/user"
	"glowcart/internal/store"
)

type UserRepo struct {
	s *store.Store
}

func NewUserRepo(s *store.Store) *UserRepo {
	return &UserRepo{s: s}
}

// Create inserts a new account. Username and email are unique,
// compared case-insensitively; a clash returns store.ErrConflict
// before anything is written.
func (r *UserRepo) Create(ctx context.Context, username, email, passwordHash, role string) (user.User, error) {
	r.s.Lock()
	defer r.s.Unlock()

	uname := strings.ToLower(strings.TrimSpace(username))
	mail := strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.s.Users {
		if strings.ToLower(u.Username) == uname || strings.ToLower(u.Email) == mail {
			return user.User{}, store.ErrConflict
		}
	}

	u := user.User{
		ID:           r.s.NextID("users"),
		Username:     username,
		Email:        mail,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	r.s.Users[u.ID] = u
	return u, nil
}

func (r *UserRepo) ByUsername(ctx context.Context, username string) (user.User, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	uname := strings.ToLower(strings.TrimSpace(username))
	for _, u := range r.s.Users {
		if strings.ToLower(u.Username) == uname {
			return u, nil
		}
	}
	return user.User{}, store.ErrNotFound
}

func (r *UserRepo) ByID(ctx context.Context, id int64) (user.User, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	u, ok := r.s.Users[id]
	if !ok {
		return user.User{}, store.ErrNotFound
	}
	return u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]user.User, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	out := make([]user.User, 0, len(r.s.Users))
	for _, u := range r.s.Users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
