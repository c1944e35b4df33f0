package consultations

import (
	"context"
	"sort"
	"time"

	"glowcart/internal/domain/consultation"
	"glowcart/internal/store"
)

type Repo struct {
	s *store.Store
}

func NewRepo(s *store.Store) *Repo {
	return &Repo{s: s}
}

type CreateInput struct {
	Name         string
	Email        string
	Phone        string
	SkinType     string
	SkinConcerns []string
	Notes        string
}

// Create appends a consultation request. Submissions are never
// mutated or deleted afterward.
func (r *Repo) Create(ctx context.Context, in CreateInput) (consultation.Consultation, error) {
	r.s.Lock()
	defer r.s.Unlock()

	c := consultation.Consultation{
		ID:           r.s.NextID("consultations"),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		SkinType:     in.SkinType,
		SkinConcerns: in.SkinConcerns,
		Notes:        in.Notes,
		Status:       consultation.StatusPending,
		CreatedAt:    time.Now(),
	}
	r.s.Consultations[c.ID] = c
	return c, nil
}

func (r *Repo) List(ctx context.Context) ([]consultation.Consultation, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	out := make([]consultation.Consultation, 0, len(r.s.Consultations))
	for _, c := range r.s.Consultations {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}
