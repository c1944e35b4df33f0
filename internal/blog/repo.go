package blog

import (
	"context"
	"sort"

	"glowcart/internal/domain/content"
	"glowcart/internal/store"
)

type Repo struct {
	s *store.Store
}

func NewRepo(s *store.Store) *Repo {
	return &Repo{s: s}
}

func (r *Repo) ListPosts(ctx context.Context) ([]content.BlogPost, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	out := make([]content.BlogPost, 0, len(r.s.BlogPosts))
	for _, p := range r.s.BlogPosts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *Repo) PostBySlug(ctx context.Context, slug string) (content.BlogPost, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	for _, p := range r.s.BlogPosts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return content.BlogPost{}, store.ErrNotFound
}

func (r *Repo) ListTestimonials(ctx context.Context) ([]content.Testimonial, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	out := make([]content.Testimonial, 0, len(r.s.Testimonials))
	for _, t := range r.s.Testimonials {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
