package catering

import (
	"context"
	"sort"
)

type InMemoryRepository struct {
	options map[string]*Option
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{options: make(map[string]*Option)}
}

func (r *InMemoryRepository) Create(_ context.Context, opt *Option) error {
	cp := *opt
	r.options[opt.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (*Option, error) {
	opt, ok := r.options[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *opt
	return &cp, nil
}

func (r *InMemoryRepository) GetBySlug(_ context.Context, slug string) (*Option, error) {
	for _, opt := range r.options {
		if opt.Slug == slug {
			cp := *opt
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) List(_ context.Context) ([]Option, error) {
	var opts []Option
	for _, opt := range r.options {
		opts = append(opts, *opt)
	}
	sort.Slice(opts, func(i, j int) bool {
		if opts[i].SortOrder != opts[j].SortOrder {
			return opts[i].SortOrder < opts[j].SortOrder
		}
		return opts[i].Title < opts[j].Title
	})
	return opts, nil
}

func (r *InMemoryRepository) Update(_ context.Context, opt *Option) error {
	if _, ok := r.options[opt.ID]; !ok {
		return ErrNotFound
	}
	cp := *opt
	r.options[opt.ID] = &cp
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.options[id]; !ok {
		return ErrNotFound
	}
	delete(r.options, id)
	return nil
}
