package catalog

import (
	"context"
	"sort"
)

// InMemoryRepository backs tests and local development.
type InMemoryRepository struct {
	items      map[string]*MenuItem
	categories map[string]*Category
	sauces     map[string]*Sauce
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items:      make(map[string]*MenuItem),
		categories: make(map[string]*Category),
		sauces:     make(map[string]*Sauce),
	}
}

func (r *InMemoryRepository) CreateItem(_ context.Context, item *MenuItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetItem(_ context.Context, id string) (*MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *InMemoryRepository) ListItems(_ context.Context) ([]MenuItem, error) {
	var items []MenuItem
	for _, item := range r.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *InMemoryRepository) UpdateItem(_ context.Context, item *MenuItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return ErrNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *InMemoryRepository) DeleteItem(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *InMemoryRepository) CreateCategory(_ context.Context, cat *Category) error {
	cp := *cat
	r.categories[cat.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetCategory(_ context.Context, id string) (*Category, error) {
	cat, ok := r.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *cat
	return &cp, nil
}

func (r *InMemoryRepository) ListCategories(_ context.Context) ([]Category, error) {
	var cats []Category
	for _, cat := range r.categories {
		cats = append(cats, *cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].SortOrder != cats[j].SortOrder {
			return cats[i].SortOrder < cats[j].SortOrder
		}
		return cats[i].Name < cats[j].Name
	})
	return cats, nil
}

func (r *InMemoryRepository) UpdateCategory(_ context.Context, cat *Category) error {
	if _, ok := r.categories[cat.ID]; !ok {
		return ErrNotFound
	}
	cp := *cat
	r.categories[cat.ID] = &cp
	return nil
}

func (r *InMemoryRepository) DeleteCategory(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *InMemoryRepository) CreateSauce(_ context.Context, sauce *Sauce) error {
	cp := *sauce
	r.sauces[sauce.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetSauce(_ context.Context, id string) (*Sauce, error) {
	sauce, ok := r.sauces[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *sauce
	return &cp, nil
}

func (r *InMemoryRepository) ListSauces(_ context.Context) ([]Sauce, error) {
	var sauces []Sauce
	for _, sauce := range r.sauces {
		sauces = append(sauces, *sauce)
	}
	sort.Slice(sauces, func(i, j int) bool { return sauces[i].Name < sauces[j].Name })
	return sauces, nil
}

func (r *InMemoryRepository) UpdateSauce(_ context.Context, sauce *Sauce) error {
	if _, ok := r.sauces[sauce.ID]; !ok {
		return ErrNotFound
	}
	cp := *sauce
	r.sauces[sauce.ID] = &cp
	return nil
}

func (r *InMemoryRepository) DeleteSauce(_ context.Context, id string) error {
	if _, ok := r.sauces[id]; !ok {
		return ErrNotFound
	}
	delete(r.sauces, id)
	return nil
}
