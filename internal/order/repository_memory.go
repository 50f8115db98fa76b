package order

import (
	"context"
	"sort"
)

type InMemoryRepository struct {
	orders    map[string]*Order
	createErr error
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make(map[string]*Order)}
}

// FailCreatesWith makes every subsequent Create return err, for
// exercising persistence failures in tests.
func (r *InMemoryRepository) FailCreatesWith(err error) {
	r.createErr = err
}

func (r *InMemoryRepository) Create(_ context.Context, o *Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (*Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]Order, error) {
	var orders []Order
	for _, o := range r.orders {
		orders = append(orders, *o)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *InMemoryRepository) UpdateStatus(_ context.Context, id string, status Status) error {
	o, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Status = status
	return nil
}
