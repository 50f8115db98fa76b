package order

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("order not found")

// Repository defines persistence operations for orders. Create is
// all-or-nothing: a failed insert leaves no partial record behind.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
