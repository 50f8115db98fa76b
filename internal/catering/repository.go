package catering

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("catering option not found")

// Repository defines all database operations for catering options
type Repository interface {
	Create(ctx context.Context, opt *Option) error
	GetByID(ctx context.Context, id string) (*Option, error)
	GetBySlug(ctx context.Context, slug string) (*Option, error)
	List(ctx context.Context) ([]Option, error)
	Update(ctx context.Context, opt *Option) error
	Delete(ctx context.Context, id string) error
}
