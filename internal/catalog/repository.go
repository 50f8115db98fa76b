package catalog

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Repository defines all database operations for the catalog
type Repository interface {

	// -------------------------------
	// Menu items
	// -------------------------------
	CreateItem(ctx context.Context, item *MenuItem) error
	GetItem(ctx context.Context, id string) (*MenuItem, error)
	ListItems(ctx context.Context) ([]MenuItem, error)
	UpdateItem(ctx context.Context, item *MenuItem) error
	DeleteItem(ctx context.Context, id string) error

	// -------------------------------
	// Categories
	// -------------------------------
	CreateCategory(ctx context.Context, cat *Category) error
	GetCategory(ctx context.Context, id string) (*Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	UpdateCategory(ctx context.Context, cat *Category) error
	DeleteCategory(ctx context.Context, id string) error

	// -------------------------------
	// Sauces
	// -------------------------------
	CreateSauce(ctx context.Context, sauce *Sauce) error
	GetSauce(ctx context.Context, id string) (*Sauce, error)
	ListSauces(ctx context.Context) ([]Sauce, error)
	UpdateSauce(ctx context.Context, sauce *Sauce) error
	DeleteSauce(ctx context.Context, id string) error
}
