package settings

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("setting not found")

// Repository is a plain string key-value store.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
