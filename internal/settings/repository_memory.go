package settings

import "context"

type InMemoryRepository struct {
	values map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{values: make(map[string]string)}
}

func (r *InMemoryRepository) Get(_ context.Context, key string) (string, error) {
	value, ok := r.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (r *InMemoryRepository) Set(_ context.Context, key, value string) error {
	r.values[key] = value
	return nil
}
