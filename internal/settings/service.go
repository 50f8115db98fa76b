package settings

import (
	"context"
	"strconv"
)

// Well-known keys and their defaults when nothing is stored.
const (
	KeyDeliveryFee = "delivery_fee"
	KeyPromoBanner = "promo_banner"

	DefaultDeliveryFee = 50.0
)

var defaults = map[string]string{
	KeyDeliveryFee: "50",
	KeyPromoBanner: "",
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the stored value, or the hardcoded default when absent.
func (s *Service) Get(ctx context.Context, key string) (string, error) {
	value, err := s.repo.Get(ctx, key)
	if err == ErrNotFound {
		if def, ok := defaults[key]; ok {
			return def, nil
		}
		return "", ErrNotFound
	}
	return value, err
}

func (s *Service) Set(ctx context.Context, key, value string) error {
	return s.repo.Set(ctx, key, value)
}

// DeliveryFee parses the flat fee, falling back to the default on any
// missing or malformed value.
func (s *Service) DeliveryFee(ctx context.Context) float64 {
	value, err := s.Get(ctx, KeyDeliveryFee)
	if err != nil {
		return DefaultDeliveryFee
	}

	fee, err := strconv.ParseFloat(value, 64)
	if err != nil || fee < 0 {
		return DefaultDeliveryFee
	}
	return fee
}
