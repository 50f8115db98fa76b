package settings

import (
	"context"
	"errors"
	"testing"
)

func TestGetFallsBackToDefault(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	value, err := service.Get(context.Background(), KeyDeliveryFee)
	if err != nil {
		t.Fatal(err)
	}
	if value != "50" {
		t.Fatalf("expected default delivery fee, got %q", value)
	}
}

func TestGetUnknownKey(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	if _, err := service.Get(context.Background(), "no_such_key"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetOverridesDefault(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	if err := service.Set(ctx, KeyDeliveryFee, "65"); err != nil {
		t.Fatal(err)
	}

	if fee := service.DeliveryFee(ctx); fee != 65 {
		t.Fatalf("expected 65, got %v", fee)
	}
}

func TestDeliveryFeeMalformedValue(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	for _, bad := range []string{"free", "", "-10"} {
		if err := service.Set(ctx, KeyDeliveryFee, bad); err != nil {
			t.Fatal(err)
		}
		if fee := service.DeliveryFee(ctx); fee != DefaultDeliveryFee {
			t.Fatalf("value %q: expected fallback %v, got %v", bad, DefaultDeliveryFee, fee)
		}
	}
}
