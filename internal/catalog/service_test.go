package catalog

import (
	"context"
	"errors"
	"testing"
)

func TestMenuGroupsAvailableItemsByCategory(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	chicken, err := service.CreateCategory(ctx, &Category{Name: "Charcoal Chicken", SortOrder: 1})
	if err != nil {
		t.Fatal(err)
	}
	salads, err := service.CreateCategory(ctx, &Category{Name: "Salads", SortOrder: 2})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := service.CreateItem(ctx, &MenuItem{Name: "Whole Chicken", Price: 16, CategoryID: chicken.ID, IsAvailable: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := service.CreateItem(ctx, &MenuItem{Name: "Greek Salad", Price: 9, CategoryID: salads.ID, IsAvailable: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := service.CreateItem(ctx, &MenuItem{Name: "Sold Out Special", Price: 20, CategoryID: chicken.ID}); err != nil {
		t.Fatal(err)
	}

	menu, err := service.Menu(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if len(menu) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(menu))
	}
	if menu[0].Category.Name != "Charcoal Chicken" || menu[1].Category.Name != "Salads" {
		t.Fatalf("categories out of sort order: %q, %q", menu[0].Category.Name, menu[1].Category.Name)
	}
	if len(menu[0].Items) != 1 || menu[0].Items[0].Name != "Whole Chicken" {
		t.Fatalf("unavailable item leaked into the menu: %v", menu[0].Items)
	}
	if len(menu[1].Items) != 1 {
		t.Fatalf("expected one salad, got %d", len(menu[1].Items))
	}
}

func TestCreateCategorySlugFromName(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	cat, err := service.CreateCategory(context.Background(), &Category{Name: "Bread & Rolls"})
	if err != nil {
		t.Fatal(err)
	}
	if cat.Slug != "bread-rolls" {
		t.Fatalf("expected slug bread-rolls, got %q", cat.Slug)
	}
}

func TestCreateItemValidation(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	if _, err := service.CreateItem(ctx, &MenuItem{Name: "   "}); err == nil {
		t.Error("expected blank name to be rejected")
	}
	if _, err := service.CreateItem(ctx, &MenuItem{Name: "Chips", Price: -5}); err == nil {
		t.Error("expected negative price to be rejected")
	}
}

func TestGetItemNotFound(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	if _, err := service.GetItem(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAvailableSaucesFiltersDisabled(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	if _, err := service.CreateSauce(ctx, &Sauce{Name: "Garlic", Price: 1, IsAvailable: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := service.CreateSauce(ctx, &Sauce{Name: "Chilli", Price: 1}); err != nil {
		t.Fatal(err)
	}

	sauces, err := service.AvailableSauces(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sauces) != 1 || sauces[0].Name != "Garlic" {
		t.Fatalf("expected only the available sauce, got %v", sauces)
	}
}
