package catering

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/catalog"
)

func newTestService(t *testing.T) (*Service, *catalog.Service) {
	t.Helper()
	catalogService := catalog.NewService(catalog.NewInMemoryRepository())
	return NewService(NewInMemoryRepository(), catalogService), catalogService
}

func seedItem(t *testing.T, cs *catalog.Service, name, categoryID string, price float64) *catalog.MenuItem {
	t.Helper()
	item, err := cs.CreateItem(context.Background(), &catalog.MenuItem{
		Name:        name,
		Price:       price,
		CategoryID:  categoryID,
		IsAvailable: true,
	})
	if err != nil {
		t.Fatalf("seed %s: %v", name, err)
	}
	return item
}

func TestCreateSyncsLegacyItems(t *testing.T) {
	service, _ := newTestService(t)

	opt, err := service.Create(context.Background(), &Option{
		Title:     "General Catering",
		PriceType: PricePerPerson,
		Price:     25,
		ItemConfigurations: []ItemConfig{
			{MenuItemID: "a"},
			{MenuItemID: "b", ExtraOptions: []string{"extra sauce"}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(opt.Items, []string{"a", "b"}) {
		t.Fatalf("legacy items list out of sync: %v", opt.Items)
	}
	if opt.Slug != "general-catering" {
		t.Fatalf("expected slug from title, got %q", opt.Slug)
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	service, _ := newTestService(t)

	cases := []Option{
		{Title: "", PriceType: PriceFixed},
		{Title: "X", PriceType: "per-kilo"},
		{Title: "X", PriceType: PriceFixed, Price: -1},
		{Title: "X", PriceType: PriceFixed, ItemConfigurations: []ItemConfig{{}}},
		{Title: "X", PriceType: PriceFixed, SelectionRules: SelectionRules{
			Enabled:        true,
			CategoryLimits: map[string]int{"chicken": -1},
		}},
	}

	for i, opt := range cases {
		if _, err := service.Create(context.Background(), &opt); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestValidateSelectionEndToEnd(t *testing.T) {
	service, catalogService := newTestService(t)
	ctx := context.Background()

	chicken := seedItem(t, catalogService, "Half Charcoal Chicken", "", 14)
	greek := seedItem(t, catalogService, "Greek Salad", "", 9)
	slaw := seedItem(t, catalogService, "Coleslaw", "", 8)
	corn := seedItem(t, catalogService, "Corn on the Cob", "", 4)
	roll := seedItem(t, catalogService, "Bread Roll", "", 1)

	_, err := service.Create(ctx, &Option{
		Title:     "General Catering",
		PriceType: PricePerPerson,
		Price:     25,
		IsActive:  true,
		ItemConfigurations: []ItemConfig{
			{MenuItemID: chicken.ID},
			{MenuItemID: greek.ID},
			{MenuItemID: slaw.ID},
			{MenuItemID: corn.ID},
			{MenuItemID: roll.ID},
		},
		SelectionRules: SelectionRules{
			Enabled: true,
			CategoryLimits: map[string]int{
				"chicken": 1, "salad": 2, "veggies": 1, "breadroll": 1,
			},
		},
	})
	if err != nil {
		t.Fatalf("create option: %v", err)
	}

	sel := NewSelection()
	sel.SetQuantity(chicken.ID, 1)
	sel.SetQuantity(greek.ID, 1)
	sel.SetQuantity(corn.ID, 1)
	sel.SetQuantity(roll.ID, 1)

	result, err := service.ValidateSelection(ctx, "general-catering", sel)
	var quotaErr *QuotaUnmetError
	if !errors.As(err, &quotaErr) {
		t.Fatalf("expected QuotaUnmetError, got %v", err)
	}
	if result.Status != StatusPartial {
		t.Fatalf("expected partial status, got %q", result.Status)
	}
	if len(quotaErr.Unmet) != 1 || quotaErr.Unmet[0].Bucket != "salad" {
		t.Fatalf("expected salad 1/2 unmet, got %v", quotaErr.Unmet)
	}

	sel.SetQuantity(slaw.ID, 1)
	result, err = service.ValidateSelection(ctx, "general-catering", sel)
	if err != nil {
		t.Fatalf("expected ready selection, got %v", err)
	}
	if !result.Ready() {
		t.Fatalf("expected ready, got %+v", result)
	}
}

func TestValidateSelectionUnknownSlug(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.ValidateSelection(context.Background(), "nope", NewSelection())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDetailSkipsDeletedItems(t *testing.T) {
	service, catalogService := newTestService(t)
	ctx := context.Background()

	chicken := seedItem(t, catalogService, "Half Charcoal Chicken", "", 14)

	_, err := service.Create(ctx, &Option{
		Title:     "Party Pack",
		PriceType: PriceFixed,
		Price:     120,
		IsActive:  true,
		ItemConfigurations: []ItemConfig{
			{MenuItemID: chicken.ID},
			{MenuItemID: "deleted-long-ago"},
		},
	})
	if err != nil {
		t.Fatalf("create option: %v", err)
	}

	detail, err := service.Detail(ctx, "party-pack")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.Items) != 1 {
		t.Fatalf("expected dangling reference skipped, got %d items", len(detail.Items))
	}
	if detail.Buckets[chicken.ID] != "chicken" {
		t.Fatalf("expected chicken bucket, got %q", detail.Buckets[chicken.ID])
	}
}

func TestListActiveFiltersInactive(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	if _, err := service.Create(ctx, &Option{Title: "Live", PriceType: PriceFixed, IsActive: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := service.Create(ctx, &Option{Title: "Draft", PriceType: PriceFixed}); err != nil {
		t.Fatal(err)
	}

	active, err := service.ListActive(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 1 || active[0].Title != "Live" {
		t.Fatalf("expected only the active option, got %v", active)
	}
}
