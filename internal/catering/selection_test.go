package catering

import (
	"reflect"
	"strings"
	"testing"
)

func generalOption() *Option {
	return &Option{
		ID:    "opt-1",
		Title: "General Catering",
		Slug:  "general-catering",
		SelectionRules: SelectionRules{
			Enabled: true,
			CategoryLimits: map[string]int{
				"chicken":   1,
				"salad":     2,
				"veggies":   2,
				"breadroll": 1,
			},
		},
	}
}

func generalBuckets() map[string]string {
	return map[string]string{
		"item-chicken": "chicken",
		"item-greek":   "salad",
		"item-slaw":    "salad",
		"item-corn":    "veggies",
		"item-pumpkin": "veggies",
		"item-roll":    "breadroll",
	}
}

func TestQuotaGating(t *testing.T) {
	opt := generalOption()
	buckets := generalBuckets()

	sel := NewSelection()
	sel.SetQuantity("item-chicken", 1)
	sel.SetQuantity("item-greek", 1)
	sel.SetQuantity("item-slaw", 1)
	sel.SetQuantity("item-corn", 1)
	sel.SetQuantity("item-roll", 1)

	result := ValidateSelection(opt, buckets, sel)
	if result.Ready() {
		t.Fatal("expected selection with veggies 1/2 to be blocked")
	}
	if len(result.Unmet) != 1 {
		t.Fatalf("expected exactly one unmet category, got %v", result.Unmet)
	}

	unmet := result.Unmet[0]
	if unmet.Bucket != "veggies" || unmet.Selected != 1 || unmet.Required != 2 {
		t.Fatalf("expected veggies: 1/2, got %s", unmet)
	}

	err := &QuotaUnmetError{Unmet: result.Unmet}
	if !strings.Contains(err.Error(), "veggies: 1/2") {
		t.Fatalf("error should cite the unmet category, got %q", err.Error())
	}

	// Filling the quota unblocks submission.
	sel.SetQuantity("item-pumpkin", 1)
	result = ValidateSelection(opt, buckets, sel)
	if !result.Ready() {
		t.Fatalf("expected ready once all quotas met, got %+v", result)
	}
}

func TestQuotaOverSelectionAllowed(t *testing.T) {
	opt := generalOption()
	buckets := generalBuckets()

	sel := NewSelection()
	sel.SetQuantity("item-chicken", 3) // over the quota of 1
	sel.SetQuantity("item-greek", 2)
	sel.SetQuantity("item-corn", 2)
	sel.SetQuantity("item-roll", 1)

	result := ValidateSelection(opt, buckets, sel)
	if !result.Ready() {
		t.Fatalf("over-selection must not block submission, got %+v", result)
	}
}

func TestQuotaZeroIgnored(t *testing.T) {
	opt := generalOption()
	opt.SelectionRules.CategoryLimits["breadroll"] = 0
	buckets := generalBuckets()

	sel := NewSelection()
	sel.SetQuantity("item-chicken", 1)
	sel.SetQuantity("item-greek", 2)
	sel.SetQuantity("item-corn", 2)

	result := ValidateSelection(opt, buckets, sel)
	if !result.Ready() {
		t.Fatalf("zero-quota categories must be ignored, got %+v", result)
	}
}

func TestEmptyQuotaSelection(t *testing.T) {
	result := ValidateSelection(generalOption(), generalBuckets(), NewSelection())
	if result.Status != StatusEmpty {
		t.Fatalf("expected empty status, got %q", result.Status)
	}
	if len(result.Unmet) != 4 {
		t.Fatalf("expected all four categories unmet, got %v", result.Unmet)
	}
}

func TestNonQuotaOptionNeedsOneItem(t *testing.T) {
	opt := &Option{ID: "opt-2", Title: "Party Tray", Slug: "party-tray"}

	sel := NewSelection()
	if result := ValidateSelection(opt, nil, sel); result.Ready() {
		t.Fatal("empty selection must not be ready")
	}

	sel.Increment("anything")
	if result := ValidateSelection(opt, nil, sel); !result.Ready() {
		t.Fatal("one unit should be enough for a non-quota option")
	}
}

func TestDecrementClampsAtZero(t *testing.T) {
	sel := NewSelection()
	sel.Increment("item-1")
	sel.Decrement("item-1")
	sel.Decrement("item-1")
	sel.Decrement("item-1")

	if qty := sel.Quantities["item-1"]; qty != 0 {
		t.Fatalf("expected quantity clamped at 0, got %d", qty)
	}
	if sel.TotalUnits() != 0 {
		t.Fatalf("expected no units, got %d", sel.TotalUnits())
	}
}

func TestToggleExtraIsIdempotentPair(t *testing.T) {
	sel := NewSelection()
	sel.ToggleExtra("item-1", "extra sauce")
	sel.ToggleExtra("item-1", "stuffing")

	before := make([]string, len(sel.Extras["item-1"]))
	copy(before, sel.Extras["item-1"])

	sel.ToggleExtra("item-1", "gravy")
	sel.ToggleExtra("item-1", "gravy")

	if !reflect.DeepEqual(sel.Extras["item-1"], before) {
		t.Fatalf("double toggle changed the set: before %v, after %v", before, sel.Extras["item-1"])
	}
}

func TestSkipExtrasRecordsChoice(t *testing.T) {
	sel := NewSelection()

	if sel.HasExtrasChoice("item-1") {
		t.Fatal("no choice recorded yet")
	}

	sel.SkipExtras("item-1")
	if !sel.HasExtrasChoice("item-1") {
		t.Fatal("skip must count as an answered prompt")
	}
	if len(sel.Extras["item-1"]) != 0 {
		t.Fatal("skip must record an empty set")
	}

	// Skipping after a real choice must not erase it.
	sel.ToggleExtra("item-2", "extra sauce")
	sel.SkipExtras("item-2")
	if len(sel.Extras["item-2"]) != 1 {
		t.Fatal("skip must not clobber an existing choice")
	}
}

func TestUnmetCategoriesFollowBucketPriority(t *testing.T) {
	opt := generalOption()
	result := ValidateSelection(opt, generalBuckets(), NewSelection())

	want := []string{"chicken", "salad", "veggies", "breadroll"}
	for i, c := range result.Unmet {
		if c.Bucket != want[i] {
			t.Fatalf("unmet order = %v, want %v", result.Unmet, want)
		}
	}
}
