package catering

import "testing"

func TestClassifyByName(t *testing.T) {
	cases := []struct {
		name     string
		category string
		want     string
	}{
		{"Half Charcoal Chicken", "", "chicken"},
		{"BBQ Wings (6pc)", "", "chicken"},
		{"Greek Salad", "", "salad"},
		{"Coleslaw Tub", "", "salad"},
		{"Steamed Veggies", "", "veggies"},
		{"Corn on the Cob", "", "veggies"},
		{"Bread Roll", "", "breadroll"},
		{"Pita Bread", "", "breadroll"},
		{"Chips (Large)", "", ""},
		{"Soft Drink 1.25L", "Drinks", ""},
	}

	for _, tc := range cases {
		got := Classify(tc.name, tc.category, "")
		if got != tc.want {
			t.Errorf("Classify(%q, %q) = %q, want %q", tc.name, tc.category, got, tc.want)
		}
	}
}

func TestClassifyUsesCategoryHint(t *testing.T) {
	// Name alone says nothing; the category decides.
	if got := Classify("Garden Mix", "Salads", ""); got != "salad" {
		t.Errorf("expected category hint to classify as salad, got %q", got)
	}
	if got := Classify("Family Pack", "Charcoal Chicken", ""); got != "chicken" {
		t.Errorf("expected category hint to classify as chicken, got %q", got)
	}
}

func TestClassifyUsesImagePath(t *testing.T) {
	if got := Classify("Seasonal Side", "", "images/menu/veggie-tray.jpg"); got != "veggies" {
		t.Errorf("expected image path signal to classify as veggies, got %q", got)
	}
}

func TestClassifyTieKeepsPriorityOrder(t *testing.T) {
	// One name keyword hit for both chicken and salad: chicken is
	// declared first and must win the tie.
	if got := Classify("chicken salad", "", ""); got != "chicken" {
		t.Errorf("expected tie to keep first-declared bucket, got %q", got)
	}
}

func TestClassifyNameOutweighsCategory(t *testing.T) {
	// +5 name match beats +3 category keyword match.
	if got := Classify("Tabouli", "Chicken Packs", ""); got != "salad" {
		t.Errorf("expected name keyword to outweigh category keyword, got %q", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	inputs := []struct{ name, category, image string }{
		{"Half Charcoal Chicken", "Charcoal Chicken", "images/menu/chicken.jpg"},
		{"Greek Salad", "Salads", ""},
		{"Bread Roll", "", "images/menu/roll.png"},
		{"Mystery Item", "Specials", ""},
	}

	for _, in := range inputs {
		first := Classify(in.name, in.category, in.image)
		for i := 0; i < 10; i++ {
			if got := Classify(in.name, in.category, in.image); got != first {
				t.Fatalf("Classify(%q) not deterministic: %q then %q", in.name, first, got)
			}
		}
	}
}
