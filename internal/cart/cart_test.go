package cart

import "testing"

func TestLineKeyDistinguishesConfigurations(t *testing.T) {
	plain := LineKey("wings", ModeItem, nil)
	sauced := LineKey("wings", ModeItem, []string{"extra sauce"})

	if plain == sauced {
		t.Fatal("different extras must produce different keys")
	}

	if LineKey("wings", ModeItem, nil) == LineKey("wings", ModePackage, nil) {
		t.Fatal("item and package additions must not share a key")
	}
}

func TestLineKeyIgnoresExtrasOrder(t *testing.T) {
	a := LineKey("wings", ModeItem, []string{"gravy", "extra sauce"})
	b := LineKey("wings", ModeItem, []string{"extra sauce", "gravy"})

	if a != b {
		t.Fatalf("extras order must not matter: %q vs %q", a, b)
	}
}

func TestAddMergesSameConfiguration(t *testing.T) {
	c := New()
	key := LineKey("wings", ModeItem, []string{"extra sauce"})

	c.Add(Line{Key: key, Name: "Wings", UnitPrice: 12, Quantity: 1})
	c.Add(Line{Key: key, Name: "Wings", UnitPrice: 12, Quantity: 2})

	if c.Len() != 1 {
		t.Fatalf("expected merged line, got %d lines", c.Len())
	}
	if got := c.Lines()[0].Quantity; got != 3 {
		t.Fatalf("expected quantity 3, got %d", got)
	}
}

func TestAddKeepsDistinctConfigurationsApart(t *testing.T) {
	c := New()
	c.Add(Line{Key: LineKey("wings", ModeItem, []string{"extra sauce"}), Name: "Wings, extra sauce", UnitPrice: 13})
	c.Add(Line{Key: LineKey("wings", ModeItem, nil), Name: "Wings", UnitPrice: 12})

	if c.Len() != 2 {
		t.Fatalf("expected two distinct lines, got %d", c.Len())
	}
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	c := New()
	c.Add(Line{Key: "k", Name: "Roll", UnitPrice: 1})

	if got := c.Lines()[0].Quantity; got != 1 {
		t.Fatalf("expected default quantity 1, got %d", got)
	}
}

func TestSetQuantityIsAbsolute(t *testing.T) {
	c := New()
	c.Add(Line{Key: "k", UnitPrice: 5, Quantity: 2})

	c.SetQuantity("k", 7)
	if got := c.Lines()[0].Quantity; got != 7 {
		t.Fatalf("expected quantity set to 7, got %d", got)
	}
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	c := New()
	c.Add(Line{Key: "a", UnitPrice: 5, Quantity: 2})
	c.Add(Line{Key: "b", UnitPrice: 3, Quantity: 1})

	c.SetQuantity("a", 0)
	if c.Len() != 1 {
		t.Fatalf("expected line removed, got %d lines", c.Len())
	}
	if c.Lines()[0].Key != "b" {
		t.Fatal("wrong line removed")
	}

	c.SetQuantity("b", -4)
	if c.Len() != 0 {
		t.Fatal("negative quantity must remove the line")
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	c := New()
	keys := []string{"first", "second", "third"}
	for _, k := range keys {
		c.Add(Line{Key: k, UnitPrice: 1})
	}

	c.Remove("second")
	lines := c.Lines()
	if lines[0].Key != "first" || lines[1].Key != "third" {
		t.Fatalf("expected order preserved after removal, got %v", lines)
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(Line{Key: "a", UnitPrice: 5})
	c.Clear()

	if c.Len() != 0 || c.Subtotal() != 0 {
		t.Fatal("clear must empty the cart")
	}

	// The cart stays usable after clearing.
	c.Add(Line{Key: "a", UnitPrice: 5})
	if c.Len() != 1 {
		t.Fatal("cart unusable after clear")
	}
}

func TestSubtotalRecomputedFromLines(t *testing.T) {
	c := New()
	c.Add(Line{Key: "a", UnitPrice: 20, Quantity: 2})
	c.Add(Line{Key: "b", UnitPrice: 15, Quantity: 1})

	if got := c.Subtotal(); got != 55 {
		t.Fatalf("expected subtotal 55, got %v", got)
	}

	c.SetQuantity("a", 1)
	if got := c.Subtotal(); got != 35 {
		t.Fatalf("expected subtotal 35 after quantity change, got %v", got)
	}
}
