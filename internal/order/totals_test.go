package order

import (
	"math/rand"
	"testing"

	"github.com/kevin272/MomsCharcoalGrill-sub000/internal/cart"
)

func TestComputeTotalsCheckoutScenario(t *testing.T) {
	lines := []cart.Line{
		{Key: "a", UnitPrice: 20, Quantity: 2},
		{Key: "b", UnitPrice: 15, Quantity: 1},
	}

	totals := ComputeTotals(lines, 50)

	if totals.Subtotal != 55 {
		t.Errorf("subtotal = %v, want 55", totals.Subtotal)
	}
	if totals.Tax != 6 {
		t.Errorf("tax = %v, want 6 (round(5.5) half up)", totals.Tax)
	}
	if totals.Delivery != 50 {
		t.Errorf("delivery = %v, want 50", totals.Delivery)
	}
	if totals.GrandTotal != 111 {
		t.Errorf("grand total = %v, want 111", totals.GrandTotal)
	}
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, 50)

	if totals.Subtotal != 0 || totals.Tax != 0 || totals.Delivery != 0 || totals.GrandTotal != 0 {
		t.Fatalf("empty cart must total zero everywhere, got %+v", totals)
	}
}

func TestComputeTotalsClampsNegatives(t *testing.T) {
	lines := []cart.Line{
		{Key: "a", UnitPrice: -10, Quantity: 2},
		{Key: "b", UnitPrice: 15, Quantity: -1},
		{Key: "c", UnitPrice: 10, Quantity: 1},
	}

	totals := ComputeTotals(lines, 50)
	if totals.Subtotal != 10 {
		t.Fatalf("negative inputs must clamp to 0, subtotal = %v", totals.Subtotal)
	}
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	lines := []cart.Line{
		{Key: "a", UnitPrice: 7.5, Quantity: 3},
		{Key: "b", UnitPrice: 12, Quantity: 1},
		{Key: "c", UnitPrice: 3.25, Quantity: 4},
		{Key: "d", UnitPrice: 49.75, Quantity: 2},
	}

	want := ComputeTotals(lines, 50)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]cart.Line, len(lines))
		copy(shuffled, lines)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := ComputeTotals(shuffled, 50)
		if got != want {
			t.Fatalf("totals changed under reordering: %+v vs %+v", got, want)
		}
	}
}

func TestComputeTotalsGrandTotalIsExactSum(t *testing.T) {
	cases := [][]cart.Line{
		{{Key: "a", UnitPrice: 20, Quantity: 2}},
		{{Key: "a", UnitPrice: 0.01, Quantity: 1}},
		{{Key: "a", UnitPrice: 99.95, Quantity: 3}, {Key: "b", UnitPrice: 4.5, Quantity: 2}},
	}

	for _, lines := range cases {
		totals := ComputeTotals(lines, 50)
		if totals.GrandTotal != totals.Subtotal+totals.Tax+totals.Delivery {
			t.Fatalf("grand total invariant broken: %+v", totals)
		}
	}
}
