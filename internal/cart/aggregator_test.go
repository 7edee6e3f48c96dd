package cart

import (
	"testing"

	pkgerrors "github.com/angelmondragon/orderchat-backend/pkg/errors"
	"github.com/angelmondragon/orderchat-backend/pkg/types"
)

func TestApplyDeltaClampsAtZeroAndKeepsRow(t *testing.T) {
	t.Parallel()

	cart := []types.CartItem{{ID: 1, Name: "Fries", Price: "8.50", Quantity: 1}}

	got := ApplyDelta(cart, 1, -2)
	if len(got) != 1 {
		t.Fatalf("row must be retained at zero quantity, got %d rows", len(got))
	}
	if got[0].Quantity != 0 {
		t.Fatalf("expected quantity clamped to 0, got %d", got[0].Quantity)
	}
	if cart[0].Quantity != 1 {
		t.Fatal("input cart must not be mutated")
	}
}

func TestApplyDeltaUnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	cart := []types.CartItem{{ID: 1, Name: "Fries", Price: "8.50", Quantity: 2}}
	got := ApplyDelta(cart, 42, 3)
	if got[0].Quantity != 2 || len(got) != 1 {
		t.Fatalf("unexpected cart after unknown delta: %+v", got)
	}
}

func TestApplyDeltaSequencesNeverGoNegative(t *testing.T) {
	t.Parallel()

	cart := []types.CartItem{{ID: 1, Name: "Wings", Price: "18.00", Quantity: 0}}
	deltas := []int{2, -1, -5, 3, -2, -2, 1}
	for _, d := range deltas {
		cart = ApplyDelta(cart, 1, d)
		if cart[0].Quantity < 0 {
			t.Fatalf("quantity went negative after delta %d", d)
		}
		if _, err := Total(cart); err != nil {
			t.Fatalf("total must recompute cleanly at every point: %v", err)
		}
	}
}

func TestUpsertReplacesOrAppends(t *testing.T) {
	t.Parallel()

	cart := []types.CartItem{{ID: 1, Name: "Fries", Price: "8.50", Quantity: 1}}

	cart = Upsert(cart, types.CartItem{ID: 1, Name: "Fries", Price: "8.50", Quantity: 3})
	if len(cart) != 1 || cart[0].Quantity != 3 {
		t.Fatalf("expected replaced row, got %+v", cart)
	}

	cart = Upsert(cart, types.CartItem{ID: 2, Name: "Sundae", Price: "9.75", Quantity: 1})
	if len(cart) != 2 {
		t.Fatalf("expected appended row, got %+v", cart)
	}

	cart = Upsert(cart, types.CartItem{ID: 2, Name: "Sundae", Price: "9.75", Quantity: -4})
	if cart[1].Quantity != 0 {
		t.Fatalf("negative quantities must clamp to zero, got %d", cart[1].Quantity)
	}
}

func TestTotalIncludesZeroQuantityRows(t *testing.T) {
	t.Parallel()

	cart := []types.CartItem{
		{ID: 1, Name: "Zinger Combo", Price: "28.00", Quantity: 2},
		{ID: 2, Name: "Fries", Price: "8.50", Quantity: 0},
		{ID: 3, Name: "Iced Coffee", Price: "11.50", Quantity: 1},
	}

	got, err := TotalString(cart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "67.50" {
		t.Fatalf("expected total 67.50, got %s", got)
	}
}

func TestTotalRejectsNonNumericPrice(t *testing.T) {
	t.Parallel()

	cart := []types.CartItem{{ID: 1, Name: "Broken", Price: "not-a-price", Quantity: 1}}
	_, err := Total(cart)
	if err == nil {
		t.Fatal("expected error for non-numeric price")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeInternal {
		t.Fatalf("expected internal error code, got %v", err)
	}
}
