package menu

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestItemsHaveParsablePrices(t *testing.T) {
	t.Parallel()

	if len(Items()) == 0 {
		t.Fatal("menu must not be empty")
	}
	for _, item := range Items() {
		if _, err := decimal.NewFromString(item.Price); err != nil {
			t.Fatalf("item %d %q has unparsable price %q: %v", item.ID, item.Name, item.Price, err)
		}
		if item.Name == "" {
			t.Fatalf("item %d has empty name", item.ID)
		}
	}
}

func TestFindByID(t *testing.T) {
	t.Parallel()

	item, ok := FindByID(2)
	if !ok || item.Name != "Zinger Combo" {
		t.Fatalf("expected zinger combo, got %+v ok=%v", item, ok)
	}
	if _, ok := FindByID(9999); ok {
		t.Fatal("expected miss for unknown id")
	}
}
