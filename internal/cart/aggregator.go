package cart

import (
	"github.com/angelmondragon/orderchat-backend/pkg/errors"
	"github.com/angelmondragon/orderchat-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// ApplyDelta returns a copy of the cart with the item's quantity shifted by
// delta, clamped at zero. Rows reduced to zero are kept in the cart; a
// delta against an unknown item id leaves the cart unchanged.
func ApplyDelta(cart []types.CartItem, itemID int64, delta int) []types.CartItem {
	next := make([]types.CartItem, len(cart))
	copy(next, cart)
	for i := range next {
		if next[i].ID != itemID {
			continue
		}
		qty := next[i].Quantity + delta
		if qty < 0 {
			qty = 0
		}
		next[i].Quantity = qty
		break
	}
	return next
}

// Upsert returns a copy of the cart with the item replaced, or appended
// when no row with its id exists yet. Quantity is clamped at zero.
func Upsert(cart []types.CartItem, item types.CartItem) []types.CartItem {
	if item.Quantity < 0 {
		item.Quantity = 0
	}
	next := make([]types.CartItem, len(cart))
	copy(next, cart)
	for i := range next {
		if next[i].ID == item.ID {
			next[i] = item
			return next
		}
	}
	return append(next, item)
}

// Total sums price times quantity across all rows, zero-quantity rows
// included. A non-numeric price string is a fatal data error here.
func Total(cart []types.CartItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range cart {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return decimal.Zero, errors.Wrap(errors.CodeInternal, err, "cart item has non-numeric price").
				WithDetails(map[string]any{"item_id": item.ID, "price": item.Price})
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}

// TotalString renders the cart total rounded to two decimal places.
func TotalString(cart []types.CartItem) (string, error) {
	total, err := Total(cart)
	if err != nil {
		return "", err
	}
	return total.StringFixed(2), nil
}
