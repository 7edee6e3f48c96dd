package types

// CartItem is one row of a session cart. Price is kept as the menu's
// decimal string; quantity never goes below zero. Rows reduced to zero
// quantity stay in the cart.
type CartItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}
