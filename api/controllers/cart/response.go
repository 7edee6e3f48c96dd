package cart

import (
	cartsvc "github.com/angelmondragon/orderchat-backend/internal/cart"
	"github.com/angelmondragon/orderchat-backend/internal/session"
	"github.com/angelmondragon/orderchat-backend/pkg/enums"
	"github.com/angelmondragon/orderchat-backend/pkg/types"
)

type cartResponse struct {
	Items []types.CartItem `json:"items"`
	Total string           `json:"total"`
}

func newCart(items []types.CartItem) (cartResponse, error) {
	total, err := cartsvc.TotalString(items)
	if err != nil {
		return cartResponse{}, err
	}
	if items == nil {
		items = []types.CartItem{}
	}
	return cartResponse{Items: items, Total: total}, nil
}

type checkoutResponse struct {
	CheckoutStep enums.CheckoutStep `json:"checkoutStep"`
	Mode         enums.ChatMode     `json:"mode"`
	Total        string             `json:"total"`
}

func newCheckout(state session.State) (checkoutResponse, error) {
	total, err := cartsvc.TotalString(state.Cart)
	if err != nil {
		return checkoutResponse{}, err
	}
	return checkoutResponse{
		CheckoutStep: state.Checkout.Step,
		Mode:         state.Mode,
		Total:        total,
	}, nil
}
