package chat

import (
	"github.com/angelmondragon/orderchat-backend/internal/cart"
	"github.com/angelmondragon/orderchat-backend/internal/session"
	"github.com/angelmondragon/orderchat-backend/pkg/enums"
	"github.com/angelmondragon/orderchat-backend/pkg/types"
)

type submissionResponse struct {
	Messages         []types.Message    `json:"messages"`
	CheckoutStep     enums.CheckoutStep `json:"checkoutStep"`
	Mode             enums.ChatMode     `json:"mode"`
	CurrentQueryType enums.QueryType    `json:"currentQueryType"`
	Loading          bool               `json:"loading"`
}

func newSubmission(delta []types.Message, state session.State) submissionResponse {
	if delta == nil {
		delta = []types.Message{}
	}
	return submissionResponse{
		Messages:         delta,
		CheckoutStep:     state.Checkout.Step,
		Mode:             state.Mode,
		CurrentQueryType: state.CurrentQueryType,
		Loading:          state.Loading,
	}
}

type stateResponse struct {
	Messages         []types.Message    `json:"messages"`
	Cart             []types.CartItem   `json:"cart"`
	CartTotal        string             `json:"cartTotal"`
	CheckoutStep     enums.CheckoutStep `json:"checkoutStep"`
	OrderDetails     types.OrderDetails `json:"orderDetails"`
	Mode             enums.ChatMode     `json:"mode"`
	CurrentQueryType enums.QueryType    `json:"currentQueryType"`
	Loading          bool               `json:"loading"`
}

func newState(state session.State) stateResponse {
	total, err := cart.TotalString(state.Cart)
	if err != nil {
		total = ""
	}
	return stateResponse{
		Messages:         state.Messages,
		Cart:             state.Cart,
		CartTotal:        total,
		CheckoutStep:     state.Checkout.Step,
		OrderDetails:     state.Checkout.Details,
		Mode:             state.Mode,
		CurrentQueryType: state.CurrentQueryType,
		Loading:          state.Loading,
	}
}
