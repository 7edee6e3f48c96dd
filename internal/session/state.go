package session

import (
	"github.com/angelmondragon/orderchat-backend/pkg/enums"
	"github.com/angelmondragon/orderchat-backend/pkg/types"
)

// CheckoutState tracks the active checkout dialogue phase and the order
// fields collected so far.
type CheckoutState struct {
	Step    enums.CheckoutStep `json:"step"`
	Details types.OrderDetails `json:"details"`
}

// State is the full conversational state of one session. All mutation goes
// through Session.Dispatch; readers get copies.
type State struct {
	Messages         []types.Message  `json:"messages"`
	Cart             []types.CartItem `json:"cart"`
	Checkout         CheckoutState    `json:"checkout"`
	Loading          bool             `json:"loading"`
	CurrentQueryType enums.QueryType  `json:"currentQueryType"`
	Mode             enums.ChatMode   `json:"mode"`
}

func newState() State {
	return State{
		Messages:         []types.Message{},
		Cart:             []types.CartItem{},
		CurrentQueryType: enums.QueryTypeGeneral,
		Mode:             enums.ChatModeBrowse,
	}
}

func (s State) clone() State {
	out := s
	out.Messages = make([]types.Message, len(s.Messages))
	copy(out.Messages, s.Messages)
	out.Cart = make([]types.CartItem, len(s.Cart))
	copy(out.Cart, s.Cart)
	return out
}
