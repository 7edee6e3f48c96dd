package session

import (
	"github.com/angelmondragon/orderchat-backend/pkg/enums"
	"github.com/angelmondragon/orderchat-backend/pkg/types"
)

// Action is the closed set of state mutations a session accepts. Actions
// are applied one at a time in dispatch order.
type Action interface {
	isAction()
}

// AddMessage appends a message to the transcript. The transcript is
// append-only; messages are never mutated or removed afterwards.
type AddMessage struct {
	Message types.Message
}

// SetLoading toggles the gateway-call-in-flight flag.
type SetLoading struct {
	Loading bool
}

// SetQueryType records the classification of the latest submission.
type SetQueryType struct {
	QueryType enums.QueryType
}

// SetMode switches the coarse UI mode.
type SetMode struct {
	Mode enums.ChatMode
}

// SetCheckoutStep moves the checkout dialogue to the given phase.
// CheckoutStepNone deactivates it.
type SetCheckoutStep struct {
	Step enums.CheckoutStep
}

// UpdateOrderDetails merges the non-empty fields of the patch into the
// collected order details. Filled fields are never overwritten back to
// empty.
type UpdateOrderDetails struct {
	Patch types.OrderDetails
}

// UpdateCartItem replaces or appends one cart row.
type UpdateCartItem struct {
	Item types.CartItem
}

// ApplyCartDelta shifts one row's quantity, clamped at zero.
type ApplyCartDelta struct {
	ItemID int64
	Delta  int
}

// SetCart replaces the whole cart.
type SetCart struct {
	Items []types.CartItem
}

// ClearCart empties the cart.
type ClearCart struct{}

func (AddMessage) isAction()         {}
func (SetLoading) isAction()         {}
func (SetQueryType) isAction()       {}
func (SetMode) isAction()            {}
func (SetCheckoutStep) isAction()    {}
func (UpdateOrderDetails) isAction() {}
func (UpdateCartItem) isAction()     {}
func (ApplyCartDelta) isAction()     {}
func (SetCart) isAction()            {}
func (ClearCart) isAction()          {}
