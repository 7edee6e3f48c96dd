package session

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/angelmondragon/orderchat-backend/internal/cart"
	"github.com/angelmondragon/orderchat-backend/pkg/enums"
	"github.com/angelmondragon/orderchat-backend/pkg/types"
)

// messageTimeLayout matches the 12-hour clock the chat UI renders.
const messageTimeLayout = "3:04 PM"

// Session owns the conversational state for one chat participant. All
// mutation is serialized through Dispatch under one mutex, so concurrent
// dispatches apply one at a time in arrival order.
type Session struct {
	ID string

	mu            sync.Mutex
	state         State
	nextMessageID int64
	now           func() time.Time
}

// New creates an empty session.
func New(id string) *Session {
	return &Session{
		ID:            id,
		state:         newState(),
		nextMessageID: 1,
		now:           time.Now,
	}
}

// NewMessage allocates the next message id and stamps the current wall
// time. Ids come from a per-session monotonic counter, so two messages
// built in the same instant never collide.
func (s *Session) NewMessage(text string, isBot bool, queryType enums.QueryType, imageURL string) types.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextMessageID
	s.nextMessageID++
	return types.Message{
		ID:        id,
		Text:      text,
		IsBot:     isBot,
		Time:      s.now().Format(messageTimeLayout),
		ImageURL:  imageURL,
		QueryType: queryType,
	}
}

// Dispatch applies one action to the session state.
func (s *Session) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = apply(s.state, action)
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func apply(state State, action Action) State {
	switch a := action.(type) {
	case AddMessage:
		state.Messages = append(state.Messages, a.Message)
	case SetLoading:
		state.Loading = a.Loading
	case SetQueryType:
		state.CurrentQueryType = a.QueryType
	case SetMode:
		state.Mode = a.Mode
	case SetCheckoutStep:
		state.Checkout.Step = a.Step
	case UpdateOrderDetails:
		state.Checkout.Details = mergeDetails(state.Checkout.Details, a.Patch)
	case UpdateCartItem:
		state.Cart = cart.Upsert(state.Cart, a.Item)
	case ApplyCartDelta:
		state.Cart = cart.ApplyDelta(state.Cart, a.ItemID, a.Delta)
	case SetCart:
		items := make([]types.CartItem, len(a.Items))
		copy(items, a.Items)
		state.Cart = items
	case ClearCart:
		state.Cart = []types.CartItem{}
	}
	return state
}

func mergeDetails(current, patch types.OrderDetails) types.OrderDetails {
	if patch.Name != "" {
		current.Name = patch.Name
	}
	if patch.Address != "" {
		current.Address = patch.Address
	}
	if patch.Phone != "" {
		current.Phone = patch.Phone
	}
	if patch.CardNumber != "" {
		current.CardNumber = patch.CardNumber
	}
	if patch.ExpiryDate != "" {
		current.ExpiryDate = patch.ExpiryDate
	}
	if patch.CVV != "" {
		current.CVV = patch.CVV
	}
	return current
}

// snapshot is the serialized form written to the snapshot store.
type snapshot struct {
	State         State `json:"state"`
	NextMessageID int64 `json:"nextMessageId"`
}

// MarshalSnapshot serializes the session for persistence.
func (s *Session) MarshalSnapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Marshal(snapshot{State: s.state, NextMessageID: s.nextMessageID})
}

// RestoreSnapshot rebuilds a session from a serialized snapshot.
func RestoreSnapshot(id string, payload []byte) (*Session, error) {
	var snap snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, err
	}
	sess := New(id)
	if snap.State.Messages == nil {
		snap.State.Messages = []types.Message{}
	}
	if snap.State.Cart == nil {
		snap.State.Cart = []types.CartItem{}
	}
	sess.state = snap.State
	if snap.NextMessageID > 0 {
		sess.nextMessageID = snap.NextMessageID
	}
	return sess, nil
}
