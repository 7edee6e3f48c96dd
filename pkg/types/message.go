package types

import "github.com/angelmondragon/orderchat-backend/pkg/enums"

// Message is one entry in a session transcript. Messages are appended once
// and never mutated or removed; transcript order equals send order.
type Message struct {
	ID        int64           `json:"id"`
	Text      string          `json:"text"`
	IsBot     bool            `json:"isBot"`
	Time      string          `json:"time"`
	ImageURL  string          `json:"imageUrl,omitempty"`
	QueryType enums.QueryType `json:"queryType"`
}

// OrderDetails holds the six fields collected by the checkout dialogue, in
// collection order. A field counts as collected once it is non-empty; the
// dialogue never validates the content beyond presence.
type OrderDetails struct {
	Name       string `json:"name,omitempty"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	CardNumber string `json:"cardNumber,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CVV        string `json:"cvv,omitempty"`
}
