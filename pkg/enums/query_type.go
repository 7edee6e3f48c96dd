package enums

import "fmt"

// QueryType classifies the conversational intent attached to a chat message.
type QueryType string

const (
	QueryTypeMenu     QueryType = "menu_query"
	QueryTypeOrder    QueryType = "order_query"
	QueryTypeCheckout QueryType = "checkout"
	QueryTypeGeneral  QueryType = "general"
)

var validQueryTypes = []QueryType{
	QueryTypeMenu,
	QueryTypeOrder,
	QueryTypeCheckout,
	QueryTypeGeneral,
}

// String implements fmt.Stringer.
func (q QueryType) String() string {
	return string(q)
}

// IsValid reports whether the value is a known QueryType.
func (q QueryType) IsValid() bool {
	for _, candidate := range validQueryTypes {
		if candidate == q {
			return true
		}
	}
	return false
}

// ParseQueryType converts raw input into a QueryType.
func ParseQueryType(value string) (QueryType, error) {
	for _, candidate := range validQueryTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid query type %q", value)
}
