package chat

import (
	"strings"

	"github.com/angelmondragon/orderchat-backend/pkg/enums"
)

var menuKeywords = []string{
	"menu",
	"suggest",
	"recommend",
	"veg",
	"vegetarian",
	"vegan",
	"combo",
	"meal",
	"price",
	"burger",
	"chicken",
	"wings",
	"fries",
	"dessert",
	"drink",
	"coffee",
	"lunch",
	"dinner",
	"breakfast",
	"spicy",
	"eat",
	"hungry",
	"food",
	"order",
}

var orderKeywords = []string{
	"my order",
	"order status",
	"track",
	"delivery status",
	"where is my",
}

// Classify maps free-text input to a conversational intent. It is pure and
// total: anything that matches no known pattern is General.
func Classify(text string) enums.QueryType {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return enums.QueryTypeGeneral
	}

	for _, phrase := range orderKeywords {
		if strings.Contains(normalized, phrase) {
			return enums.QueryTypeOrder
		}
	}
	for _, keyword := range menuKeywords {
		if strings.Contains(normalized, keyword) {
			return enums.QueryTypeMenu
		}
	}
	return enums.QueryTypeGeneral
}
