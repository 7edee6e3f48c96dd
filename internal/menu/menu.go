package menu

import "github.com/angelmondragon/orderchat-backend/pkg/types"

// items is the static menu feed. The chat surface treats it as read-only
// input to prompt construction; prices stay decimal strings end to end.
var items = []types.MenuItem{
	{
		ID:                1,
		Name:              "Classic Chicken Burger Meal",
		Description:       "Crispy fried chicken fillet burger with fries and a drink.",
		Category:          "Meals",
		Price:             "24.50",
		SpicinessLevel:    2,
		SweetnessLevel:    0,
		DietaryPreference: []string{"non-vegetarian"},
		HealthinessScore:  4,
		Popularity:        9,
		CaffeineLevel:     "none",
		SufficientFor:     1,
		Image:             "/images/chicken-burger-meal.jpg",
	},
	{
		ID:                2,
		Name:              "Zinger Combo",
		Description:       "Spicy zinger burger, regular fries, coleslaw and a soft drink.",
		Category:          "Combos",
		Price:             "28.00",
		SpicinessLevel:    4,
		SweetnessLevel:    0,
		DietaryPreference: []string{"non-vegetarian"},
		HealthinessScore:  3,
		Popularity:        10,
		CaffeineLevel:     "none",
		SufficientFor:     1,
		Image:             "/images/zinger-combo.jpg",
	},
	{
		ID:                3,
		Name:              "Veggie Supreme Wrap",
		Description:       "Grilled vegetables and cheese wrapped in a toasted tortilla.",
		Category:          "Wraps",
		Price:             "16.75",
		SpicinessLevel:    1,
		SweetnessLevel:    0,
		DietaryPreference: []string{"vegetarian"},
		HealthinessScore:  7,
		Popularity:        6,
		CaffeineLevel:     "none",
		SufficientFor:     1,
		Image:             "/images/veggie-wrap.jpg",
	},
	{
		ID:                4,
		Name:              "Family Bucket",
		Description:       "Twelve pieces of fried chicken with two large sides.",
		Category:          "Buckets",
		Price:             "89.00",
		SpicinessLevel:    2,
		SweetnessLevel:    0,
		DietaryPreference: []string{"non-vegetarian"},
		HealthinessScore:  3,
		Popularity:        8,
		CaffeineLevel:     "none",
		SufficientFor:     4,
		Image:             "/images/family-bucket.jpg",
	},
	{
		ID:                5,
		Name:              "Paneer Crunch Burger",
		Description:       "Breaded paneer patty with lettuce and house sauce.",
		Category:          "Burgers",
		Price:             "19.25",
		SpicinessLevel:    3,
		SweetnessLevel:    0,
		DietaryPreference: []string{"vegetarian"},
		HealthinessScore:  5,
		Popularity:        7,
		CaffeineLevel:     "none",
		SufficientFor:     1,
		Image:             "/images/paneer-crunch.jpg",
	},
	{
		ID:                6,
		Name:              "Garden Salad",
		Description:       "Fresh lettuce, cucumber, tomato and corn with vinaigrette.",
		Category:          "Sides",
		Price:             "12.00",
		SpicinessLevel:    0,
		SweetnessLevel:    1,
		DietaryPreference: []string{"vegetarian", "vegan"},
		HealthinessScore:  9,
		Popularity:        4,
		CaffeineLevel:     "none",
		SufficientFor:     1,
		Image:             "/images/garden-salad.jpg",
	},
	{
		ID:                7,
		Name:              "Regular Fries",
		Description:       "Golden fries with a pinch of salt.",
		Category:          "Sides",
		Price:             "8.50",
		SpicinessLevel:    0,
		SweetnessLevel:    0,
		DietaryPreference: []string{"vegetarian", "vegan"},
		HealthinessScore:  3,
		Popularity:        10,
		CaffeineLevel:     "none",
		SufficientFor:     1,
		Image:             "/images/fries.jpg",
	},
	{
		ID:                8,
		Name:              "Lunch Saver Combo",
		Description:       "Two-piece chicken, fries and a drink at a lunch price.",
		Category:          "Combos",
		Price:             "22.00",
		SpicinessLevel:    2,
		SweetnessLevel:    0,
		DietaryPreference: []string{"non-vegetarian"},
		HealthinessScore:  4,
		Popularity:        9,
		CaffeineLevel:     "none",
		SufficientFor:     1,
		Image:             "/images/lunch-saver.jpg",
	},
	{
		ID:                9,
		Name:              "Iced Coffee",
		Description:       "Cold brewed coffee over ice with a dash of milk.",
		Category:          "Beverages",
		Price:             "11.50",
		SpicinessLevel:    0,
		SweetnessLevel:    3,
		DietaryPreference: []string{"vegetarian"},
		HealthinessScore:  5,
		Popularity:        7,
		CaffeineLevel:     "high",
		SufficientFor:     1,
		Image:             "/images/iced-coffee.jpg",
	},
	{
		ID:                10,
		Name:              "Chocolate Sundae",
		Description:       "Soft serve with warm chocolate fudge.",
		Category:          "Desserts",
		Price:             "9.75",
		SpicinessLevel:    0,
		SweetnessLevel:    5,
		DietaryPreference: []string{"vegetarian"},
		HealthinessScore:  2,
		Popularity:        8,
		CaffeineLevel:     "low",
		SufficientFor:     1,
		Image:             "/images/choc-sundae.jpg",
	},
	{
		ID:                11,
		Name:              "Spicy Wings (6 pc)",
		Description:       "Six hot wings tossed in peri-peri glaze.",
		Category:          "Sides",
		Price:             "18.00",
		SpicinessLevel:    5,
		SweetnessLevel:    0,
		DietaryPreference: []string{"non-vegetarian"},
		HealthinessScore:  3,
		Popularity:        8,
		CaffeineLevel:     "none",
		SufficientFor:     1,
		Image:             "/images/spicy-wings.jpg",
	},
	{
		ID:                12,
		Name:              "Falafel Box",
		Description:       "Falafel bites with hummus, pickles and pita.",
		Category:          "Boxes",
		Price:             "21.00",
		SpicinessLevel:    1,
		SweetnessLevel:    0,
		DietaryPreference: []string{"vegetarian", "vegan"},
		HealthinessScore:  8,
		Popularity:        5,
		CaffeineLevel:     "none",
		SufficientFor:     1,
		Image:             "/images/falafel-box.jpg",
	},
}

// Items returns the full menu. Callers must treat the slice as read-only.
func Items() []types.MenuItem {
	return items
}

// FindByID returns the menu item with the given id.
func FindByID(id int64) (types.MenuItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return types.MenuItem{}, false
}
