package cart

type applyItemRequest struct {
	ItemID int64 `json:"itemId" validate:"required"`
	// Delta may be negative; a row clamped to zero quantity is kept.
	Delta int `json:"delta"`
}
