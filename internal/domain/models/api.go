package models

// AddItemRequest is the payload for adding stock to the inventory.
type AddItemRequest struct {
	Item     string  `json:"item" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
	Unit     Unit    `json:"unit" binding:"required"`
	Price    float64 `json:"price"`
	Person   string  `json:"person" binding:"required"`
}

// RemoveItemRequest is the payload for consuming stock from the inventory.
type RemoveItemRequest struct {
	Item     string  `json:"item" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
	Unit     Unit    `json:"unit"`
	Person   string  `json:"person" binding:"required"`
}

// SuggestRequest selects the ingredients to aggregate suggestions for. An
// empty list means the whole pantry.
type SuggestRequest struct {
	Ingredients []string `json:"ingredients"`
}

// RateRequest submits one recipe rating.
type RateRequest struct {
	Person string `json:"person" binding:"required"`
	Recipe string `json:"recipe" binding:"required"`
	Link   string `json:"link"`
	Rating int    `json:"rating" binding:"required"`
}

// AddRoommateRequest appends one name to the roommate roster.
type AddRoommateRequest struct {
	Name string `json:"name" binding:"required"`
}
