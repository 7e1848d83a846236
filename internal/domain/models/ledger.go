package models

import "time"

// Unit labels a quantity in the inventory. The set is small and fixed; an
// item keeps the unit it was created with for its whole lifetime.
type Unit string

const (
	UnitPieces Unit = "Pieces"
	UnitLiters Unit = "Liters"
	UnitGrams  Unit = "Grams"
)

// InventoryItem is the remaining stock of one ingredient. Value is the
// monetary worth of the remaining quantity as a whole, not a per-unit price;
// both fields deplete proportionally when stock is consumed.
type InventoryItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     Unit    `json:"unit"`
	Value    float64 `json:"value"`
}

// PurchaseRecord captures one purchase attributed to a roommate. Immutable
// once appended to a purchase log.
type PurchaseRecord struct {
	Item     string    `json:"item"`
	Quantity float64   `json:"quantity"`
	Unit     Unit      `json:"unit"`
	Price    float64   `json:"price"`
	Date     time.Time `json:"date"`
}

// ConsumptionRecord captures one removal from stock. ValueDeducted is the
// weighted-average worth of the removed quantity at removal time, which is
// not necessarily what the consumed units originally cost.
type ConsumptionRecord struct {
	Item          string    `json:"item"`
	Quantity      float64   `json:"quantity"`
	Unit          Unit      `json:"unit"`
	ValueDeducted float64   `json:"value_deducted"`
	Date          time.Time `json:"date"`
}

// RatingEntry is one cooked-recipe rating in the household cookbook history.
type RatingEntry struct {
	ID     string    `json:"id"`
	Person string    `json:"person"`
	Recipe string    `json:"recipe"`
	Rating int       `json:"rating"`
	Link   string    `json:"link"`
	Date   time.Time `json:"date"`
}
