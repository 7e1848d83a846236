package models

import "time"

// HouseholdReport is the periodic expense digest archived to MongoDB.
type HouseholdReport struct {
	ID             string             `bson:"_id" json:"id"`
	Date           time.Time          `bson:"date" json:"date"`
	Expenses       map[string]float64 `bson:"expenses" json:"expenses"`
	InventoryValue float64            `bson:"inventory_value" json:"inventory_value"`
	ItemCount      int                `bson:"item_count" json:"item_count"`
	Purchases      int                `bson:"purchases" json:"purchases"`
	Consumptions   int                `bson:"consumptions" json:"consumptions"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
