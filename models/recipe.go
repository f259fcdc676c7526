package models

import "time"

// Recipe lives in the recipes JSON document, not in Postgres. Popularity is
// recomputed from the full purchase history on every ranking pass and the
// updated scores are written back for display.
type Recipe struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Popularity   int      `json:"popularity"`
}

// PurchaseEntry is one checked-out product line in the purchase history
// document. The history is append-only.
type PurchaseEntry struct {
	Name           string    `json:"name"`
	Quantity       int       `json:"quantity"`
	Price          float64   `json:"price"`
	ExpirationDate time.Time `json:"expiration_date"`
}

// Document envelopes, matching the on-disk JSON layout.
type HistoryDocument struct {
	History []PurchaseEntry `json:"history"`
}

type RecipesDocument struct {
	Recipes []Recipe `json:"recipes"`
}
