package models

import "time"

const DefaultCategory = "general"

type Item struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Price       float64   `json:"price" bson:"price"`
	Description string    `json:"description" bson:"description"`
	Image       string    `json:"image" bson:"image"`
	Category    string    `json:"category" bson:"category"`
	InStock     bool      `json:"inStock" bson:"in_stock"`
	Featured    bool      `json:"featured" bson:"featured"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// ItemFilter narrows a catalog listing. Nil fields are unconstrained.
type ItemFilter struct {
	Category string
	Featured *bool
	InStock  *bool
}
