package models

type CreateItemRequest struct {
	ID          string   `json:"id" form:"id"`
	Name        string   `json:"name" form:"name"`
	Price       *float64 `json:"price" form:"price"`
	Description string   `json:"description" form:"description"`
	Image       string   `json:"image" form:"image"`
	Category    string   `json:"category" form:"category"`
	InStock     *bool    `json:"inStock" form:"inStock"`
	Featured    *bool    `json:"featured" form:"featured"`
}

// UpdateItemRequest is a partial merge; nil fields keep the stored value.
type UpdateItemRequest struct {
	Name        *string  `json:"name" form:"name"`
	Price       *float64 `json:"price" form:"price"`
	Description *string  `json:"description" form:"description"`
	Image       *string  `json:"image" form:"image"`
	Category    *string  `json:"category" form:"category"`
	InStock     *bool    `json:"inStock" form:"inStock"`
	Featured    *bool    `json:"featured" form:"featured"`
}

type GeneratePinRequest struct {
	Phone string `json:"phone"`
}

type VerifyPinRequest struct {
	Phone string `json:"phone"`
	Pin   string `json:"pin"`
}
