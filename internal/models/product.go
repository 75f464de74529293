package models

import "time"

type Product struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description,omitempty"`
	BasePrice          float64 `json:"base_price"`
	DiscountPercentage float64 `json:"discount_percentage"`
	// FinalPrice is derived from BasePrice and DiscountPercentage; it is
	// recomputed on every write, never edited directly.
	FinalPrice    float64   `json:"final_price"`
	StockQuantity int       `json:"stock_quantity"`
	WeightInGrams float64   `json:"weight_in_grams,omitempty"`
	Purity        string    `json:"purity,omitempty"` // 22K, 24K, 999, ...
	ImageURL      string    `json:"image_url,omitempty"`
	Category      string    `json:"category,omitempty"` // Ring, Necklace, Coin, Bar, ...
	IsActive      bool      `json:"is_active"`
	IsFeatured    bool      `json:"is_featured"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	Name               string  `json:"name" validate:"required,min=3,max=200"`
	Description        string  `json:"description,omitempty"`
	BasePrice          float64 `json:"base_price" validate:"required,gt=0"`
	DiscountPercentage float64 `json:"discount_percentage" validate:"gte=0,lte=100"`
	StockQuantity      int     `json:"stock_quantity" validate:"gte=0"`
	WeightInGrams      float64 `json:"weight_in_grams,omitempty" validate:"omitempty,gt=0"`
	Purity             string  `json:"purity,omitempty"`
	ImageURL           string  `json:"image_url,omitempty" validate:"omitempty,url"`
	Category           string  `json:"category,omitempty"`
	IsFeatured         bool    `json:"is_featured"`
}

type UpdateProductRequest struct {
	Name               *string  `json:"name,omitempty" validate:"omitempty,min=3,max=200"`
	Description        *string  `json:"description,omitempty"`
	BasePrice          *float64 `json:"base_price,omitempty" validate:"omitempty,gt=0"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	StockQuantity      *int     `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	WeightInGrams      *float64 `json:"weight_in_grams,omitempty" validate:"omitempty,gt=0"`
	Purity             *string  `json:"purity,omitempty"`
	ImageURL           *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	Category           *string  `json:"category,omitempty"`
	IsActive           *bool    `json:"is_active,omitempty"`
	IsFeatured         *bool    `json:"is_featured,omitempty"`
}

type ProductListResponse struct {
	Products []*Product `json:"products"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	Size     int        `json:"size"`
}
