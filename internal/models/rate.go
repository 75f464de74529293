package models

import "time"

type Asset struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"` // gold, silver, bitcoin, ...
	DisplayName string `json:"display_name"`
	Unit        string `json:"unit"` // gram, ounce, coin, ...
	IsActive    bool   `json:"is_active"`
}

// AssetRate is one asset's rate for one calendar day. The store enforces a
// unique (asset_id, date) pair, so an admin update for an existing day is an
// upsert in place.
type AssetRate struct {
	ID          int64     `json:"id"`
	AssetID     int64     `json:"asset_id"`
	AssetName   string    `json:"asset_name,omitempty"`
	Date        time.Time `json:"date"`
	Rate22K     float64   `json:"rate_22k,omitempty"` // gold only
	Rate24K     float64   `json:"rate_24k,omitempty"` // gold only
	RatePerUnit float64   `json:"rate_per_unit"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpdateRateRequest struct {
	AssetName   string  `json:"asset_name" validate:"required"`
	Rate22K     float64 `json:"rate_22k,omitempty" validate:"omitempty,gt=0"`
	Rate24K     float64 `json:"rate_24k,omitempty" validate:"omitempty,gt=0"`
	RatePerUnit float64 `json:"rate_per_unit" validate:"required,gt=0"`
}

type TodayRateResponse struct {
	AssetName     string  `json:"asset_name"`
	Date          string  `json:"date"`
	Rate22K       float64 `json:"rate_22k,omitempty"`
	Rate24K       float64 `json:"rate_24k,omitempty"`
	RatePerUnit   float64 `json:"rate_per_unit"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Yesterday     *struct {
		Date        string  `json:"date"`
		RatePerUnit float64 `json:"rate_per_unit"`
	} `json:"yesterday,omitempty"`
	Timestamp string `json:"timestamp"`
}

type RateHistoryResponse struct {
	AssetName string       `json:"asset_name"`
	Days      int          `json:"days"`
	Rates     []*AssetRate `json:"rates"`
}
