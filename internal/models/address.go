package models

import "time"

// Address is a saved shipping address. Each user has at most one default.
type Address struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	FullName     string    `json:"full_name"`
	PhoneNumber  string    `json:"phone_number"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Pincode      string    `json:"pincode"`
	IsDefault    bool      `json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AddressRequest struct {
	FullName     string `json:"full_name" validate:"required,max=100"`
	PhoneNumber  string `json:"phone_number" validate:"required,min=10,max=15"`
	AddressLine1 string `json:"address_line1" validate:"required,max=255"`
	AddressLine2 string `json:"address_line2,omitempty" validate:"omitempty,max=255"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state" validate:"required,max=100"`
	Pincode      string `json:"pincode" validate:"required,len=6,numeric"`
	IsDefault    *bool  `json:"is_default,omitempty"`
}
