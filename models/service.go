package models

import "time"

type Service struct {
	ID               string    `json:"id" db:"id"`
	BusinessID       string    `json:"business_id" db:"business_id"`
	Name             string    `json:"name" db:"name"`
	Description      *string   `json:"description,omitempty" db:"description"`
	Price            float64   `json:"price" db:"price"`
	Currency         string    `json:"currency" db:"currency"`
	DurationMinutes  int       `json:"duration_minutes" db:"duration_minutes"`
	IsActive         bool      `json:"is_active" db:"is_active"`
	IsBookableOnline bool      `json:"is_bookable_online" db:"is_bookable_online"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

type ServiceSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
