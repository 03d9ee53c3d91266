package models

import "time"

type Employee struct {
	ID                    string    `json:"id" db:"id"`
	BusinessID            string    `json:"business_id" db:"business_id"`
	FirstName             string    `json:"first_name" db:"first_name"`
	LastName              string    `json:"last_name" db:"last_name"`
	Status                string    `json:"status" db:"status"`
	IsAvailableForBooking bool      `json:"is_available_for_booking" db:"is_available_for_booking"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
}

type EmployeeSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
