package models

import "time"

type Business struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Description   *string   `json:"description,omitempty" db:"description"`
	AddressLine1  string    `json:"address_line1" db:"address_line1"`
	City          string    `json:"city" db:"city"`
	Phone         *string   `json:"phone,omitempty" db:"phone"`
	Email         *string   `json:"email,omitempty" db:"email"`
	CoverImageURL *string   `json:"cover_image_url,omitempty" db:"cover_image_url"`
	Status        string    `json:"status" db:"status"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	AverageRating float64   `json:"average_rating" db:"average_rating"`
	TotalReviews  int       `json:"total_reviews" db:"total_reviews"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// BusinessSummary is the embedded shape returned alongside appointments.
type BusinessSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	City  string  `json:"city"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

type BusinessSearchRequest struct {
	Query string `form:"q"`
	City  string `form:"city"`
}

// BusinessDetailResponse bundles everything the detail page needs in one shot.
type BusinessDetailResponse struct {
	Business  Business   `json:"business"`
	Services  []Service  `json:"services"`
	Employees []Employee `json:"employees"`
}
