package services

import (
	"context"
	"time"

	"github.com/melonapp/backend-booking/models"
)

// Directory is read access to the public catalog: businesses, their bookable
// services and their bookable employees.
type Directory interface {
	GetBusiness(ctx context.Context, id string) (*models.Business, error)
	SearchBusinesses(ctx context.Context, req models.BusinessSearchRequest) ([]models.Business, error)
	ListBookableServices(ctx context.Context, businessID string) ([]models.Service, error)
	ListBookableEmployees(ctx context.Context, businessID string) ([]models.Employee, error)
}

// Persistence is read/write access to client and appointment records. The
// backing store assigns ids and created_at timestamps.
type Persistence interface {
	// FindClient returns (nil, nil) when no client exists for the pair.
	FindClient(ctx context.Context, businessID, userID string) (*models.Client, error)
	CreateClient(ctx context.Context, client models.NewClient) (*models.Client, error)
	ListClientIDs(ctx context.Context, userID string) ([]string, error)
	CreateAppointment(ctx context.Context, appt NewAppointment) (*models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	// ListAppointments returns all appointments for the given clients,
	// ordered by appointment_date then start_time, most recent first.
	ListAppointments(ctx context.Context, clientIDs []string) ([]models.AppointmentDetail, error)
	CancelAppointment(ctx context.Context, id string, cancelledAt time.Time) error
}

// NewAppointment is the insert payload built by the booking workflow.
type NewAppointment struct {
	BusinessID       string  `json:"business_id"`
	ClientID         string  `json:"client_id"`
	ServiceID        string  `json:"service_id"`
	EmployeeID       *string `json:"employee_id"`
	AppointmentDate  string  `json:"appointment_date"`
	StartTime        string  `json:"start_time"`
	EndTime          string  `json:"end_time"`
	DurationMinutes  int     `json:"duration_minutes"`
	ServicePrice     float64 `json:"service_price"`
	TotalAmount      float64 `json:"total_amount"`
	Currency         string  `json:"currency"`
	Status           string  `json:"status"`
	ClientNotes      string  `json:"client_notes"`
	BookingReference string  `json:"booking_reference"`
	BookingSource    string  `json:"booking_source"`
}

// BookingEngine is the workflow surface the appointment handlers depend on.
type BookingEngine interface {
	SubmitBooking(ctx context.Context, user *models.AuthUser, req models.CreateAppointmentRequest) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, user *models.AuthUser, appointmentID string) error
	ListAppointments(ctx context.Context, user *models.AuthUser, filter models.AppointmentFilter) ([]models.AppointmentDetail, error)
}
