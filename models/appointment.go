package models

import "time"

type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// CanCancel reports whether a client may still cancel an appointment in this
// status. Transitions past confirmed are owned by the operator side.
func (s AppointmentStatus) CanCancel() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

const BookingSourceWebsite = "website"

type Appointment struct {
	ID               string            `json:"id" db:"id"`
	BusinessID       string            `json:"business_id" db:"business_id"`
	ClientID         string            `json:"client_id" db:"client_id"`
	ServiceID        string            `json:"service_id" db:"service_id"`
	EmployeeID       *string           `json:"employee_id,omitempty" db:"employee_id"`
	AppointmentDate  string            `json:"appointment_date" db:"appointment_date"`
	StartTime        string            `json:"start_time" db:"start_time"`
	EndTime          string            `json:"end_time" db:"end_time"`
	DurationMinutes  int               `json:"duration_minutes" db:"duration_minutes"`
	ServicePrice     float64           `json:"service_price" db:"service_price"`
	TotalAmount      float64           `json:"total_amount" db:"total_amount"`
	Currency         string            `json:"currency" db:"currency"`
	Status           AppointmentStatus `json:"status" db:"status"`
	ClientNotes      *string           `json:"client_notes,omitempty" db:"client_notes"`
	BookingReference string            `json:"booking_reference" db:"booking_reference"`
	BookingSource    string            `json:"booking_source" db:"booking_source"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
	CancelledAt      *time.Time        `json:"cancelled_at,omitempty" db:"cancelled_at"`
}

// AppointmentDetail is an appointment joined with the summaries the listing
// page renders. Field names follow the PostgREST embedded-resource keys.
type AppointmentDetail struct {
	Appointment
	Business *BusinessSummary `json:"businesses,omitempty"`
	Service  *ServiceSummary  `json:"services,omitempty"`
	Employee *EmployeeSummary `json:"employees,omitempty"`
}

type CreateAppointmentRequest struct {
	BusinessID      string  `json:"business_id" binding:"required"`
	ServiceID       string  `json:"service_id" binding:"required"`
	EmployeeID      *string `json:"employee_id,omitempty"`
	AppointmentDate string  `json:"appointment_date" binding:"required"`
	StartTime       string  `json:"start_time" binding:"required"`
	ClientNotes     string  `json:"client_notes,omitempty"`
}

// AppointmentFilter is the closed filter set of the listing page.
type AppointmentFilter string

const (
	FilterAll      AppointmentFilter = "all"
	FilterUpcoming AppointmentFilter = "upcoming"
	FilterPast     AppointmentFilter = "past"
)

func (f AppointmentFilter) Valid() bool {
	switch f {
	case FilterAll, FilterUpcoming, FilterPast:
		return true
	}
	return false
}
