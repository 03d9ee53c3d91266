package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/melonapp/backend-booking/models"
)

const fallbackFirstName = "Client"

// BookingService is the booking workflow engine. It resolves the acting user
// to a per-business client record, validates the selection, computes the
// appointment timing and submits the record. Every remote call is attempted
// exactly once; any failure ends the attempt.
type BookingService struct {
	directory   Directory
	persistence Persistence
	logger      *zap.Logger
	now         func() time.Time
}

func NewBookingService(directory Directory, persistence Persistence, logger *zap.Logger) *BookingService {
	return &BookingService{
		directory:   directory,
		persistence: persistence,
		logger:      logger,
		now:         time.Now,
	}
}

// SubmitBooking runs one booking attempt for the given user. The user is an
// explicit parameter, never ambient state; a nil user fails before any remote
// call is issued.
func (s *BookingService) SubmitBooking(ctx context.Context, user *models.AuthUser, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	if user == nil {
		return nil, ErrAuthRequired
	}

	clientID, err := s.resolveClient(ctx, req.BusinessID, user)
	if err != nil {
		return nil, err
	}

	services, err := s.directory.ListBookableServices(ctx, req.BusinessID)
	if err != nil {
		return nil, err
	}
	service := findService(services, req.ServiceID)
	if service == nil {
		return nil, &InvalidSelectionError{Field: "service", ID: req.ServiceID}
	}

	if req.EmployeeID != nil && *req.EmployeeID != "" {
		employees, err := s.directory.ListBookableEmployees(ctx, req.BusinessID)
		if err != nil {
			return nil, err
		}
		if !hasEmployee(employees, *req.EmployeeID) {
			return nil, &InvalidSelectionError{Field: "employee", ID: *req.EmployeeID}
		}
	} else {
		req.EmployeeID = nil
	}

	startTime, err := NormalizeStartTime(req.StartTime)
	if err != nil {
		return nil, &InvalidSelectionError{Field: "start_time", ID: req.StartTime}
	}
	endTime, err := ComputeEndTime(req.StartTime, service.DurationMinutes)
	if err != nil {
		return nil, &InvalidSelectionError{Field: "start_time", ID: req.StartTime}
	}

	appt := NewAppointment{
		BusinessID:       req.BusinessID,
		ClientID:         clientID,
		ServiceID:        service.ID,
		EmployeeID:       req.EmployeeID,
		AppointmentDate:  req.AppointmentDate,
		StartTime:        startTime,
		EndTime:          endTime,
		DurationMinutes:  service.DurationMinutes,
		ServicePrice:     service.Price,
		TotalAmount:      service.Price,
		Currency:         service.Currency,
		Status:           string(models.StatusScheduled),
		ClientNotes:      req.ClientNotes,
		BookingReference: NewBookingReference(s.now().UnixMilli()),
		BookingSource:    models.BookingSourceWebsite,
	}

	created, err := s.persistence.CreateAppointment(ctx, appt)
	if err != nil {
		s.logger.Error("appointment creation failed",
			zap.String("business_id", req.BusinessID),
			zap.String("client_id", clientID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("appointment booked",
		zap.String("appointment_id", created.ID),
		zap.String("booking_reference", created.BookingReference),
		zap.String("business_id", created.BusinessID))
	return created, nil
}

// resolveClient finds the user's client record for the business, creating one
// when absent. The lookup-then-insert pair is not atomic; the clients table
// carries a unique (business_id, user_id) constraint to close the race.
func (s *BookingService) resolveClient(ctx context.Context, businessID string, user *models.AuthUser) (string, error) {
	existing, err := s.persistence.FindClient(ctx, businessID, user.ID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.ID, nil
	}

	firstName, lastName := splitDisplayName(user.FullName)
	created, err := s.persistence.CreateClient(ctx, models.NewClient{
		BusinessID: businessID,
		UserID:     user.ID,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      user.Email,
	})
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

// CancelAppointment marks one of the user's appointments cancelled. The
// status guard runs before any update is issued: an appointment past the
// confirmed state is rejected without touching the store.
func (s *BookingService) CancelAppointment(ctx context.Context, user *models.AuthUser, appointmentID string) error {
	if user == nil {
		return ErrAuthRequired
	}

	appt, err := s.persistence.GetAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}

	clientIDs, err := s.persistence.ListClientIDs(ctx, user.ID)
	if err != nil {
		return err
	}
	if !contains(clientIDs, appt.ClientID) {
		return ErrNotFound
	}

	if !appt.Status.CanCancel() {
		return ErrNotCancellable
	}

	if err := s.persistence.CancelAppointment(ctx, appointmentID, s.now().UTC()); err != nil {
		return err
	}
	s.logger.Info("appointment cancelled", zap.String("appointment_id", appointmentID))
	return nil
}

// ListAppointments returns a snapshot of the user's appointments across all
// businesses, most recent first, narrowed by the filter. A fresh call is
// required to observe later changes.
func (s *BookingService) ListAppointments(ctx context.Context, user *models.AuthUser, filter models.AppointmentFilter) ([]models.AppointmentDetail, error) {
	if user == nil {
		return nil, ErrAuthRequired
	}

	clientIDs, err := s.persistence.ListClientIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(clientIDs) == 0 {
		return []models.AppointmentDetail{}, nil
	}

	appts, err := s.persistence.ListAppointments(ctx, clientIDs)
	if err != nil {
		return nil, err
	}

	today := s.now().Format("2006-01-02")
	return filterAppointments(appts, filter, today), nil
}

// splitDisplayName splits a display name at the first space: first token to
// first name, the rest to last name. An empty display name falls back to a
// fixed placeholder.
func splitDisplayName(fullName string) (firstName, lastName string) {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return fallbackFirstName, ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

func findService(services []models.Service, id string) *models.Service {
	for i := range services {
		if services[i].ID == id {
			return &services[i]
		}
	}
	return nil
}

func hasEmployee(employees []models.Employee, id string) bool {
	for _, e := range employees {
		if e.ID == id {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
