package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"github.com/melonapp/backend-booking/models"
)

// SupabaseStore implements Directory and Persistence on top of the hosted
// Supabase PostgREST interface. Every method is a single-shot HTTP call; the
// server assigns ids and timestamps on inserts.
type SupabaseStore struct {
	client *supa.Client
}

func NewSupabaseStore(client *supa.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

var descending = &postgrest.OrderOpts{Ascending: false}

func (s *SupabaseStore) GetBusiness(ctx context.Context, id string) (*models.Business, error) {
	var businesses []models.Business
	data, _, err := s.client.From("businesses").
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &businesses)
	}
	if err != nil {
		return nil, &PersistenceError{Op: "fetch business", Err: err}
	}
	if len(businesses) == 0 {
		return nil, ErrNotFound
	}
	return &businesses[0], nil
}

func (s *SupabaseStore) SearchBusinesses(ctx context.Context, req models.BusinessSearchRequest) ([]models.Business, error) {
	query := s.client.From("businesses").
		Select("*", "", false).
		Eq("status", "approved").
		Eq("is_active", "true")

	if req.Query != "" {
		query = query.Ilike("name", "%"+req.Query+"%")
	}
	if req.City != "" {
		query = query.Ilike("city", "%"+req.City+"%")
	}

	var businesses []models.Business
	data, _, err := query.Order("average_rating", descending).Execute()
	if err == nil {
		err = json.Unmarshal(data, &businesses)
	}
	if err != nil {
		return nil, &PersistenceError{Op: "search businesses", Err: err}
	}
	return businesses, nil
}

func (s *SupabaseStore) ListBookableServices(ctx context.Context, businessID string) ([]models.Service, error) {
	var services []models.Service
	data, _, err := s.client.From("services").
		Select("*", "", false).
		Eq("business_id", businessID).
		Eq("is_active", "true").
		Eq("is_bookable_online", "true").
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &services)
	}
	if err != nil {
		return nil, &PersistenceError{Op: "fetch services", Err: err}
	}
	return services, nil
}

func (s *SupabaseStore) ListBookableEmployees(ctx context.Context, businessID string) ([]models.Employee, error) {
	var employees []models.Employee
	data, _, err := s.client.From("employees").
		Select("*", "", false).
		Eq("business_id", businessID).
		Eq("status", "active").
		Eq("is_available_for_booking", "true").
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &employees)
	}
	if err != nil {
		return nil, &PersistenceError{Op: "fetch employees", Err: err}
	}
	return employees, nil
}

func (s *SupabaseStore) FindClient(ctx context.Context, businessID, userID string) (*models.Client, error) {
	var clients []models.Client
	data, _, err := s.client.From("clients").
		Select("*", "", false).
		Eq("business_id", businessID).
		Eq("user_id", userID).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &clients)
	}
	if err != nil {
		return nil, &PersistenceError{Op: "find client", Err: err}
	}
	if len(clients) == 0 {
		return nil, nil
	}
	return &clients[0], nil
}

func (s *SupabaseStore) CreateClient(ctx context.Context, client models.NewClient) (*models.Client, error) {
	var created []models.Client
	data, _, err := s.client.From("clients").
		Insert(client, false, "", "representation", "").
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &created)
	}
	if err != nil {
		return nil, &PersistenceError{Op: "create client", Err: err}
	}
	if len(created) == 0 {
		return nil, &PersistenceError{Op: "create client", Err: errNoRowReturned}
	}
	return &created[0], nil
}

func (s *SupabaseStore) ListClientIDs(ctx context.Context, userID string) ([]string, error) {
	var clients []struct {
		ID string `json:"id"`
	}
	data, _, err := s.client.From("clients").
		Select("id", "", false).
		Eq("user_id", userID).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &clients)
	}
	if err != nil {
		return nil, &PersistenceError{Op: "fetch clients", Err: err}
	}
	ids := make([]string, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func (s *SupabaseStore) CreateAppointment(ctx context.Context, appt NewAppointment) (*models.Appointment, error) {
	var created []models.Appointment
	data, _, err := s.client.From("appointments").
		Insert(appt, false, "", "representation", "").
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &created)
	}
	if err != nil {
		return nil, &PersistenceError{Op: "create appointment", Err: err}
	}
	if len(created) == 0 {
		return nil, &PersistenceError{Op: "create appointment", Err: errNoRowReturned}
	}
	return &created[0], nil
}

func (s *SupabaseStore) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	var appts []models.Appointment
	data, _, err := s.client.From("appointments").
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &appts)
	}
	if err != nil {
		return nil, &PersistenceError{Op: "fetch appointment", Err: err}
	}
	if len(appts) == 0 {
		return nil, ErrNotFound
	}
	return &appts[0], nil
}

func (s *SupabaseStore) ListAppointments(ctx context.Context, clientIDs []string) ([]models.AppointmentDetail, error) {
	var appts []models.AppointmentDetail
	data, _, err := s.client.From("appointments").
		Select("*, businesses(id,name,city,phone,email), services(id,name,description), employees(id,first_name,last_name)", "", false).
		In("client_id", clientIDs).
		Order("appointment_date", descending).
		Order("start_time", descending).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &appts)
	}
	if err != nil {
		return nil, &PersistenceError{Op: "fetch appointments", Err: err}
	}
	return appts, nil
}

func (s *SupabaseStore) CancelAppointment(ctx context.Context, id string, cancelledAt time.Time) error {
	update := map[string]interface{}{
		"status":       string(models.StatusCancelled),
		"cancelled_at": cancelledAt.Format(time.RFC3339),
	}
	_, _, err := s.client.From("appointments").
		Update(update, "", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return &PersistenceError{Op: "cancel appointment", Err: err}
	}
	return nil
}
