package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	supa "github.com/supabase-community/supabase-go"

	"github.com/melonapp/backend-booking/models"
)

// newStubStore spins up a PostgREST stub and a store pointed at it. The
// handler receives every request the store issues.
func newStubStore(t *testing.T, handler http.HandlerFunc) (*SupabaseStore, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := supa.NewClient(srv.URL, "test-anon-key", nil)
	require.NoError(t, err)
	return NewSupabaseStore(client), srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestFindClientQueryShape(t *testing.T) {
	var gotPath, gotQuery string
	store, _ := newStubStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		writeJSON(t, w, []models.Client{{ID: "client-1", BusinessID: "biz-1", UserID: "user-1"}})
	})

	client, err := store.FindClient(context.Background(), "biz-1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "client-1", client.ID)

	assert.Equal(t, "/rest/v1/clients", gotPath)
	assert.Contains(t, gotQuery, "business_id=eq.biz-1")
	assert.Contains(t, gotQuery, "user_id=eq.user-1")
}

func TestFindClientAbsent(t *testing.T) {
	store, _ := newStubStore(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Client{})
	})

	client, err := store.FindClient(context.Background(), "biz-1", "user-1")
	require.NoError(t, err)
	assert.Nil(t, client, "no row should resolve to nil, not an error")
}

func TestCreateClientInsertPayload(t *testing.T) {
	var gotMethod string
	var gotBody models.NewClient
	store, _ := newStubStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		writeJSON(t, w, []models.Client{{ID: "client-new"}})
	})

	created, err := store.CreateClient(context.Background(), models.NewClient{
		BusinessID: "biz-1",
		UserID:     "user-1",
		FirstName:  "Jan",
		LastName:   "Kowalski",
		Email:      "jan@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "client-new", created.ID)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "Jan", gotBody.FirstName)
	assert.Equal(t, "jan@example.com", gotBody.Email)
}

func TestListBookableServicesFilters(t *testing.T) {
	var gotQuery string
	store, _ := newStubStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeJSON(t, w, []models.Service{{ID: "svc-1"}})
	})

	services, err := store.ListBookableServices(context.Background(), "biz-1")
	require.NoError(t, err)
	assert.Len(t, services, 1)

	assert.Contains(t, gotQuery, "business_id=eq.biz-1")
	assert.Contains(t, gotQuery, "is_active=eq.true")
	assert.Contains(t, gotQuery, "is_bookable_online=eq.true")
}

func TestListBookableEmployeesFilters(t *testing.T) {
	var gotQuery string
	store, _ := newStubStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeJSON(t, w, []models.Employee{})
	})

	_, err := store.ListBookableEmployees(context.Background(), "biz-1")
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "status=eq.active")
	assert.Contains(t, gotQuery, "is_available_for_booking=eq.true")
}

func TestSearchBusinessesQueryShape(t *testing.T) {
	var gotQuery string
	store, _ := newStubStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeJSON(t, w, []models.Business{{ID: "biz-1", Name: "Cut & Go"}})
	})

	businesses, err := store.SearchBusinesses(context.Background(), models.BusinessSearchRequest{
		Query: "cut",
		City:  "Warszawa",
	})
	require.NoError(t, err)
	assert.Len(t, businesses, 1)

	assert.Contains(t, gotQuery, "status=eq.approved")
	assert.Contains(t, gotQuery, "is_active=eq.true")
	assert.Contains(t, gotQuery, "average_rating.desc")
}

func TestGetBusinessNotFound(t *testing.T) {
	store, _ := newStubStore(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []models.Business{})
	})

	_, err := store.GetBusiness(context.Background(), "biz-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAppointmentsQueryShape(t *testing.T) {
	var gotValues map[string][]string
	store, _ := newStubStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotValues = r.URL.Query()
		writeJSON(t, w, []models.AppointmentDetail{
			{Appointment: models.Appointment{ID: "a1"}, Business: &models.BusinessSummary{Name: "Cut & Go"}},
		})
	})

	appts, err := store.ListAppointments(context.Background(), []string{"client-1", "client-2"})
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, "Cut & Go", appts[0].Business.Name)

	clientFilter := strings.Join(gotValues["client_id"], ",")
	assert.Contains(t, clientFilter, "in.(client-1,client-2)")
	order := strings.Join(gotValues["order"], ",")
	assert.Contains(t, order, "appointment_date.desc")
	assert.Contains(t, order, "start_time.desc")
}

func TestCreateAppointmentPayload(t *testing.T) {
	var gotBody map[string]interface{}
	store, _ := newStubStore(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		writeJSON(t, w, []models.Appointment{{ID: "appt-1", Status: models.StatusScheduled}})
	})

	created, err := store.CreateAppointment(context.Background(), NewAppointment{
		BusinessID:       "biz-1",
		ClientID:         "client-1",
		ServiceID:        "svc-1",
		AppointmentDate:  "2026-05-20",
		StartTime:        "14:30:00",
		EndTime:          "15:15:00",
		DurationMinutes:  45,
		ServicePrice:     120,
		TotalAmount:      120,
		Currency:         "PLN",
		Status:           "scheduled",
		BookingReference: "BKTEST",
		BookingSource:    "website",
	})
	require.NoError(t, err)
	assert.Equal(t, "appt-1", created.ID)

	assert.Equal(t, "scheduled", gotBody["status"])
	assert.Equal(t, "website", gotBody["booking_source"])
	assert.Equal(t, "15:15:00", gotBody["end_time"])
	assert.Equal(t, 120.0, gotBody["total_amount"])
}

func TestCancelAppointmentUpdate(t *testing.T) {
	var gotMethod, gotQuery string
	var gotBody map[string]interface{}
	store, _ := newStubStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		writeJSON(t, w, []models.Appointment{})
	})

	err := store.CancelAppointment(context.Background(), "appt-1", mustParseTime(t, "2026-05-10T12:00:00Z"))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Contains(t, gotQuery, "id=eq.appt-1")
	assert.Equal(t, "cancelled", gotBody["status"])
	cancelledAt, _ := gotBody["cancelled_at"].(string)
	assert.True(t, strings.HasPrefix(cancelledAt, "2026-05-10T12:00:00"))
}

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestStoreWrapsTransportFailure(t *testing.T) {
	store, _ := newStubStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	})

	_, err := store.ListBookableServices(context.Background(), "biz-1")
	var perr *PersistenceError
	assert.ErrorAs(t, err, &perr)
}
