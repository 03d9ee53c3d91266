package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/melonapp/backend-booking/models"
)

func detail(id, date string, status models.AppointmentStatus) models.AppointmentDetail {
	return models.AppointmentDetail{
		Appointment: models.Appointment{ID: id, AppointmentDate: date, Status: status},
	}
}

func ids(appts []models.AppointmentDetail) []string {
	out := make([]string, 0, len(appts))
	for _, a := range appts {
		out = append(out, a.ID)
	}
	return out
}

func TestFilterAppointments(t *testing.T) {
	const today = "2026-05-10"

	fixture := []models.AppointmentDetail{
		detail("future-scheduled", "2026-05-20", models.StatusScheduled),
		detail("today-confirmed", "2026-05-10", models.StatusConfirmed),
		detail("future-cancelled", "2026-06-01", models.StatusCancelled),
		detail("future-in-progress", "2026-05-15", models.StatusInProgress),
		detail("past-completed", "2026-04-01", models.StatusCompleted),
		detail("past-scheduled", "2026-05-01", models.StatusScheduled),
		detail("past-no-show", "2026-03-02", models.StatusNoShow),
	}

	t.Run("all", func(t *testing.T) {
		got := filterAppointments(fixture, models.FilterAll, today)
		assert.Len(t, got, len(fixture))
	})

	t.Run("upcoming", func(t *testing.T) {
		got := filterAppointments(fixture, models.FilterUpcoming, today)
		assert.Equal(t, []string{"future-scheduled", "today-confirmed"}, ids(got))
	})

	t.Run("past", func(t *testing.T) {
		got := filterAppointments(fixture, models.FilterPast, today)
		// The date and status predicates are OR'd: a future appointment that
		// is already cancelled lands under past.
		assert.Equal(t, []string{"future-cancelled", "past-completed", "past-scheduled", "past-no-show"}, ids(got))
	})

	t.Run("upcoming and past partition except in-progress", func(t *testing.T) {
		upcoming := filterAppointments(fixture, models.FilterUpcoming, today)
		past := filterAppointments(fixture, models.FilterPast, today)
		// future-in-progress matches neither tab.
		assert.Len(t, upcoming, 2)
		assert.Len(t, past, 4)
	})
}

func TestFilterAppointmentsEmpty(t *testing.T) {
	got := filterAppointments(nil, models.FilterUpcoming, "2026-05-10")
	assert.Empty(t, got)
}
