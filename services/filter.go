package services

import (
	"github.com/melonapp/backend-booking/models"
)

// filterAppointments applies the listing filter to an already ordered
// snapshot. today is a YYYY-MM-DD date; appointment dates share the format,
// so lexicographic comparison is date comparison.
//
// "past" is deliberately an OR across two predicates: a future-dated
// appointment that is already cancelled (or completed, or a no-show) shows up
// under past, matching the product's tab semantics.
func filterAppointments(appts []models.AppointmentDetail, filter models.AppointmentFilter, today string) []models.AppointmentDetail {
	if filter == models.FilterAll {
		return appts
	}
	out := make([]models.AppointmentDetail, 0, len(appts))
	for _, a := range appts {
		switch filter {
		case models.FilterUpcoming:
			if a.AppointmentDate >= today && (a.Status == models.StatusScheduled || a.Status == models.StatusConfirmed) {
				out = append(out, a)
			}
		case models.FilterPast:
			if a.AppointmentDate < today || isSettled(a.Status) {
				out = append(out, a)
			}
		}
	}
	return out
}

func isSettled(s models.AppointmentStatus) bool {
	return s == models.StatusCompleted || s == models.StatusCancelled || s == models.StatusNoShow
}
