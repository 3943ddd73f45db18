package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
	"github.com/go-chi/chi/v5"
)

// writeServerError logs err and answers 500 with the cause attached.
func writeServerError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slogx.FromContext(r.Context()).Error(msg, slog.Any("err", err))
	httpx.WriteJSON(w, http.StatusInternalServerError, clinicsdk.ServerErrorResponse{
		Message: msg,
		Error:   err.Error(),
	})
}

// pathID reads a positive integer path parameter. On failure it writes a
// 400 and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid id.")
		return 0, false
	}
	return id, true
}

// pathString reads a path parameter, undoing any percent-encoding.
func pathString(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// mayActForDoctor reports whether the authenticated caller may touch
// doctorID's records. Admins may touch any; doctors only their own.
func mayActForDoctor(r *http.Request, doctorID int64) bool {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		return false
	}
	switch claims.Role {
	case domain.RoleAdmin.String():
		return true
	case domain.RoleDoctor.String():
		return claims.DoctorID != nil && *claims.DoctorID == doctorID
	default:
		return false
	}
}

func toAppointment(a domain.Appointment) clinicsdk.Appointment {
	return clinicsdk.Appointment{
		AppointmentID: a.ID,
		PatientID:     a.PatientID,
		DoctorID:      a.DoctorID,
		Date:          clinicsdk.Date{Time: a.Date},
		Time:          a.Time,
		Status:        a.Status,
	}
}

func toAppointments(in []domain.Appointment) []clinicsdk.Appointment {
	out := make([]clinicsdk.Appointment, 0, len(in))
	for _, a := range in {
		out = append(out, toAppointment(a))
	}
	return out
}

func toDoctor(d domain.Doctor) clinicsdk.Doctor {
	return clinicsdk.Doctor{
		DoctorID:       d.ID,
		Name:           d.Name,
		Specialization: d.Specialization,
		Email:          d.Email,
		Contact:        d.Contact,
	}
}

func toPatient(p domain.Patient) clinicsdk.Patient {
	return clinicsdk.Patient{
		PatientID: p.ID,
		Name:      p.Name,
		Contact:   p.Contact,
		Email:     p.Email,
	}
}
