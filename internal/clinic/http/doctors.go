package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/cryptox"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
)

type DoctorsHandler struct {
	AuthService        *service.AuthService
	DoctorService      *service.DoctorService
	AppointmentService *service.AppointmentService
}

// HandleList lists doctors for the booking form.
//
//	@Summary	List doctors
//	@Tags		Doctors
//	@Produce	json
//	@Success	200	{array}		clinicsdk.DoctorSummary
//	@Failure	500	{object}	clinicsdk.ServerErrorResponse
//	@Router		/api/doctors [get].
func (h *DoctorsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.DoctorService.ListDoctors(r.Context())
	if err != nil {
		writeServerError(w, r, "Error fetching doctors", err)
		return
	}

	out := make([]clinicsdk.DoctorSummary, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, clinicsdk.DoctorSummary{DoctorID: d.ID, Name: d.Name})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleListFull lists doctors with their details for the admin console.
//
//	@Summary	List doctors with details
//	@Tags		Doctors
//	@Produce	json
//	@Success	200	{array}		clinicsdk.Doctor
//	@Failure	500	{object}	clinicsdk.ServerErrorResponse
//	@Router		/api/doctors/list [get].
func (h *DoctorsHandler) HandleListFull(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.DoctorService.ListDoctors(r.Context())
	if err != nil {
		writeServerError(w, r, "Error fetching doctors", err)
		return
	}

	out := make([]clinicsdk.Doctor, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, toDoctor(d))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleRegister registers a doctor.
//
//	@Summary		Register a doctor
//	@Description	Prefixes the name with "Dr. " unless already present and stores a bcrypt hash.
//	@Tags			Doctors
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.RegisterDoctorRequest	true	"Doctor details"
//	@Success		200		{object}	clinicsdk.MessageResponse		"Doctor registered successfully!"
//	@Failure		400		{object}	clinicsdk.ValidationErrorResponse
//	@Failure		500		{object}	clinicsdk.ServerErrorResponse	"Error registering doctor"
//	@Router			/api/doctors/register [post].
func (h *DoctorsHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.RegisterDoctorRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if !validateRequest(w, req) {
		return
	}

	_, err := h.AuthService.RegisterDoctor(r.Context(), service.RegisterDoctorInput{
		Name:           req.Name,
		Specialization: strings.TrimSpace(req.Specialization),
		Contact:        strings.TrimSpace(req.Contact),
		Email:          req.Email,
		Password:       req.Password,
	})
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			httpx.WriteJSON(w, http.StatusBadRequest, clinicsdk.ValidationErrorResponse{
				Message: "One or more validation errors occurred.",
				Details: map[string]string{"password": "must be at most 72 bytes"},
			})
			return
		}
		writeServerError(w, r, "Error registering doctor", err)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Doctor registered successfully!")
}

// HandleDetails returns one doctor.
//
//	@Summary		Doctor details
//	@Description	Doctors may only read their own record; admins may read any.
//	@Tags			Doctors
//	@Produce		json
//	@Security		BearerAuth
//	@Param			doctorID	path		int	true	"Doctor id"
//	@Success		200			{object}	clinicsdk.Doctor
//	@Failure		401			{object}	clinicsdk.MessageResponse
//	@Failure		403			{object}	clinicsdk.MessageResponse
//	@Failure		404			{object}	clinicsdk.MessageResponse	"Doctor not found"
//	@Router			/api/doctors/details/{doctorID} [get].
func (h *DoctorsHandler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "doctorID")
	if !ok {
		return
	}
	if !mayActForDoctor(r, id) {
		httpx.Forbidden(w)
		return
	}

	d, err := h.DoctorService.GetDoctor(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "Doctor not found")
			return
		}
		writeServerError(w, r, "Error fetching doctor", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toDoctor(d))
}

// HandleByEmail looks a doctor up by exact email.
//
//	@Summary	Doctor by email
//	@Tags		Doctors
//	@Produce	json
//	@Param		email	path		string	true	"Email"
//	@Success	200		{object}	clinicsdk.Doctor
//	@Failure	404		{object}	clinicsdk.MessageResponse	"Doctor not found"
//	@Router		/api/doctors/byemail/{email} [get].
func (h *DoctorsHandler) HandleByEmail(w http.ResponseWriter, r *http.Request) {
	d, err := h.DoctorService.GetDoctorByEmail(r.Context(), pathString(r, "email"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "Doctor not found")
			return
		}
		writeServerError(w, r, "Error fetching doctor", err)
		return
	}

	out := toDoctor(d)
	out.Contact = ""
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleAppointments lists a doctor's appointments.
//
//	@Summary		Doctor appointments
//	@Description	Doctors may only list their own appointments; admins may list any.
//	@Tags			Doctors
//	@Produce		json
//	@Security		BearerAuth
//	@Param			doctorID	path		int	true	"Doctor id"
//	@Success		200			{array}		clinicsdk.DoctorAppointment
//	@Failure		401			{object}	clinicsdk.MessageResponse
//	@Failure		403			{object}	clinicsdk.MessageResponse
//	@Failure		404			{object}	clinicsdk.MessageResponse	"Doctor not found"
//	@Failure		500			{object}	clinicsdk.ServerErrorResponse
//	@Router			/api/doctors/{doctorID}/appointments [get].
func (h *DoctorsHandler) HandleAppointments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "doctorID")
	if !ok {
		return
	}
	if !mayActForDoctor(r, id) {
		httpx.Forbidden(w)
		return
	}

	appts, err := h.DoctorService.DoctorAppointments(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "Doctor not found")
			return
		}
		writeServerError(w, r, "Error fetching appointments", err)
		return
	}

	out := make([]clinicsdk.DoctorAppointment, 0, len(appts))
	for _, a := range appts {
		out = append(out, clinicsdk.DoctorAppointment{
			AppointmentID: a.ID,
			PatientID:     a.PatientID,
			Date:          clinicsdk.Date{Time: a.Date},
			Time:          a.Time,
			Status:        a.Status,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleComplete marks an appointment Completed.
//
//	@Summary		Complete an appointment
//	@Description	Doctors may only complete their own appointments.
//	@Tags			Doctors
//	@Produce		json
//	@Security		BearerAuth
//	@Param			appointmentID	path		int	true	"Appointment id"
//	@Success		200				{object}	clinicsdk.MessageResponse	"Appointment marked as completed."
//	@Failure		401				{object}	clinicsdk.MessageResponse
//	@Failure		403				{object}	clinicsdk.MessageResponse
//	@Failure		404				{object}	clinicsdk.MessageResponse	"Appointment not found."
//	@Router			/api/doctors/complete-appointment/{appointmentID} [put].
func (h *DoctorsHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "appointmentID")
	if !ok {
		return
	}

	a, err := h.AppointmentService.GetAppointment(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "Appointment not found.")
			return
		}
		writeServerError(w, r, "Error completing appointment", err)
		return
	}
	if !mayActForDoctor(r, a.DoctorID) {
		httpx.Forbidden(w)
		return
	}

	if _, err := h.DoctorService.CompleteAppointment(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "Appointment not found.")
			return
		}
		writeServerError(w, r, "Error completing appointment", err)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Appointment marked as completed.")
}

// HandleDelete removes a doctor and their appointments.
//
//	@Summary	Delete a doctor
//	@Tags		Doctors
//	@Produce	json
//	@Param		doctorID	path		int	true	"Doctor id"
//	@Success	200			{object}	clinicsdk.MessageResponse	"Doctor deleted successfully"
//	@Failure	404			{object}	clinicsdk.MessageResponse	"Doctor not found"
//	@Router		/api/doctors/{doctorID} [delete].
func (h *DoctorsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "doctorID")
	if !ok {
		return
	}

	if err := h.DoctorService.DeleteDoctor(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "Doctor not found")
			return
		}
		writeServerError(w, r, "Error deleting doctor", err)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Doctor deleted successfully")
}
