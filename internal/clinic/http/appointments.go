package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
)

const msgInvalidAppointment = "Invalid appointment data. Please fill all required fields."

type AppointmentsHandler struct {
	AppointmentService *service.AppointmentService
}

func writeResult(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, clinicsdk.AppointmentResult{
		Success: code >= 200 && code < 300,
		Message: msg,
	})
}

// HandleList lists every appointment.
//
//	@Summary	List appointments
//	@Tags		Appointments
//	@Produce	json
//	@Success	200	{object}	clinicsdk.AppointmentList
//	@Failure	500	{object}	clinicsdk.ServerErrorResponse
//	@Router		/api/appointment [get].
func (h *AppointmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	appts, err := h.AppointmentService.ListAppointments(r.Context())
	if err != nil {
		writeServerError(w, r, "Error fetching appointments", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clinicsdk.AppointmentList{
		Success: true,
		Data:    toAppointments(appts),
	})
}

// HandleSchedule books an appointment.
//
//	@Summary		Book an appointment
//	@Description	Both parties must exist. The appointment starts Pending and its date is stored in UTC.
//	@Tags			Appointments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.BookAppointmentRequest	true	"Booking"
//	@Success		200		{object}	clinicsdk.AppointmentResult
//	@Failure		400		{object}	clinicsdk.AppointmentResult
//	@Failure		500		{object}	clinicsdk.ServerErrorResponse
//	@Router			/api/appointment [post].
func (h *AppointmentsHandler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.BookAppointmentRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeResult(w, http.StatusBadRequest, msgInvalidAppointment)
		return
	}

	a, err := h.AppointmentService.Schedule(r.Context(), service.ScheduleInput{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date.Time,
		Time:      strings.TrimSpace(req.Time),
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidInput):
		writeResult(w, http.StatusBadRequest, msgInvalidAppointment)
		return
	case errors.Is(err, service.ErrDoctorNotFound):
		writeResult(w, http.StatusBadRequest, "Doctor not found.")
		return
	case errors.Is(err, service.ErrPatientNotFound):
		writeResult(w, http.StatusBadRequest, "Patient not found.")
		return
	default:
		writeServerError(w, r, "Failed to book appointment: "+err.Error(), err)
		return
	}

	out := toAppointment(a)
	httpx.WriteJSON(w, http.StatusOK, clinicsdk.AppointmentResult{
		Success:     true,
		Message:     "Appointment booked successfully.",
		Appointment: &out,
	})
}

// HandleUpdateStatus sets an appointment's status.
//
//	@Summary		Update appointment status
//	@Description	Doctors may only update their own appointments; admins may update any.
//	@Tags			Appointments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			appointmentID	path		int								true	"Appointment id"
//	@Param			request			body		clinicsdk.UpdateStatusRequest	true	"New status"
//	@Success		200				{object}	clinicsdk.AppointmentResult
//	@Failure		400				{object}	clinicsdk.ValidationErrorResponse
//	@Failure		401				{object}	clinicsdk.MessageResponse
//	@Failure		403				{object}	clinicsdk.MessageResponse
//	@Failure		404				{object}	clinicsdk.AppointmentResult	"Appointment not found."
//	@Router			/api/appointment/{appointmentID}/status [put].
func (h *AppointmentsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "appointmentID")
	if !ok {
		return
	}

	var req clinicsdk.UpdateStatusRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	req.Status = strings.TrimSpace(req.Status)
	if !validateRequest(w, req) {
		return
	}

	current, err := h.AppointmentService.GetAppointment(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeResult(w, http.StatusNotFound, "Appointment not found.")
			return
		}
		writeServerError(w, r, "Error updating appointment", err)
		return
	}
	if !mayActForDoctor(r, current.DoctorID) {
		httpx.Forbidden(w)
		return
	}

	a, err := h.AppointmentService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeResult(w, http.StatusNotFound, "Appointment not found.")
			return
		}
		writeServerError(w, r, "Error updating appointment", err)
		return
	}

	out := toAppointment(a)
	httpx.WriteJSON(w, http.StatusOK, clinicsdk.AppointmentResult{
		Success:     true,
		Message:     "Appointment status updated successfully.",
		Appointment: &out,
	})
}

// HandleCancel deletes an appointment.
//
//	@Summary	Cancel an appointment
//	@Tags		Appointments
//	@Produce	json
//	@Param		appointmentID	path		int	true	"Appointment id"
//	@Success	200				{object}	clinicsdk.AppointmentResult	"Appointment cancelled."
//	@Failure	404				{object}	clinicsdk.AppointmentResult	"Appointment not found."
//	@Router		/api/appointment/{appointmentID} [delete].
func (h *AppointmentsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "appointmentID")
	if !ok {
		return
	}

	if err := h.AppointmentService.Cancel(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeResult(w, http.StatusNotFound, "Appointment not found.")
			return
		}
		writeServerError(w, r, "Error cancelling appointment", err)
		return
	}

	writeResult(w, http.StatusOK, "Appointment cancelled.")
}

// HandleWithDetails lists appointments with patient and doctor names.
//
//	@Summary	List appointments with names
//	@Tags		Appointments
//	@Produce	json
//	@Success	200	{object}	clinicsdk.AppointmentDetailsList
//	@Failure	500	{object}	clinicsdk.ServerErrorResponse
//	@Router		/api/appointment/with-details [get].
func (h *AppointmentsHandler) HandleWithDetails(w http.ResponseWriter, r *http.Request) {
	rows, err := h.AppointmentService.ListWithDetails(r.Context())
	if err != nil {
		writeServerError(w, r, "Error fetching appointments", err)
		return
	}

	data := make([]clinicsdk.AppointmentDetails, 0, len(rows))
	for _, d := range rows {
		data = append(data, clinicsdk.AppointmentDetails{
			AppointmentID: d.ID,
			Date:          clinicsdk.Date{Time: d.Date},
			Time:          d.Time,
			Status:        d.Status,
			PatientName:   d.PatientName,
			DoctorName:    d.DoctorName,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, clinicsdk.AppointmentDetailsList{Success: true, Data: data})
}
