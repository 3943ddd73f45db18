package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
)

type PatientsHandler struct {
	PatientService *service.PatientService
}

// HandleList lists patients without their credentials.
//
//	@Summary	List patients
//	@Tags		Patients
//	@Produce	json
//	@Success	200	{array}		clinicsdk.Patient
//	@Failure	500	{object}	clinicsdk.ServerErrorResponse
//	@Router		/api/patient [get].
func (h *PatientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	patients, err := h.PatientService.ListPatients(r.Context())
	if err != nil {
		writeServerError(w, r, "Error fetching patients", err)
		return
	}

	out := make([]clinicsdk.Patient, 0, len(patients))
	for _, p := range patients {
		out = append(out, toPatient(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleAdd creates a patient directly.
//
//	@Summary		Add a patient
//	@Description	Administrative patient creation. The password is hashed like a registration.
//	@Tags			Patients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.AddPatientRequest	true	"Patient"
//	@Success		200		{object}	clinicsdk.Patient
//	@Failure		400		{object}	clinicsdk.MessageResponse
//	@Failure		500		{object}	clinicsdk.ServerErrorResponse
//	@Router			/api/patient [post].
func (h *PatientsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.AddPatientRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if !validateRequest(w, req) {
		return
	}

	p, err := h.PatientService.AddPatient(r.Context(), service.AddPatientInput{
		Name:     strings.TrimSpace(req.Name),
		Contact:  strings.TrimSpace(req.Contact),
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			httpx.WriteMessage(w, http.StatusBadRequest, "Email already exists.")
			return
		}
		writeServerError(w, r, "Error adding patient", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPatient(p))
}

// HandleAppointments lists a patient's appointments.
//
//	@Summary	Patient appointments
//	@Tags		Patients
//	@Produce	json
//	@Param		patientID	path		int	true	"Patient id"
//	@Success	200			{array}		clinicsdk.Appointment
//	@Failure	500			{object}	clinicsdk.ServerErrorResponse
//	@Router		/api/patient/{patientID}/appointments [get].
func (h *PatientsHandler) HandleAppointments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "patientID")
	if !ok {
		return
	}

	appts, err := h.PatientService.PatientAppointments(r.Context(), id)
	if err != nil {
		writeServerError(w, r, "Error fetching appointments", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAppointments(appts))
}

// HandleByEmail resolves a patient's id from their email.
//
//	@Summary	Patient id by email
//	@Tags		Patients
//	@Produce	json
//	@Param		email	path		string	true	"Email"
//	@Success	200		{object}	clinicsdk.PatientIDResponse
//	@Failure	404		{object}	clinicsdk.MessageResponse	"Patient not found"
//	@Router		/api/patient/byemail/{email} [get].
func (h *PatientsHandler) HandleByEmail(w http.ResponseWriter, r *http.Request) {
	p, err := h.PatientService.GetPatientByEmail(r.Context(), pathString(r, "email"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteMessage(w, http.StatusNotFound, "Patient not found")
			return
		}
		writeServerError(w, r, "Error fetching patient", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clinicsdk.PatientIDResponse{PatientID: p.ID})
}
