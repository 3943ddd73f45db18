package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister registers a patient.
//
//	@Summary		Register a patient
//	@Description	Creates a patient account. The email must be unused under any casing. No token is issued.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.RegisterPatientRequest	true	"Patient details"
//	@Success		200		{object}	clinicsdk.RegisterPatientResponse
//	@Failure		400		{object}	clinicsdk.MessageResponse	"Email already exists."
//	@Failure		429		{object}	clinicsdk.MessageResponse
//	@Failure		500		{object}	clinicsdk.ServerErrorResponse
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.RegisterPatientRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if !validateRequest(w, req) {
		return
	}

	p, err := h.AuthService.RegisterPatient(r.Context(), service.RegisterPatientInput{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			httpx.WriteMessage(w, http.StatusBadRequest, "Email already exists.")
			return
		}
		writeServerError(w, r, "Registration failed", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clinicsdk.RegisterPatientResponse{
		Name:    p.Name,
		Message: "Registration successful!",
	})
}

// HandleLogin logs a patient in.
//
//	@Summary		Patient login
//	@Description	Verifies a patient's password and returns a one-hour bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	clinicsdk.LoginResponse
//	@Failure		401		{object}	clinicsdk.MessageResponse	"Invalid email. / Invalid password."
//	@Failure		429		{object}	clinicsdk.MessageResponse
//	@Failure		500		{object}	clinicsdk.ServerErrorResponse
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	login, err := h.AuthService.LoginPatient(r.Context(), strings.TrimSpace(req.Email), req.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrUnknownEmail):
		httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid email.")
		return
	case errors.Is(err, service.ErrPasswordMismatch):
		httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid password.")
		return
	default:
		writeServerError(w, r, "Login failed", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clinicsdk.LoginResponse{
		Token: login.Token.Value,
		Name:  login.Name,
		Email: login.Email,
	})
}

// HandleAdminLogin logs an admin in against a hashed password.
//
//	@Summary		Admin login (hashed password)
//	@Description	Verifies an admin whose password is stored hashed. Admins registered with plaintext storage get a 500.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	clinicsdk.AdminLoginResponse
//	@Failure		401		{object}	clinicsdk.MessageResponse	"Invalid admin email. / Invalid admin password."
//	@Failure		429		{object}	clinicsdk.MessageResponse
//	@Failure		500		{object}	clinicsdk.ServerErrorResponse
//	@Router			/api/auth/admin-login [post].
func (h *AuthHandler) HandleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	login, err := h.AuthService.LoginAdmin(r.Context(), strings.TrimSpace(req.Email), req.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrUnknownEmail):
		httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid admin email.")
		return
	case errors.Is(err, service.ErrPasswordMismatch):
		httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid admin password.")
		return
	default:
		writeServerError(w, r, "Admin login failed", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clinicsdk.AdminLoginResponse{
		Token: login.Token.Value,
		Name:  login.Name,
	})
}

// HandleDoctorLogin logs a doctor in.
//
//	@Summary		Doctor login
//	@Description	Verifies a doctor by exact email. The token carries role Doctor and the doctor's id.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	clinicsdk.DoctorLoginResponse
//	@Failure		401		{object}	clinicsdk.MessageResponse	"Invalid email or password"
//	@Failure		429		{object}	clinicsdk.MessageResponse
//	@Failure		500		{object}	clinicsdk.ServerErrorResponse
//	@Router			/api/auth/doctor-login [post].
func (h *AuthHandler) HandleDoctorLogin(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	login, err := h.AuthService.LoginDoctor(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		writeServerError(w, r, "Doctor login failed", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clinicsdk.DoctorLoginResponse{
		Message:  "Doctor login successful",
		DoctorID: login.ID,
		Token:    login.Token.Value,
	})
}
