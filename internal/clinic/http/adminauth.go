package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
)

type AdminAuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister registers an admin.
//
//	@Summary		Register an admin
//	@Description	Creates an admin. The password is stored according to ADMIN_PASSWORD_STORAGE.
//	@Tags			AdminAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.RegisterAdminRequest	true	"Admin details"
//	@Success		200		{object}	clinicsdk.MessageResponse		"Admin registered successfully"
//	@Failure		400		{object}	clinicsdk.MessageResponse		"Admin already exists"
//	@Failure		500		{object}	clinicsdk.ServerErrorResponse
//	@Router			/api/AdminAuth/register [post].
func (h *AdminAuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.RegisterAdminRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if !validateRequest(w, req) {
		return
	}

	_, err := h.AuthService.RegisterAdmin(r.Context(), service.RegisterAdminInput{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			httpx.WriteMessage(w, http.StatusBadRequest, "Admin already exists")
			return
		}
		writeServerError(w, r, "Admin registration failed", err)
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Admin registered successfully")
}

// HandleLogin logs in an admin registered through this controller.
//
//	@Summary		Admin login
//	@Description	Checks an admin registered through /api/AdminAuth/register and returns a token with role Admin.
//	@Tags			AdminAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	clinicsdk.AdminAuthLoginResponse
//	@Failure		401		{object}	clinicsdk.MessageResponse	"Invalid credentials"
//	@Failure		500		{object}	clinicsdk.ServerErrorResponse
//	@Router			/api/AdminAuth/login [post].
func (h *AdminAuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	login, err := h.AuthService.AdminAuthLogin(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeServerError(w, r, "Admin login failed", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clinicsdk.AdminAuthLoginResponse{
		Token:   login.Token.Value,
		AdminID: login.ID,
		Email:   login.Email,
		Role:    domain.RoleAdmin.String(),
		Message: "Admin login successful",
	})
}
