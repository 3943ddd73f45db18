package clinicsdk

import (
	"context"
	"net/http"
)

func (c *Client) RegisterPatient(ctx context.Context, req RegisterPatientRequest) (*RegisterPatientResponse, error) {
	var out RegisterPatientResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/register", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LoginPatient(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoginAdmin uses /api/auth/admin-login, which only accepts hashed admin
// passwords.
func (c *Client) LoginAdmin(ctx context.Context, email, password string) (*AdminLoginResponse, error) {
	var out AdminLoginResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/admin-login", "", LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LoginDoctor(ctx context.Context, email, password string) (*DoctorLoginResponse, error) {
	var out DoctorLoginResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/doctor-login", "", LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RegisterAdmin(ctx context.Context, req RegisterAdminRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.call(ctx, http.MethodPost, "/api/AdminAuth/register", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminAuthLogin(ctx context.Context, email, password string) (*AdminAuthLoginResponse, error) {
	var out AdminAuthLoginResponse
	if err := c.call(ctx, http.MethodPost, "/api/AdminAuth/login", "", LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
