package clinicsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *Client) RegisterDoctor(ctx context.Context, req RegisterDoctorRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.call(ctx, http.MethodPost, "/api/doctors/register", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListDoctors(ctx context.Context) ([]DoctorSummary, error) {
	var out []DoctorSummary
	if err := c.call(ctx, http.MethodGet, "/api/doctors", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DoctorByEmail(ctx context.Context, email string) (*Doctor, error) {
	var out Doctor
	if err := c.call(ctx, http.MethodGet, "/api/doctors/byemail/"+url.PathEscape(email), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DoctorDetails requires a Doctor session for the same doctor or an Admin
// session.
func (s *Session) DoctorDetails(ctx context.Context, doctorID int64) (*Doctor, error) {
	var out Doctor
	path := fmt.Sprintf("/api/doctors/details/%d", doctorID)
	if err := s.client.call(ctx, http.MethodGet, path, s.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DoctorAppointments(ctx context.Context, doctorID int64) ([]DoctorAppointment, error) {
	var out []DoctorAppointment
	path := fmt.Sprintf("/api/doctors/%d/appointments", doctorID)
	if err := s.client.call(ctx, http.MethodGet, path, s.token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CompleteAppointment(ctx context.Context, appointmentID int64) (*MessageResponse, error) {
	var out MessageResponse
	path := fmt.Sprintf("/api/doctors/complete-appointment/%d", appointmentID)
	if err := s.client.call(ctx, http.MethodPut, path, s.token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDoctor removes a doctor along with their appointments.
func (c *Client) DeleteDoctor(ctx context.Context, doctorID int64) (*MessageResponse, error) {
	var out MessageResponse
	path := fmt.Sprintf("/api/doctors/%d", doctorID)
	if err := c.call(ctx, http.MethodDelete, path, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
