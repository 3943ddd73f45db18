package clinicsdk

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) BookAppointment(ctx context.Context, req BookAppointmentRequest) (*AppointmentResult, error) {
	var out AppointmentResult
	if err := c.call(ctx, http.MethodPost, "/api/appointment", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListAppointments(ctx context.Context) (*AppointmentList, error) {
	var out AppointmentList
	if err := c.call(ctx, http.MethodGet, "/api/appointment", "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AppointmentsWithDetails(ctx context.Context) (*AppointmentDetailsList, error) {
	var out AppointmentDetailsList
	if err := c.call(ctx, http.MethodGet, "/api/appointment/with-details", "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelAppointment(ctx context.Context, appointmentID int64) (*AppointmentResult, error) {
	var out AppointmentResult
	path := fmt.Sprintf("/api/appointment/%d", appointmentID)
	if err := c.call(ctx, http.MethodDelete, path, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAppointmentStatus requires a Doctor or Admin session.
func (s *Session) UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status string) (*AppointmentResult, error) {
	var out AppointmentResult
	path := fmt.Sprintf("/api/appointment/%d/status", appointmentID)
	if err := s.client.call(ctx, http.MethodPut, path, s.token, UpdateStatusRequest{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
