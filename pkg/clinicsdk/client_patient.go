package clinicsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *Client) ListPatients(ctx context.Context) ([]Patient, error) {
	var out []Patient
	if err := c.call(ctx, http.MethodGet, "/api/patient", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddPatient creates a patient directly. The password is hashed like a
// registration.
func (c *Client) AddPatient(ctx context.Context, req AddPatientRequest) (*Patient, error) {
	var out Patient
	if err := c.call(ctx, http.MethodPost, "/api/patient", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PatientIDByEmail resolves a patient id. Matching ignores case.
func (c *Client) PatientIDByEmail(ctx context.Context, email string) (int64, error) {
	var out PatientIDResponse
	if err := c.call(ctx, http.MethodGet, "/api/patient/byemail/"+url.PathEscape(email), "", nil, &out); err != nil {
		return 0, err
	}
	return out.PatientID, nil
}

func (c *Client) PatientAppointments(ctx context.Context, patientID int64) ([]Appointment, error) {
	var out []Appointment
	path := fmt.Sprintf("/api/patient/%d/appointments", patientID)
	if err := c.call(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
