package clinicsdk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ============================================================================
// Common Response Types
// ============================================================================

// MessageResponse is the body of most acknowledgements and failures.
type MessageResponse struct {
	Message string `json:"message"`
}

// ServerErrorResponse is returned on 500s that carry the underlying cause.
type ServerErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ValidationErrorResponse lists the fields that failed validation.
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// ============================================================================
// Auth Types
// ============================================================================

// RegisterPatientRequest is the body of POST /api/auth/register.
type RegisterPatientRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
}

type RegisterPatientResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// LoginRequest is shared by every login endpoint. Empty fields are not
// rejected up front; they simply fail to match.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

type DoctorLoginResponse struct {
	Message  string `json:"message"`
	DoctorID int64  `json:"doctorId"`
	Token    string `json:"token"`
}

// RegisterAdminRequest is the body of POST /api/AdminAuth/register.
type RegisterAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminAuthLoginResponse struct {
	Token   string `json:"token"`
	AdminID int64  `json:"adminID"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Message string `json:"message"`
}

// ============================================================================
// Doctor Types
// ============================================================================

// RegisterDoctorRequest is the body of POST /api/doctors/register.
type RegisterDoctorRequest struct {
	Name           string `json:"name" validate:"required"`
	Specialization string `json:"specialization"`
	Contact        string `json:"contact"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,max=72"`
}

// DoctorSummary is an entry of GET /api/doctors.
type DoctorSummary struct {
	DoctorID int64  `json:"doctorID"`
	Name     string `json:"name"`
}

// Doctor is a doctor without credentials.
type Doctor struct {
	DoctorID       int64  `json:"doctorID"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Email          string `json:"email"`
	Contact        string `json:"contact,omitempty"`
}

// DoctorAppointment is an entry of GET /api/doctors/{id}/appointments.
type DoctorAppointment struct {
	AppointmentID int64  `json:"appointmentID"`
	PatientID     int64  `json:"patientID"`
	Date          Date   `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
}

// ============================================================================
// Patient Types
// ============================================================================

// Patient is a patient without credentials.
type Patient struct {
	PatientID int64  `json:"patientID"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Email     string `json:"email"`
}

// AddPatientRequest is the body of POST /api/patient.
type AddPatientRequest struct {
	Name     string `json:"name" validate:"required"`
	Contact  string `json:"contact"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type PatientIDResponse struct {
	PatientID int64 `json:"patientID"`
}

// ============================================================================
// Appointment Types
// ============================================================================

type Appointment struct {
	AppointmentID int64  `json:"appointmentID"`
	PatientID     int64  `json:"patientID"`
	DoctorID      int64  `json:"doctorID"`
	Date          Date   `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
}

// BookAppointmentRequest is the body of POST /api/appointment. Field
// checks happen server side so the failure message matches the booking
// contract.
type BookAppointmentRequest struct {
	PatientID int64  `json:"patientID"`
	DoctorID  int64  `json:"doctorID"`
	Date      Date   `json:"date"`
	Time      string `json:"time"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AppointmentResult wraps a single appointment with the success flag.
type AppointmentResult struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	Appointment *Appointment `json:"appointment,omitempty"`
}

type AppointmentList struct {
	Success bool          `json:"success"`
	Data    []Appointment `json:"data"`
}

type AppointmentDetails struct {
	AppointmentID int64  `json:"appointmentId"`
	Date          Date   `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	PatientName   string `json:"patientName"`
	DoctorName    string `json:"doctorName"`
}

type AppointmentDetailsList struct {
	Success bool                 `json:"success"`
	Data    []AppointmentDetails `json:"data"`
}

// ============================================================================
// Date
// ============================================================================

// Date is an appointment date. It is written as RFC 3339 and read from
// either RFC 3339 or a bare "2006-01-02".
type Date struct {
	time.Time
}

const dateOnly = "2006-01-02"

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.UTC().Format(time.RFC3339))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", dateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognised date %q", s)
}
