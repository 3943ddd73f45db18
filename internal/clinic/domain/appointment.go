package domain

import "time"

// Appointment statuses the service itself assigns. Clients may set any other
// status through the status update endpoint.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// NotAvailable stands in for a patient or doctor name that no longer resolves.
const NotAvailable = "N/A"

type Appointment struct {
	ID        int64
	PatientID int64
	DoctorID  int64
	Date      time.Time // stored as UTC
	Time      string    // free-form slot label, e.g. "10:30"
	Status    string
}

// AppointmentDetails joins an appointment with the names of both parties.
type AppointmentDetails struct {
	ID          int64
	Date        time.Time
	Time        string
	Status      string
	PatientName string
	DoctorName  string
}
