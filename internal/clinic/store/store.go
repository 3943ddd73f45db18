package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement it and expose one sub-repository per table. Every
// call acquires a pooled connection and releases it before returning.
type Store interface {
	Patients() Patients
	Doctors() Doctors
	Admins() Admins
	Appointments() Appointments

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Patients interface {
	// CreatePatient inserts p and returns the generated id. A case-insensitive
	// email collision yields ErrAlreadyExists.
	CreatePatient(ctx context.Context, p domain.Patient) (int64, error)

	GetPatientByID(ctx context.Context, id int64) (domain.Patient, error)

	// GetPatientByEmail matches case-insensitively.
	GetPatientByEmail(ctx context.Context, email string) (domain.Patient, error)

	// PatientEmailExists matches case-insensitively.
	PatientEmailExists(ctx context.Context, email string) (bool, error)

	ListPatients(ctx context.Context) ([]domain.Patient, error)
}

type Doctors interface {
	// CreateDoctor inserts d and returns the generated id. Doctor emails are
	// not unique.
	CreateDoctor(ctx context.Context, d domain.Doctor) (int64, error)

	GetDoctorByID(ctx context.Context, id int64) (domain.Doctor, error)

	// GetDoctorByEmail matches exactly. When several doctors share an email
	// the earliest registered one wins.
	GetDoctorByEmail(ctx context.Context, email string) (domain.Doctor, error)

	ListDoctors(ctx context.Context) ([]domain.Doctor, error)

	// DeleteDoctor cascades to the doctor's appointments.
	DeleteDoctor(ctx context.Context, id int64) error
}

type Admins interface {
	// CreateAdmin inserts a and returns the generated id. A case-insensitive
	// email collision yields ErrAlreadyExists.
	CreateAdmin(ctx context.Context, a domain.Admin) (int64, error)

	// GetAdminByEmail matches case-insensitively.
	GetAdminByEmail(ctx context.Context, email string) (domain.Admin, error)

	// AdminEmailExists matches case-insensitively.
	AdminEmailExists(ctx context.Context, email string) (bool, error)
}

type Appointments interface {
	CreateAppointment(ctx context.Context, a domain.Appointment) (int64, error)
	GetAppointmentByID(ctx context.Context, id int64) (domain.Appointment, error)
	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
	ListAppointmentsByPatient(ctx context.Context, patientID int64) ([]domain.Appointment, error)
	ListAppointmentsByDoctor(ctx context.Context, doctorID int64) ([]domain.Appointment, error)

	// ListAppointmentDetails joins patient and doctor names. Missing parties
	// are reported as empty strings.
	ListAppointmentDetails(ctx context.Context) ([]domain.AppointmentDetails, error)

	UpdateAppointmentStatus(ctx context.Context, id int64, status string) error
	DeleteAppointment(ctx context.Context, id int64) error
}
