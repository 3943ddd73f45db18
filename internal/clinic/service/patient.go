package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/cryptox"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

type PatientService struct {
	Store  store.Store
	Hasher cryptox.Hasher
}

type AddPatientInput struct {
	Name     string
	Contact  string
	Email    string
	Password string
}

func (s *PatientService) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	return s.Store.Patients().ListPatients(ctx)
}

// AddPatient is the administrative counterpart of registration: the name is
// taken as given and the password is hashed the same way.
func (s *PatientService) AddPatient(ctx context.Context, in AddPatientInput) (domain.Patient, error) {
	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.Patient{}, err
	}

	p := domain.Patient{
		Name:         in.Name,
		Contact:      in.Contact,
		Email:        in.Email,
		PasswordHash: hash,
	}
	p.ID, err = s.Store.Patients().CreatePatient(ctx, p)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Patient{}, ErrEmailExists
		}
		return domain.Patient{}, err
	}

	slogx.FromContext(ctx).Info("patient added", slog.Int64("patient_id", p.ID))
	return p, nil
}

// PatientAppointments lists a patient's appointments; unknown patients
// simply have none.
func (s *PatientService) PatientAppointments(ctx context.Context, patientID int64) ([]domain.Appointment, error) {
	return s.Store.Appointments().ListAppointmentsByPatient(ctx, patientID)
}

func (s *PatientService) GetPatientByEmail(ctx context.Context, email string) (domain.Patient, error) {
	p, err := s.Store.Patients().GetPatientByEmail(ctx, email)
	return p, mapNotFound(err)
}
