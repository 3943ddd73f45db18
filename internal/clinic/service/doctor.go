package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

type DoctorService struct {
	Store store.Store
}

func (s *DoctorService) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	return s.Store.Doctors().ListDoctors(ctx)
}

func (s *DoctorService) GetDoctor(ctx context.Context, id int64) (domain.Doctor, error) {
	d, err := s.Store.Doctors().GetDoctorByID(ctx, id)
	return d, mapNotFound(err)
}

// GetDoctorByEmail matches exactly, like doctor login.
func (s *DoctorService) GetDoctorByEmail(ctx context.Context, email string) (domain.Doctor, error) {
	d, err := s.Store.Doctors().GetDoctorByEmail(ctx, email)
	return d, mapNotFound(err)
}

// DeleteDoctor removes the doctor together with their appointments.
func (s *DoctorService) DeleteDoctor(ctx context.Context, id int64) error {
	if err := s.Store.Doctors().DeleteDoctor(ctx, id); err != nil {
		return mapNotFound(err)
	}
	slogx.FromContext(ctx).Info("doctor deleted", slog.Int64("doctor_id", id))
	return nil
}

// DoctorAppointments lists a doctor's appointments. An unknown doctor is
// ErrNotFound, a known doctor with no bookings is an empty list.
func (s *DoctorService) DoctorAppointments(ctx context.Context, doctorID int64) ([]domain.Appointment, error) {
	if _, err := s.Store.Doctors().GetDoctorByID(ctx, doctorID); err != nil {
		return nil, mapNotFound(err)
	}
	return s.Store.Appointments().ListAppointmentsByDoctor(ctx, doctorID)
}

// CompleteAppointment marks an appointment Completed.
func (s *DoctorService) CompleteAppointment(ctx context.Context, appointmentID int64) (domain.Appointment, error) {
	var out domain.Appointment
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Appointments().UpdateAppointmentStatus(ctx, appointmentID, domain.StatusCompleted); err != nil {
			return err
		}
		a, err := tx.Appointments().GetAppointmentByID(ctx, appointmentID)
		out = a
		return err
	})
	return out, mapNotFound(err)
}

func mapNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
