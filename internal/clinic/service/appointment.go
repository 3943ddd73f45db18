package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

type AppointmentService struct {
	Store store.Store
}

type ScheduleInput struct {
	PatientID int64
	DoctorID  int64
	Date      time.Time
	Time      string
}

func (s *AppointmentService) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return s.Store.Appointments().ListAppointments(ctx)
}

// Schedule books a Pending appointment after checking both parties exist.
// The date is normalised to UTC.
func (s *AppointmentService) Schedule(ctx context.Context, in ScheduleInput) (domain.Appointment, error) {
	if in.PatientID <= 0 || in.DoctorID <= 0 || strings.TrimSpace(in.Time) == "" || in.Date.IsZero() {
		return domain.Appointment{}, ErrInvalidInput
	}

	a := domain.Appointment{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Date:      in.Date.UTC(),
		Time:      in.Time,
		Status:    domain.StatusPending,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Doctors().GetDoctorByID(ctx, in.DoctorID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrDoctorNotFound
			}
			return err
		}
		if _, err := tx.Patients().GetPatientByID(ctx, in.PatientID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrPatientNotFound
			}
			return err
		}

		id, err := tx.Appointments().CreateAppointment(ctx, a)
		a.ID = id
		return err
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	slogx.FromContext(ctx).Info("appointment booked",
		slog.Int64("appointment_id", a.ID),
		slog.Int64("doctor_id", a.DoctorID),
		slog.Int64("patient_id", a.PatientID),
	)
	return a, nil
}

// UpdateStatus sets an arbitrary status and returns the updated record.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id int64, status string) (domain.Appointment, error) {
	if strings.TrimSpace(status) == "" {
		return domain.Appointment{}, ErrInvalidInput
	}

	var out domain.Appointment
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Appointments().UpdateAppointmentStatus(ctx, id, status); err != nil {
			return err
		}
		a, err := tx.Appointments().GetAppointmentByID(ctx, id)
		out = a
		return err
	})
	return out, mapNotFound(err)
}

// GetAppointment fetches one appointment.
func (s *AppointmentService) GetAppointment(ctx context.Context, id int64) (domain.Appointment, error) {
	a, err := s.Store.Appointments().GetAppointmentByID(ctx, id)
	return a, mapNotFound(err)
}

func (s *AppointmentService) Cancel(ctx context.Context, id int64) error {
	if err := s.Store.Appointments().DeleteAppointment(ctx, id); err != nil {
		return mapNotFound(err)
	}
	slogx.FromContext(ctx).Info("appointment cancelled", slog.Int64("appointment_id", id))
	return nil
}

// ListWithDetails joins both parties' names, substituting "N/A" for any that
// no longer resolve.
func (s *AppointmentService) ListWithDetails(ctx context.Context) ([]domain.AppointmentDetails, error) {
	rows, err := s.Store.Appointments().ListAppointmentDetails(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].PatientName == "" {
			rows[i].PatientName = domain.NotAvailable
		}
		if rows[i].DoctorName == "" {
			rows[i].DoctorName = domain.NotAvailable
		}
	}
	return rows, nil
}
