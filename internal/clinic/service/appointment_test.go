package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store     store.Store
	doctorID  int64
	patientID int64
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	s := newTestStore(t)

	doctorID, err := s.Doctors().CreateDoctor(ctx, domain.Doctor{Name: "Dr. Grey", Email: "grey@clinic.test", PasswordHash: "h"})
	require.NoError(t, err)
	patientID, err := s.Patients().CreatePatient(ctx, domain.Patient{Name: "Ann Lee", Email: "ann@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	return fixture{store: s, doctorID: doctorID, patientID: patientID}
}

func TestSchedule(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := &AppointmentService{Store: f.store}

	date := time.Date(2026, 3, 14, 9, 0, 0, 0, time.FixedZone("AEST", 10*3600))

	a, err := svc.Schedule(ctx, ScheduleInput{PatientID: f.patientID, DoctorID: f.doctorID, Date: date, Time: "09:00"})
	require.NoError(t, err)
	require.Positive(t, a.ID)
	require.Equal(t, domain.StatusPending, a.Status)
	require.Equal(t, time.UTC, a.Date.Location())
	require.True(t, a.Date.Equal(date))

	got, err := svc.GetAppointment(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "09:00", got.Time)
	require.True(t, got.Date.Equal(date))

	tests := []struct {
		name string
		in   ScheduleInput
		want error
	}{
		{name: "missing doctor id", in: ScheduleInput{PatientID: f.patientID, Date: date, Time: "10:00"}, want: ErrInvalidInput},
		{name: "missing time", in: ScheduleInput{PatientID: f.patientID, DoctorID: f.doctorID, Date: date, Time: " "}, want: ErrInvalidInput},
		{name: "missing date", in: ScheduleInput{PatientID: f.patientID, DoctorID: f.doctorID, Time: "10:00"}, want: ErrInvalidInput},
		{name: "unknown doctor", in: ScheduleInput{PatientID: f.patientID, DoctorID: 9999, Date: date, Time: "10:00"}, want: ErrDoctorNotFound},
		{name: "unknown patient", in: ScheduleInput{PatientID: 9999, DoctorID: f.doctorID, Date: date, Time: "10:00"}, want: ErrPatientNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Schedule(ctx, tt.in)
			require.ErrorIs(t, err, tt.want)
		})
	}

	all, err := svc.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "rejected bookings leave nothing behind")
}

func TestUpdateStatusAndCancel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := &AppointmentService{Store: f.store}

	a, err := svc.Schedule(ctx, ScheduleInput{PatientID: f.patientID, DoctorID: f.doctorID, Date: time.Now(), Time: "11:30"})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, a.ID, "Cancelled by patient")
	require.NoError(t, err)
	require.Equal(t, "Cancelled by patient", updated.Status)

	_, err = svc.UpdateStatus(ctx, a.ID, "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateStatus(ctx, 9999, domain.StatusCompleted)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Cancel(ctx, a.ID))
	require.ErrorIs(t, svc.Cancel(ctx, a.ID), ErrNotFound)
}

func TestListWithDetails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := &AppointmentService{Store: f.store}

	_, err := svc.Schedule(ctx, ScheduleInput{PatientID: f.patientID, DoctorID: f.doctorID, Date: time.Now(), Time: "08:15"})
	require.NoError(t, err)

	rows, err := svc.ListWithDetails(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Ann Lee", rows[0].PatientName)
	require.Equal(t, "Dr. Grey", rows[0].DoctorName)
}

func TestDoctorService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	doctors := &DoctorService{Store: f.store}
	appts := &AppointmentService{Store: f.store}

	list, err := doctors.DoctorAppointments(ctx, f.doctorID)
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = doctors.DoctorAppointments(ctx, 9999)
	require.ErrorIs(t, err, ErrNotFound)

	a, err := appts.Schedule(ctx, ScheduleInput{PatientID: f.patientID, DoctorID: f.doctorID, Date: time.Now(), Time: "14:00"})
	require.NoError(t, err)

	done, err := doctors.CompleteAppointment(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, done.Status)

	_, err = doctors.CompleteAppointment(ctx, 9999)
	require.ErrorIs(t, err, ErrNotFound)

	d, err := doctors.GetDoctorByEmail(ctx, "grey@clinic.test")
	require.NoError(t, err)
	require.Equal(t, f.doctorID, d.ID)

	_, err = doctors.GetDoctor(ctx, 9999)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, doctors.DeleteDoctor(ctx, f.doctorID))
	require.ErrorIs(t, doctors.DeleteDoctor(ctx, f.doctorID), ErrNotFound)

	remaining, err := appts.ListAppointments(ctx)
	require.NoError(t, err)
	require.Empty(t, remaining, "deleting a doctor removes their appointments")
}

func TestPatientService(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &PatientService{Store: s, Hasher: fastArgon()}

	p, err := svc.AddPatient(ctx, AddPatientInput{Name: "Bob Ray", Contact: "555", Email: "bob@x.com", Password: "pw"})
	require.NoError(t, err)
	require.NotEqual(t, "pw", p.PasswordHash)

	_, err = svc.AddPatient(ctx, AddPatientInput{Name: "Bob", Email: "BOB@x.com", Password: "pw"})
	require.ErrorIs(t, err, ErrEmailExists)

	got, err := svc.GetPatientByEmail(ctx, "bob@x.com")
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)

	_, err = svc.GetPatientByEmail(ctx, "ghost@x.com")
	require.ErrorIs(t, err, ErrNotFound)

	appts, err := svc.PatientAppointments(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, appts)

	all, err := svc.ListPatients(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}
