// Package storetest holds the behaviour every store driver must share.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty, migrated store. It is called once per subtest.
type Factory func(t *testing.T) store.Store

// Run exercises s against the store.Store contract.
func Run(t *testing.T, newStore Factory) {
	t.Run("patients", func(t *testing.T) { testPatients(t, newStore(t)) })
	t.Run("patient email race", func(t *testing.T) { testPatientEmailRace(t, newStore(t)) })
	t.Run("doctors", func(t *testing.T) { testDoctors(t, newStore(t)) })
	t.Run("admins", func(t *testing.T) { testAdmins(t, newStore(t)) })
	t.Run("appointments", func(t *testing.T) { testAppointments(t, newStore(t)) })
	t.Run("transactions", func(t *testing.T) { testTransactions(t, newStore(t)) })
}

func testPatients(t *testing.T, s store.Store) {
	ctx := context.Background()
	repo := s.Patients()

	id, err := repo.CreatePatient(ctx, domain.Patient{
		Name: "Ann Lee", Contact: "555-0100", Email: "Ann@X.com", PasswordHash: "$argon2id$stub",
	})
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := repo.GetPatientByEmail(ctx, "ann@x.COM")
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, "Ann Lee", got.Name)
	require.Equal(t, "555-0100", got.Contact)
	require.Equal(t, "Ann@X.com", got.Email, "stored email keeps its casing")
	require.False(t, got.CreatedAt.IsZero())

	byID, err := repo.GetPatientByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, got.Email, byID.Email)

	exists, err := repo.PatientEmailExists(ctx, "ANN@x.com")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.PatientEmailExists(ctx, "bob@x.com")
	require.NoError(t, err)
	require.False(t, exists)

	_, err = repo.CreatePatient(ctx, domain.Patient{Name: "Dup", Email: "ann@x.com", PasswordHash: "h"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = repo.GetPatientByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = repo.GetPatientByID(ctx, id+100)
	require.ErrorIs(t, err, store.ErrNotFound)

	all, err := repo.ListPatients(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func testPatientEmailRace(t *testing.T, s store.Store) {
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Patients().CreatePatient(ctx, domain.Patient{
				Name: "Racer", Email: "race@x.com", PasswordHash: "h",
			})
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	}
	require.Equal(t, 1, created)
}

func testDoctors(t *testing.T, s store.Store) {
	ctx := context.Background()
	repo := s.Doctors()

	first, err := repo.CreateDoctor(ctx, domain.Doctor{
		Name: "Dr. Grey", Specialization: "Surgery", Contact: "555-0101", Email: "grey@clinic.test", PasswordHash: "$2a$stub",
	})
	require.NoError(t, err)

	// Doctor emails are not unique.
	second, err := repo.CreateDoctor(ctx, domain.Doctor{Name: "Dr. Other", Email: "grey@clinic.test", PasswordHash: "$2a$stub"})
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	got, err := repo.GetDoctorByEmail(ctx, "grey@clinic.test")
	require.NoError(t, err)
	require.Equal(t, first, got.ID, "earliest registration wins")
	require.Equal(t, "Surgery", got.Specialization)

	_, err = repo.GetDoctorByEmail(ctx, "GREY@clinic.test")
	require.ErrorIs(t, err, store.ErrNotFound, "doctor lookup is exact")

	other, err := repo.GetDoctorByID(ctx, second)
	require.NoError(t, err)
	require.Empty(t, other.Specialization)

	all, err := repo.ListDoctors(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.NoError(t, repo.DeleteDoctor(ctx, second))
	require.ErrorIs(t, repo.DeleteDoctor(ctx, second), store.ErrNotFound)

	_, err = repo.GetDoctorByID(ctx, second)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testAdmins(t *testing.T, s store.Store) {
	ctx := context.Background()
	repo := s.Admins()

	id, err := repo.CreateAdmin(ctx, domain.Admin{Name: "Root", Email: "Root@Clinic.test", Password: "plain"})
	require.NoError(t, err)

	got, err := repo.GetAdminByEmail(ctx, "root@clinic.TEST")
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, "plain", got.Password)

	exists, err := repo.AdminEmailExists(ctx, "ROOT@clinic.test")
	require.NoError(t, err)
	require.True(t, exists)

	_, err = repo.CreateAdmin(ctx, domain.Admin{Email: "root@clinic.test", Password: "x"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func testAppointments(t *testing.T, s store.Store) {
	ctx := context.Background()

	patientID, err := s.Patients().CreatePatient(ctx, domain.Patient{Name: "Ann Lee", Email: "ann@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	doctorID, err := s.Doctors().CreateDoctor(ctx, domain.Doctor{Name: "Dr. Grey", Email: "grey@clinic.test", PasswordHash: "h"})
	require.NoError(t, err)

	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	repo := s.Appointments()

	id, err := repo.CreateAppointment(ctx, domain.Appointment{
		PatientID: patientID, DoctorID: doctorID, Date: date, Time: "10:30", Status: domain.StatusPending,
	})
	require.NoError(t, err)

	got, err := repo.GetAppointmentByID(ctx, id)
	require.NoError(t, err)
	require.True(t, date.Equal(got.Date), "got %s", got.Date)
	require.Equal(t, "10:30", got.Time)
	require.Equal(t, domain.StatusPending, got.Status)

	byDoctor, err := repo.ListAppointmentsByDoctor(ctx, doctorID)
	require.NoError(t, err)
	require.Len(t, byDoctor, 1)

	byPatient, err := repo.ListAppointmentsByPatient(ctx, patientID)
	require.NoError(t, err)
	require.Len(t, byPatient, 1)

	none, err := repo.ListAppointmentsByDoctor(ctx, doctorID+100)
	require.NoError(t, err)
	require.Empty(t, none)

	require.NoError(t, repo.UpdateAppointmentStatus(ctx, id, domain.StatusCompleted))
	require.ErrorIs(t, repo.UpdateAppointmentStatus(ctx, id+100, "x"), store.ErrNotFound)

	details, err := repo.ListAppointmentDetails(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Equal(t, "Ann Lee", details[0].PatientName)
	require.Equal(t, "Dr. Grey", details[0].DoctorName)
	require.Equal(t, domain.StatusCompleted, details[0].Status)

	// Foreign keys reject unknown parties.
	_, err = repo.CreateAppointment(ctx, domain.Appointment{PatientID: patientID, DoctorID: doctorID + 100, Date: date, Status: domain.StatusPending})
	require.Error(t, err)

	// Deleting the doctor cascades.
	require.NoError(t, s.Doctors().DeleteDoctor(ctx, doctorID))
	all, err := repo.ListAppointments(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	require.ErrorIs(t, repo.DeleteAppointment(ctx, id), store.ErrNotFound)
}

func testTransactions(t *testing.T, s store.Store) {
	ctx := context.Background()

	err := s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Patients().CreatePatient(ctx, domain.Patient{Name: "Rolled", Email: "rolled@x.com", PasswordHash: "h"})
		require.NoError(t, err)
		return context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)

	exists, err := s.Patients().PatientEmailExists(ctx, "rolled@x.com")
	require.NoError(t, err)
	require.False(t, exists, "rolled back insert must not persist")

	err = s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Patients().CreatePatient(ctx, domain.Patient{Name: "Kept", Email: "kept@x.com", PasswordHash: "h"})
		return err
	})
	require.NoError(t, err)

	exists, err = s.Patients().PatientEmailExists(ctx, "kept@x.com")
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, s.Ping(ctx))
}
