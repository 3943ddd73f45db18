package sqlstore

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
)

const appointmentColumns = `id, patient_id, doctor_id, appointment_date, appointment_time, status`

const createAppointment = `
INSERT INTO appointments (patient_id, doctor_id, appointment_date, appointment_time, status)
VALUES (?, ?, ?, ?, ?)
RETURNING id`

const getAppointmentByID = `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = ?`

const listAppointments = `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY id`

const listAppointmentsByPatient = `SELECT ` + appointmentColumns + ` FROM appointments WHERE patient_id = ? ORDER BY id`

const listAppointmentsByDoctor = `SELECT ` + appointmentColumns + ` FROM appointments WHERE doctor_id = ? ORDER BY id`

const listAppointmentDetails = `
SELECT a.id, a.appointment_date, a.appointment_time, a.status, COALESCE(p.name, ''), COALESCE(d.name, '')
FROM appointments a
LEFT JOIN patients p ON p.id = a.patient_id
LEFT JOIN doctors d ON d.id = a.doctor_id
ORDER BY a.id`

const updateAppointmentStatus = `UPDATE appointments SET status = ? WHERE id = ?`

const deleteAppointment = `DELETE FROM appointments WHERE id = ?`

type appointmentsRepo struct {
	q *Queries
}

func (r *appointmentsRepo) CreateAppointment(ctx context.Context, a domain.Appointment) (int64, error) {
	return r.q.insertID(ctx, createAppointment, a.PatientID, a.DoctorID, a.Date.UTC(), a.Time, a.Status)
}

func (r *appointmentsRepo) GetAppointmentByID(ctx context.Context, id int64) (domain.Appointment, error) {
	return scanAppointment(r.q.queryRow(ctx, getAppointmentByID, id))
}

func (r *appointmentsRepo) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return r.list(ctx, listAppointments)
}

func (r *appointmentsRepo) ListAppointmentsByPatient(ctx context.Context, patientID int64) ([]domain.Appointment, error) {
	return r.list(ctx, listAppointmentsByPatient, patientID)
}

func (r *appointmentsRepo) ListAppointmentsByDoctor(ctx context.Context, doctorID int64) ([]domain.Appointment, error) {
	return r.list(ctx, listAppointmentsByDoctor, doctorID)
}

func (r *appointmentsRepo) ListAppointmentDetails(ctx context.Context) ([]domain.AppointmentDetails, error) {
	rows, err := r.q.query(ctx, listAppointmentDetails)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AppointmentDetails
	for rows.Next() {
		var d domain.AppointmentDetails
		if err := rows.Scan(&d.ID, timestamp{&d.Date}, &d.Time, &d.Status, &d.PatientName, &d.DoctorName); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *appointmentsRepo) UpdateAppointmentStatus(ctx context.Context, id int64, status string) error {
	return r.q.execOne(ctx, updateAppointmentStatus, status, id)
}

func (r *appointmentsRepo) DeleteAppointment(ctx context.Context, id int64) error {
	return r.q.execOne(ctx, deleteAppointment, id)
}

func (r *appointmentsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Appointment, error) {
	rows, err := r.q.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAppointment(row rowScanner) (domain.Appointment, error) {
	var a domain.Appointment
	var slot sql.NullString
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, timestamp{&a.Date}, &slot, &a.Status)
	if err != nil {
		return domain.Appointment{}, mapNotFound(err)
	}
	a.Time = slot.String
	return a, nil
}
