package sqlstore

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
)

const patientColumns = `id, name, contact, email, password_hash, created_at`

const createPatient = `
INSERT INTO patients (name, contact, email, password_hash)
VALUES (?, ?, ?, ?)
RETURNING id`

const getPatientByID = `SELECT ` + patientColumns + ` FROM patients WHERE id = ?`

const getPatientByEmail = `
SELECT ` + patientColumns + ` FROM patients
WHERE lower(email) = lower(?)
ORDER BY id
LIMIT 1`

const patientEmailExists = `SELECT EXISTS (SELECT 1 FROM patients WHERE lower(email) = lower(?))`

const listPatients = `SELECT ` + patientColumns + ` FROM patients ORDER BY id`

type patientsRepo struct {
	q *Queries
}

func (r *patientsRepo) CreatePatient(ctx context.Context, p domain.Patient) (int64, error) {
	return r.q.insertID(ctx, createPatient, p.Name, p.Contact, p.Email, p.PasswordHash)
}

func (r *patientsRepo) GetPatientByID(ctx context.Context, id int64) (domain.Patient, error) {
	return scanPatient(r.q.queryRow(ctx, getPatientByID, id))
}

func (r *patientsRepo) GetPatientByEmail(ctx context.Context, email string) (domain.Patient, error) {
	return scanPatient(r.q.queryRow(ctx, getPatientByEmail, email))
}

func (r *patientsRepo) PatientEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.q.queryRow(ctx, patientEmailExists, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *patientsRepo) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	rows, err := r.q.query(ctx, listPatients)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatient(row rowScanner) (domain.Patient, error) {
	var p domain.Patient
	var contact sql.NullString
	err := row.Scan(&p.ID, &p.Name, &contact, &p.Email, &p.PasswordHash, timestamp{&p.CreatedAt})
	if err != nil {
		return domain.Patient{}, mapNotFound(err)
	}
	p.Contact = contact.String
	return p, nil
}
