package sqlstore

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
)

const doctorColumns = `id, name, specialization, contact, email, password_hash, created_at`

const createDoctor = `
INSERT INTO doctors (name, specialization, contact, email, password_hash)
VALUES (?, ?, ?, ?, ?)
RETURNING id`

const getDoctorByID = `SELECT ` + doctorColumns + ` FROM doctors WHERE id = ?`

const getDoctorByEmail = `
SELECT ` + doctorColumns + ` FROM doctors
WHERE email = ?
ORDER BY id
LIMIT 1`

const listDoctors = `SELECT ` + doctorColumns + ` FROM doctors ORDER BY id`

const deleteDoctor = `DELETE FROM doctors WHERE id = ?`

type doctorsRepo struct {
	q *Queries
}

func (r *doctorsRepo) CreateDoctor(ctx context.Context, d domain.Doctor) (int64, error) {
	return r.q.insertID(ctx, createDoctor, d.Name, d.Specialization, d.Contact, d.Email, d.PasswordHash)
}

func (r *doctorsRepo) GetDoctorByID(ctx context.Context, id int64) (domain.Doctor, error) {
	return scanDoctor(r.q.queryRow(ctx, getDoctorByID, id))
}

func (r *doctorsRepo) GetDoctorByEmail(ctx context.Context, email string) (domain.Doctor, error) {
	return scanDoctor(r.q.queryRow(ctx, getDoctorByEmail, email))
}

func (r *doctorsRepo) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	rows, err := r.q.query(ctx, listDoctors)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *doctorsRepo) DeleteDoctor(ctx context.Context, id int64) error {
	return r.q.execOne(ctx, deleteDoctor, id)
}

func scanDoctor(row rowScanner) (domain.Doctor, error) {
	var d domain.Doctor
	var specialization, contact sql.NullString
	err := row.Scan(&d.ID, &d.Name, &specialization, &contact, &d.Email, &d.PasswordHash, timestamp{&d.CreatedAt})
	if err != nil {
		return domain.Doctor{}, mapNotFound(err)
	}
	d.Specialization = specialization.String
	d.Contact = contact.String
	return d, nil
}
