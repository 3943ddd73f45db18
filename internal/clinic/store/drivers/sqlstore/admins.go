package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
)

const createAdmin = `
INSERT INTO admins (name, email, password)
VALUES (?, ?, ?)
RETURNING id`

const getAdminByEmail = `
SELECT id, name, email, password, created_at FROM admins
WHERE lower(email) = lower(?)
ORDER BY id
LIMIT 1`

const adminEmailExists = `SELECT EXISTS (SELECT 1 FROM admins WHERE lower(email) = lower(?))`

type adminsRepo struct {
	q *Queries
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) (int64, error) {
	return r.q.insertID(ctx, createAdmin, a.Name, a.Email, a.Password)
}

func (r *adminsRepo) GetAdminByEmail(ctx context.Context, email string) (domain.Admin, error) {
	var a domain.Admin
	err := r.q.queryRow(ctx, getAdminByEmail, email).
		Scan(&a.ID, &a.Name, &a.Email, &a.Password, timestamp{&a.CreatedAt})
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return a, nil
}

func (r *adminsRepo) AdminEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.q.queryRow(ctx, adminEmailExists, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
