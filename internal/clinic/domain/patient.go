package domain

import "time"

type Patient struct {
	ID           int64
	Name         string
	Contact      string
	Email        string
	PasswordHash string // argon2id PHC string, never serialized
	CreatedAt    time.Time
}
