package domain

import "time"

type Admin struct {
	ID    int64
	Name  string
	Email string

	// Password holds either an argon2id PHC string or, for accounts created
	// through the plaintext admin registration path, the raw password.
	Password  string
	CreatedAt time.Time
}
