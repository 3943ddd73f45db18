package domain

import (
	"strings"
	"time"
)

const doctorTitle = "Dr."

type Doctor struct {
	ID             int64
	Name           string
	Specialization string
	Contact        string
	Email          string
	PasswordHash   string // bcrypt, never serialized
	CreatedAt      time.Time
}

// NormalizeDoctorName prefixes "Dr. " unless the name already starts with
// "Dr.". The check is case-sensitive.
func NormalizeDoctorName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, doctorTitle) {
		return name
	}
	return doctorTitle + " " + name
}
