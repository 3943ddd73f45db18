package domain

// Role is carried in the "role" token claim.
type Role string

const (
	RolePatient Role = "Patient"
	RoleDoctor  Role = "Doctor"
	RoleAdmin   Role = "Admin"
)

func (r Role) String() string { return string(r) }
