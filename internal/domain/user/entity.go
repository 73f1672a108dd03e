package user

import "time"

type Role string

const (
	RoleHR       Role = "hr"       // Owns a set of employees, adjudicates their requests
	RoleEmployee Role = "employee" // Regular employee, self-service only
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash *string
	Role         Role
	HRID         *string // owning HR account; set for every employee
	EmployeeCode *string
	JobPosition  *string
	Department   *string
	PhoneNumber  *string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsHR checks if the user adjudicates time-off requests
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

// Owns reports whether other is an employee managed by u.
func (u *User) Owns(other *User) bool {
	if other.Role != RoleEmployee || other.HRID == nil {
		return false
	}
	return *other.HRID == u.ID
}
