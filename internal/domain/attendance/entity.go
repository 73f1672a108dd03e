package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusHalfDay Status = "half_day"
	StatusLeave   Status = "leave"
	StatusAbsent  Status = "absent"
)

// Record entity. At most one record exists per (user, date). Records are
// produced by an external clock-in system and are read-only here.
type Record struct {
	ID         string
	UserID     string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	WorkHours  *decimal.Decimal
	ExtraHours *decimal.Decimal
	Status     Status
	CreatedAt  time.Time
}

// EmployeeDay pairs an owned employee with their record for one date.
// Record is nil when the employee has no row for that date.
type EmployeeDay struct {
	UserID       string
	Name         string
	Email        string
	EmployeeCode *string
	AvatarURL    *string
	Record       *Record
}
