package timeoff

import "time"

type Type string

const (
	TypePaidTimeOff Type = "paid_time_off"
	TypeSickLeave   Type = "sick_leave"
	TypeUnpaidLeave Type = "unpaid_leave"
)

// Fixed annual allocations. Unpaid leave is uncapped.
const (
	PaidTimeOffAllocation = 24
	SickLeaveAllocation   = 7
)

func (t Type) Valid() bool {
	switch t {
	case TypePaidTimeOff, TypeSickLeave, TypeUnpaidLeave:
		return true
	}
	return false
}

// HasAllocation reports whether the type counts against an annual budget.
func (t Type) HasAllocation() bool {
	return t == TypePaidTimeOff || t == TypeSickLeave
}

// Allocation returns the annual day budget for the type, 0 when uncapped.
func (t Type) Allocation() int {
	switch t {
	case TypePaidTimeOff:
		return PaidTimeOffAllocation
	case TypeSickLeave:
		return SickLeaveAllocation
	}
	return 0
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Request entity
type Request struct {
	ID     string
	UserID string
	Type   Type

	StartDate time.Time
	EndDate   time.Time

	// Days is computed once when the request is created and never recomputed.
	Days int

	Status          Status
	AttachmentURL   *string
	Notes           *string
	RejectionReason *string

	ApprovedBy *string
	ApprovedAt *time.Time
	RejectedBy *string
	RejectedAt *time.Time

	CreatedAt time.Time

	// Relationships (for responses)
	EmployeeName  *string
	EmployeeEmail *string
	EmployeeCode  *string
}

// Balance is the derived allocation state for one employee and leave type.
// It is recomputed from the approved-request set on every read; no counter
// is persisted, so it can never drift from the requests themselves.
type Balance struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Available int `json:"available"`
}
