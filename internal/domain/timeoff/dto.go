package timeoff

import (
	"time"

	"github.com/peoplehub/hr-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	// UserID is only honoured for HR actors creating on behalf of one of
	// their own employees. Employee actors may not target anyone else.
	UserID        *string `json:"user_id,omitempty"`
	Type          string  `json:"type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Notes         *string `json:"notes,omitempty"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	} else if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of paid_time_off, sick_leave, unpaid_leave",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if r.Notes != nil && len(*r.Notes) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectRequestRequest struct {
	Reason *string `json:"reason,omitempty"`
}

func (r *RejectRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Reason != nil && len(*r.Reason) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID              string    `json:"id"`
	Type            Type      `json:"type"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	Days            int       `json:"days"`
	Status          Status    `json:"status"`
	AttachmentURL   *string   `json:"attachment_url,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	// Present on HR listings only
	EmployeeID    string  `json:"employee_id,omitempty"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	EmployeeEmail *string `json:"employee_email,omitempty"`
	EmployeeCode  *string `json:"employee_code,omitempty"`
}

// Allocations reports the paid and sick balances. Unpaid leave is uncapped
// and therefore excluded from balance reporting.
type Allocations struct {
	PaidTimeOff Balance `json:"paid_time_off"`
	SickLeave   Balance `json:"sick_leave"`
}

type MyRequestsResponse struct {
	Requests    []RequestResponse `json:"time_off_requests"`
	Allocations Allocations       `json:"allocations"`
}

// EmployeeAllocations is the per-employee balance pair on the HR listing.
type EmployeeAllocations struct {
	EmployeeID  string  `json:"employee_id"`
	PaidTimeOff Balance `json:"paid_time_off"`
	SickLeave   Balance `json:"sick_leave"`
}

type TeamRequestsResponse struct {
	Requests            []RequestResponse     `json:"time_off_requests"`
	Allocations         Allocations           `json:"allocations"`
	EmployeeAllocations []EmployeeAllocations `json:"employee_allocations"`
}

func ToRequestResponse(r Request) RequestResponse {
	return RequestResponse{
		ID:              r.ID,
		Type:            r.Type,
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		Days:            r.Days,
		Status:          r.Status,
		AttachmentURL:   r.AttachmentURL,
		Notes:           r.Notes,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
		EmployeeID:      r.UserID,
		EmployeeName:    r.EmployeeName,
		EmployeeEmail:   r.EmployeeEmail,
		EmployeeCode:    r.EmployeeCode,
	}
}
