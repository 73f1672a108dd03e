package timeoff

import (
	"context"
	"time"
)

// StatusUpdate carries the terminal-state fields written alongside a
// PENDING → APPROVED/REJECTED transition.
type StatusUpdate struct {
	Status          Status
	ActorID         string
	At              time.Time
	RejectionReason *string
}

// RequestRepository - interface for the time_off_requests table
type RequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	// ListByUser returns the user's requests, newest first.
	ListByUser(ctx context.Context, userID string) ([]Request, error)
	// ListByHR returns all requests of employees owned by hrID, newest first,
	// with employee name/email/code joined in.
	ListByHR(ctx context.Context, hrID string) ([]Request, error)
	// UpdateStatus performs a conditional write: the row is updated only if
	// its status still equals expected. ErrAlreadyProcessed is returned when
	// the guard fails, ErrRequestNotFound when the row does not exist.
	UpdateStatus(ctx context.Context, id string, expected Status, update StatusUpdate) (Request, error)
	// SumApprovedDays sums days over the user's APPROVED requests of the
	// given type. Pending and rejected requests never count.
	SumApprovedDays(ctx context.Context, userID string, leaveType Type) (int, error)
}
