package timeoff

import "context"

// RequestService is the time-off accounting engine. Every operation takes an
// explicit actor id resolved by the caller; nothing is read from ambient
// session state.
type RequestService interface {
	// Create persists a new PENDING request with its day count computed once.
	Create(ctx context.Context, actorID string, req CreateRequestRequest) (Request, error)
	// Approve transitions a PENDING request to APPROVED. The actor must be
	// the HR owning the request's employee.
	Approve(ctx context.Context, actorID string, requestID string) (Request, error)
	// Reject transitions a PENDING request to REJECTED, storing the optional
	// reason. Same preconditions as Approve.
	Reject(ctx context.Context, actorID string, requestID string, reason *string) (Request, error)
	// AvailableBalance derives {total, used, available} for one employee and
	// allocated leave type from the approved-request set.
	AvailableBalance(ctx context.Context, userID string, leaveType Type) (Balance, error)
	// MyRequests returns the actor's own requests plus their balances.
	MyRequests(ctx context.Context, actorID string) (MyRequestsResponse, error)
	// TeamRequests returns requests of the HR actor's owned employees with
	// per-employee and aggregate balances, filtered by search.
	TeamRequests(ctx context.Context, actorID string, search string) (TeamRequestsResponse, error)
}
