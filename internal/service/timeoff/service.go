package timeoff

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/peoplehub/hr-backend-go/internal/domain/auth"
	"github.com/peoplehub/hr-backend-go/internal/domain/timeoff"
	"github.com/peoplehub/hr-backend-go/internal/domain/user"
)

type RequestServiceImpl struct {
	timeoff.RequestRepository
	user.UserRepository
	ledger *BalanceLedger
}

func NewRequestService(requestRepository timeoff.RequestRepository, userRepository user.UserRepository, ledger *BalanceLedger) timeoff.RequestService {
	return &RequestServiceImpl{
		RequestRepository: requestRepository,
		UserRepository:    userRepository,
		ledger:            ledger,
	}
}

// resolveActor loads the acting user. A missing actor record is an
// authentication failure, not a lookup failure.
func (s *RequestServiceImpl) resolveActor(ctx context.Context, actorID string) (user.User, error) {
	actor, err := s.UserRepository.GetByID(ctx, actorID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return user.User{}, auth.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to resolve actor: %w", err)
	}
	return actor, nil
}

// Create implements timeoff.RequestService.
func (s *RequestServiceImpl) Create(ctx context.Context, actorID string, req timeoff.CreateRequestRequest) (timeoff.Request, error) {
	if err := req.Validate(); err != nil {
		return timeoff.Request{}, err
	}

	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return timeoff.Request{}, err
	}

	target := actor
	if req.UserID != nil && *req.UserID != actor.ID {
		// Only an HR actor may create on behalf of someone else, and only
		// for an employee they own.
		if !actor.IsHR() {
			return timeoff.Request{}, user.ErrHRAccessRequired
		}
		target, err = s.UserRepository.GetByID(ctx, *req.UserID)
		if err != nil {
			return timeoff.Request{}, err
		}
		if !actor.Owns(&target) {
			return timeoff.Request{}, user.ErrEmployeeNotOwned
		}
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	request := timeoff.Request{
		UserID:        target.ID,
		Type:          timeoff.Type(req.Type),
		StartDate:     startDate,
		EndDate:       endDate,
		Days:          InclusiveDays(startDate, endDate),
		Status:        timeoff.StatusPending,
		AttachmentURL: req.AttachmentURL,
		Notes:         req.Notes,
	}

	created, err := s.RequestRepository.Create(ctx, request)
	if err != nil {
		return timeoff.Request{}, fmt.Errorf("failed to create time off request: %w", err)
	}

	return created, nil
}

// adjudicate loads the request and checks the actor may transition it.
func (s *RequestServiceImpl) adjudicate(ctx context.Context, actorID string, requestID string) (timeoff.Request, error) {
	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return timeoff.Request{}, err
	}
	if !actor.IsHR() {
		return timeoff.Request{}, user.ErrHRAccessRequired
	}

	request, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return timeoff.Request{}, err
	}

	owner, err := s.UserRepository.GetByID(ctx, request.UserID)
	if err != nil {
		return timeoff.Request{}, err
	}
	if !actor.Owns(&owner) {
		return timeoff.Request{}, user.ErrEmployeeNotOwned
	}

	if request.Status != timeoff.StatusPending {
		return timeoff.Request{}, timeoff.ErrAlreadyProcessed
	}

	return request, nil
}

// Approve implements timeoff.RequestService.
func (s *RequestServiceImpl) Approve(ctx context.Context, actorID string, requestID string) (timeoff.Request, error) {
	request, err := s.adjudicate(ctx, actorID, requestID)
	if err != nil {
		return timeoff.Request{}, err
	}

	// The repository re-checks the PENDING guard as a conditional write, so
	// a concurrent adjudication cannot double-process the request.
	updated, err := s.RequestRepository.UpdateStatus(ctx, request.ID, timeoff.StatusPending, timeoff.StatusUpdate{
		Status:  timeoff.StatusApproved,
		ActorID: actorID,
		At:      time.Now(),
	})
	if err != nil {
		return timeoff.Request{}, err
	}

	return updated, nil
}

// Reject implements timeoff.RequestService.
func (s *RequestServiceImpl) Reject(ctx context.Context, actorID string, requestID string, reason *string) (timeoff.Request, error) {
	request, err := s.adjudicate(ctx, actorID, requestID)
	if err != nil {
		return timeoff.Request{}, err
	}

	updated, err := s.RequestRepository.UpdateStatus(ctx, request.ID, timeoff.StatusPending, timeoff.StatusUpdate{
		Status:          timeoff.StatusRejected,
		ActorID:         actorID,
		At:              time.Now(),
		RejectionReason: reason,
	})
	if err != nil {
		return timeoff.Request{}, err
	}

	return updated, nil
}

// AvailableBalance implements timeoff.RequestService.
func (s *RequestServiceImpl) AvailableBalance(ctx context.Context, userID string, leaveType timeoff.Type) (timeoff.Balance, error) {
	return s.ledger.AvailableBalance(ctx, userID, leaveType)
}

// MyRequests implements timeoff.RequestService.
func (s *RequestServiceImpl) MyRequests(ctx context.Context, actorID string) (timeoff.MyRequestsResponse, error) {
	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return timeoff.MyRequestsResponse{}, err
	}

	requests, err := s.RequestRepository.ListByUser(ctx, actor.ID)
	if err != nil {
		return timeoff.MyRequestsResponse{}, fmt.Errorf("failed to list time off requests: %w", err)
	}

	allocations, err := s.ledger.Allocations(ctx, actor.ID)
	if err != nil {
		return timeoff.MyRequestsResponse{}, err
	}

	resp := timeoff.MyRequestsResponse{
		Requests:    make([]timeoff.RequestResponse, 0, len(requests)),
		Allocations: allocations,
	}
	for _, r := range requests {
		resp.Requests = append(resp.Requests, timeoff.ToRequestResponse(r))
	}
	return resp, nil
}

// TeamRequests implements timeoff.RequestService.
func (s *RequestServiceImpl) TeamRequests(ctx context.Context, actorID string, search string) (timeoff.TeamRequestsResponse, error) {
	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return timeoff.TeamRequestsResponse{}, err
	}
	if !actor.IsHR() {
		return timeoff.TeamRequestsResponse{}, user.ErrHRAccessRequired
	}

	requests, err := s.RequestRepository.ListByHR(ctx, actor.ID)
	if err != nil {
		return timeoff.TeamRequestsResponse{}, fmt.Errorf("failed to list time off requests: %w", err)
	}
	requests = filterRequests(requests, search)

	employees, err := s.UserRepository.ListByHR(ctx, actor.ID, "")
	if err != nil {
		return timeoff.TeamRequestsResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := timeoff.TeamRequestsResponse{
		Requests:            make([]timeoff.RequestResponse, 0, len(requests)),
		EmployeeAllocations: make([]timeoff.EmployeeAllocations, 0, len(employees)),
	}
	for _, r := range requests {
		resp.Requests = append(resp.Requests, timeoff.ToRequestResponse(r))
	}

	// Aggregate usage across the whole team against the single-employee
	// totals, matching the summary cards on the HR dashboard.
	resp.Allocations = timeoff.Allocations{
		PaidTimeOff: timeoff.Balance{Total: timeoff.PaidTimeOffAllocation},
		SickLeave:   timeoff.Balance{Total: timeoff.SickLeaveAllocation},
	}
	for _, emp := range employees {
		allocations, err := s.ledger.Allocations(ctx, emp.ID)
		if err != nil {
			return timeoff.TeamRequestsResponse{}, err
		}
		resp.EmployeeAllocations = append(resp.EmployeeAllocations, timeoff.EmployeeAllocations{
			EmployeeID:  emp.ID,
			PaidTimeOff: allocations.PaidTimeOff,
			SickLeave:   allocations.SickLeave,
		})
		resp.Allocations.PaidTimeOff.Used += allocations.PaidTimeOff.Used
		resp.Allocations.SickLeave.Used += allocations.SickLeave.Used
	}
	resp.Allocations.PaidTimeOff.Available = resp.Allocations.PaidTimeOff.Total - resp.Allocations.PaidTimeOff.Used
	resp.Allocations.SickLeave.Available = resp.Allocations.SickLeave.Total - resp.Allocations.SickLeave.Used

	return resp, nil
}

// filterRequests applies the case-insensitive substring search over employee
// name, email and code. The input is already scoped to the HR's employees.
func filterRequests(requests []timeoff.Request, search string) []timeoff.Request {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return requests
	}

	filtered := make([]timeoff.Request, 0, len(requests))
	for _, r := range requests {
		if matchField(r.EmployeeName, query) || matchField(r.EmployeeEmail, query) || matchField(r.EmployeeCode, query) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func matchField(field *string, query string) bool {
	if field == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*field), query)
}
