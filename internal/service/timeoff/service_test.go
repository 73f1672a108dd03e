package timeoff

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hr-backend-go/internal/domain/auth"
	"github.com/peoplehub/hr-backend-go/internal/domain/timeoff"
	"github.com/peoplehub/hr-backend-go/internal/domain/user"
)

// fakeUserRepo is an in-memory user.UserRepository.
type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ListByHR(_ context.Context, hrID string, search string) ([]user.User, error) {
	query := strings.ToLower(search)
	var result []user.User
	for _, u := range f.users {
		if u.Role != user.RoleEmployee || u.HRID == nil || *u.HRID != hrID {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(u.Name), query) && !strings.Contains(strings.ToLower(u.Email), query) {
			continue
		}
		result = append(result, u)
	}
	return result, nil
}

// fakeRequestRepo is an in-memory timeoff.RequestRepository with the same
// conditional-write semantics as the PostgreSQL implementation.
type fakeRequestRepo struct {
	requests map[string]timeoff.Request
	owners   *fakeUserRepo
	seq      int
}

func (f *fakeRequestRepo) Create(_ context.Context, request timeoff.Request) (timeoff.Request, error) {
	f.seq++
	request.ID = fmt.Sprintf("req-%d", f.seq)
	request.CreatedAt = time.Now()
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id string) (timeoff.Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return timeoff.Request{}, timeoff.ErrRequestNotFound
	}
	return r, nil
}

func (f *fakeRequestRepo) ListByUser(_ context.Context, userID string) ([]timeoff.Request, error) {
	var result []timeoff.Request
	for _, r := range f.requests {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeRequestRepo) ListByHR(_ context.Context, hrID string) ([]timeoff.Request, error) {
	var result []timeoff.Request
	for _, r := range f.requests {
		owner, ok := f.owners.users[r.UserID]
		if !ok || owner.HRID == nil || *owner.HRID != hrID {
			continue
		}
		r.EmployeeName = &owner.Name
		r.EmployeeEmail = &owner.Email
		r.EmployeeCode = owner.EmployeeCode
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeRequestRepo) UpdateStatus(_ context.Context, id string, expected timeoff.Status, update timeoff.StatusUpdate) (timeoff.Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return timeoff.Request{}, timeoff.ErrRequestNotFound
	}
	if r.Status != expected {
		return timeoff.Request{}, timeoff.ErrAlreadyProcessed
	}

	r.Status = update.Status
	at := update.At
	actor := update.ActorID
	switch update.Status {
	case timeoff.StatusApproved:
		r.ApprovedBy = &actor
		r.ApprovedAt = &at
	case timeoff.StatusRejected:
		r.RejectedBy = &actor
		r.RejectedAt = &at
		r.RejectionReason = update.RejectionReason
	}
	f.requests[id] = r
	return r, nil
}

func (f *fakeRequestRepo) SumApprovedDays(_ context.Context, userID string, leaveType timeoff.Type) (int, error) {
	sum := 0
	for _, r := range f.requests {
		if r.UserID == userID && r.Type == leaveType && r.Status == timeoff.StatusApproved {
			sum += r.Days
		}
	}
	return sum, nil
}

type fixture struct {
	userRepo    *fakeUserRepo
	requestRepo *fakeRequestRepo
	service     timeoff.RequestService
}

// newFixture builds two HR accounts: hr-1 owning emp-1 and emp-2, hr-2
// owning emp-3.
func newFixture() *fixture {
	hr1 := "hr-1"
	hr2 := "hr-2"
	code1 := "EMP001"
	code2 := "EMP002"

	userRepo := &fakeUserRepo{users: map[string]user.User{
		"hr-1":  {ID: "hr-1", Name: "Helen Reyes", Email: "helen@example.com", Role: user.RoleHR},
		"hr-2":  {ID: "hr-2", Name: "Harold Kim", Email: "harold@example.com", Role: user.RoleHR},
		"emp-1": {ID: "emp-1", Name: "Alice Tan", Email: "alice@example.com", Role: user.RoleEmployee, HRID: &hr1, EmployeeCode: &code1},
		"emp-2": {ID: "emp-2", Name: "Bob Chen", Email: "bob@example.com", Role: user.RoleEmployee, HRID: &hr1, EmployeeCode: &code2},
		"emp-3": {ID: "emp-3", Name: "Carol Wu", Email: "carol@example.com", Role: user.RoleEmployee, HRID: &hr2},
	}}
	requestRepo := &fakeRequestRepo{requests: map[string]timeoff.Request{}, owners: userRepo}

	ledger := NewBalanceLedger(requestRepo)
	return &fixture{
		userRepo:    userRepo,
		requestRepo: requestRepo,
		service:     NewRequestService(requestRepo, userRepo, ledger),
	}
}

func (f *fixture) seedRequest(userID string, leaveType timeoff.Type, days int, status timeoff.Status) timeoff.Request {
	f.requestRepo.seq++
	r := timeoff.Request{
		ID:        fmt.Sprintf("req-%d", f.requestRepo.seq),
		UserID:    userID,
		Type:      leaveType,
		StartDate: date("2024-06-01"),
		EndDate:   date("2024-06-01").AddDate(0, 0, days-1),
		Days:      days,
		Status:    status,
		CreatedAt: time.Now(),
	}
	f.requestRepo.requests[r.ID] = r
	return r
}

func TestRequestService_Create_SelfService(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	req := timeoff.CreateRequestRequest{
		Type:      string(timeoff.TypePaidTimeOff),
		StartDate: "2024-06-10",
		EndDate:   "2024-06-12",
	}
	created, err := f.service.Create(ctx, "emp-1", req)

	require.NoError(t, err)
	assert.Equal(t, "emp-1", created.UserID)
	assert.Equal(t, timeoff.StatusPending, created.Status)
	assert.Equal(t, 3, created.Days)
	assert.NotEmpty(t, created.ID)
}

func TestRequestService_Create_InvalidType(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	req := timeoff.CreateRequestRequest{
		Type:      "sabbatical",
		StartDate: "2024-06-10",
		EndDate:   "2024-06-12",
	}
	_, err := f.service.Create(ctx, "emp-1", req)

	assert.Error(t, err)
}

func TestRequestService_Create_EmployeeCannotTargetOthers(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	target := "emp-2"
	req := timeoff.CreateRequestRequest{
		UserID:    &target,
		Type:      string(timeoff.TypePaidTimeOff),
		StartDate: "2024-06-10",
		EndDate:   "2024-06-12",
	}
	_, err := f.service.Create(ctx, "emp-1", req)

	assert.Equal(t, user.ErrHRAccessRequired, err)
}

func TestRequestService_Create_HROnBehalfOfOwnedEmployee(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	target := "emp-1"
	req := timeoff.CreateRequestRequest{
		UserID:    &target,
		Type:      string(timeoff.TypeSickLeave),
		StartDate: "2024-06-10",
		EndDate:   "2024-06-10",
	}
	created, err := f.service.Create(ctx, "hr-1", req)

	require.NoError(t, err)
	assert.Equal(t, "emp-1", created.UserID)
	assert.Equal(t, 1, created.Days)
}

func TestRequestService_Create_HRCannotTargetUnownedEmployee(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	// emp-3 belongs to hr-2
	target := "emp-3"
	req := timeoff.CreateRequestRequest{
		UserID:    &target,
		Type:      string(timeoff.TypePaidTimeOff),
		StartDate: "2024-06-10",
		EndDate:   "2024-06-12",
	}
	_, err := f.service.Create(ctx, "hr-1", req)

	assert.Equal(t, user.ErrEmployeeNotOwned, err)
}

func TestRequestService_Create_UnknownActor(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	req := timeoff.CreateRequestRequest{
		Type:      string(timeoff.TypePaidTimeOff),
		StartDate: "2024-06-10",
		EndDate:   "2024-06-12",
	}
	_, err := f.service.Create(ctx, "ghost", req)

	assert.Equal(t, auth.ErrUserNotFound, err)
}

func TestRequestService_Approve_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seeded := f.seedRequest("emp-1", timeoff.TypePaidTimeOff, 3, timeoff.StatusPending)

	updated, err := f.service.Approve(ctx, "hr-1", seeded.ID)

	require.NoError(t, err)
	assert.Equal(t, timeoff.StatusApproved, updated.Status)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, "hr-1", *updated.ApprovedBy)
	assert.NotNil(t, updated.ApprovedAt)
}

func TestRequestService_Approve_AlreadyProcessed(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seeded := f.seedRequest("emp-1", timeoff.TypePaidTimeOff, 3, timeoff.StatusPending)

	_, err := f.service.Approve(ctx, "hr-1", seeded.ID)
	require.NoError(t, err)

	// Second adjudication of either kind must fail; terminal states are final.
	_, err = f.service.Approve(ctx, "hr-1", seeded.ID)
	assert.Equal(t, timeoff.ErrAlreadyProcessed, err)

	_, err = f.service.Reject(ctx, "hr-1", seeded.ID, nil)
	assert.Equal(t, timeoff.ErrAlreadyProcessed, err)
}

func TestRequestService_Approve_RequiresHR(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seeded := f.seedRequest("emp-1", timeoff.TypePaidTimeOff, 3, timeoff.StatusPending)

	_, err := f.service.Approve(ctx, "emp-2", seeded.ID)

	assert.Equal(t, user.ErrHRAccessRequired, err)
}

func TestRequestService_Approve_RequiresOwnership(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seeded := f.seedRequest("emp-1", timeoff.TypePaidTimeOff, 3, timeoff.StatusPending)

	// hr-2 does not own emp-1
	_, err := f.service.Approve(ctx, "hr-2", seeded.ID)

	assert.Equal(t, user.ErrEmployeeNotOwned, err)
}

func TestRequestService_Approve_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.service.Approve(ctx, "hr-1", "req-missing")

	assert.Equal(t, timeoff.ErrRequestNotFound, err)
}

func TestRequestService_Reject_StoresReason(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seeded := f.seedRequest("emp-1", timeoff.TypeSickLeave, 2, timeoff.StatusPending)

	reason := "no medical certificate attached"
	updated, err := f.service.Reject(ctx, "hr-1", seeded.ID, &reason)

	require.NoError(t, err)
	assert.Equal(t, timeoff.StatusRejected, updated.Status)
	require.NotNil(t, updated.RejectionReason)
	assert.Equal(t, reason, *updated.RejectionReason)
	require.NotNil(t, updated.RejectedBy)
	assert.Equal(t, "hr-1", *updated.RejectedBy)
}

func TestRequestService_AvailableBalance_DerivedFromApprovedSet(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedRequest("emp-1", timeoff.TypePaidTimeOff, 5, timeoff.StatusApproved)
	f.seedRequest("emp-1", timeoff.TypePaidTimeOff, 3, timeoff.StatusApproved)
	// Pending and rejected requests never count toward usage.
	f.seedRequest("emp-1", timeoff.TypePaidTimeOff, 10, timeoff.StatusPending)
	f.seedRequest("emp-1", timeoff.TypePaidTimeOff, 4, timeoff.StatusRejected)
	// Other employees and other types are excluded.
	f.seedRequest("emp-2", timeoff.TypePaidTimeOff, 7, timeoff.StatusApproved)
	f.seedRequest("emp-1", timeoff.TypeSickLeave, 2, timeoff.StatusApproved)

	balance, err := f.service.AvailableBalance(ctx, "emp-1", timeoff.TypePaidTimeOff)

	require.NoError(t, err)
	assert.Equal(t, timeoff.Balance{Total: 24, Used: 8, Available: 16}, balance)
}

func TestRequestService_AvailableBalance_UnpaidHasNoAllocation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.service.AvailableBalance(ctx, "emp-1", timeoff.TypeUnpaidLeave)

	assert.Equal(t, timeoff.ErrNoAllocation, err)
}

func TestRequestService_AvailableBalance_MayGoNegative(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedRequest("emp-1", timeoff.TypeSickLeave, 10, timeoff.StatusApproved)

	balance, err := f.service.AvailableBalance(ctx, "emp-1", timeoff.TypeSickLeave)

	require.NoError(t, err)
	assert.Equal(t, timeoff.Balance{Total: 7, Used: 10, Available: -3}, balance)
}

func TestRequestService_MyRequests(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedRequest("emp-1", timeoff.TypePaidTimeOff, 5, timeoff.StatusApproved)
	f.seedRequest("emp-1", timeoff.TypeSickLeave, 1, timeoff.StatusPending)
	f.seedRequest("emp-2", timeoff.TypePaidTimeOff, 2, timeoff.StatusApproved)

	resp, err := f.service.MyRequests(ctx, "emp-1")

	require.NoError(t, err)
	assert.Len(t, resp.Requests, 2)
	assert.Equal(t, timeoff.Balance{Total: 24, Used: 5, Available: 19}, resp.Allocations.PaidTimeOff)
	assert.Equal(t, timeoff.Balance{Total: 7, Used: 0, Available: 7}, resp.Allocations.SickLeave)
}

func TestRequestService_MyRequests_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedRequest("emp-1", timeoff.TypePaidTimeOff, 5, timeoff.StatusApproved)

	first, err := f.service.MyRequests(ctx, "emp-1")
	require.NoError(t, err)
	second, err := f.service.MyRequests(ctx, "emp-1")
	require.NoError(t, err)

	assert.Equal(t, first.Allocations, second.Allocations)
}

func TestRequestService_TeamRequests_ScopedToOwnedEmployees(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedRequest("emp-1", timeoff.TypePaidTimeOff, 5, timeoff.StatusApproved)
	f.seedRequest("emp-2", timeoff.TypeSickLeave, 2, timeoff.StatusPending)
	// Belongs to hr-2, must not appear.
	f.seedRequest("emp-3", timeoff.TypePaidTimeOff, 3, timeoff.StatusPending)

	resp, err := f.service.TeamRequests(ctx, "hr-1", "")

	require.NoError(t, err)
	assert.Len(t, resp.Requests, 2)
	assert.Len(t, resp.EmployeeAllocations, 2)
	assert.Equal(t, 5, resp.Allocations.PaidTimeOff.Used)
	assert.Equal(t, 24, resp.Allocations.PaidTimeOff.Total)
}

func TestRequestService_TeamRequests_Search(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.seedRequest("emp-1", timeoff.TypePaidTimeOff, 5, timeoff.StatusPending)
	f.seedRequest("emp-2", timeoff.TypeSickLeave, 2, timeoff.StatusPending)

	resp, err := f.service.TeamRequests(ctx, "hr-1", "ALICE")

	require.NoError(t, err)
	require.Len(t, resp.Requests, 1)
	require.NotNil(t, resp.Requests[0].EmployeeName)
	assert.Equal(t, "Alice Tan", *resp.Requests[0].EmployeeName)
}

func TestRequestService_TeamRequests_RequiresHR(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.service.TeamRequests(ctx, "emp-1", "")

	assert.Equal(t, user.ErrHRAccessRequired, err)
}
