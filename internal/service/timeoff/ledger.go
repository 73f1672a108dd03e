package timeoff

import (
	"context"
	"fmt"

	"github.com/peoplehub/hr-backend-go/internal/domain/timeoff"
)

// BalanceLedger derives leave balances from the approved-request set. No
// counter is cached anywhere: every read recomputes from the store, so the
// ledger can never diverge from the requests it is derived from.
type BalanceLedger struct {
	timeoff.RequestRepository
}

func NewBalanceLedger(requestRepository timeoff.RequestRepository) *BalanceLedger {
	return &BalanceLedger{RequestRepository: requestRepository}
}

// AvailableBalance returns {total, used, available} for one employee and
// leave type. Available may go negative when an HR approves past the
// allocation; no ceiling is enforced at approval time.
func (l *BalanceLedger) AvailableBalance(ctx context.Context, userID string, leaveType timeoff.Type) (timeoff.Balance, error) {
	if !leaveType.HasAllocation() {
		return timeoff.Balance{}, timeoff.ErrNoAllocation
	}

	used, err := l.SumApprovedDays(ctx, userID, leaveType)
	if err != nil {
		return timeoff.Balance{}, fmt.Errorf("failed to sum approved days: %w", err)
	}

	total := leaveType.Allocation()
	return timeoff.Balance{
		Total:     total,
		Used:      used,
		Available: total - used,
	}, nil
}

// Allocations returns the paid and sick balances for one employee.
func (l *BalanceLedger) Allocations(ctx context.Context, userID string) (timeoff.Allocations, error) {
	paid, err := l.AvailableBalance(ctx, userID, timeoff.TypePaidTimeOff)
	if err != nil {
		return timeoff.Allocations{}, err
	}
	sick, err := l.AvailableBalance(ctx, userID, timeoff.TypeSickLeave)
	if err != nil {
		return timeoff.Allocations{}, err
	}
	return timeoff.Allocations{PaidTimeOff: paid, SickLeave: sick}, nil
}
