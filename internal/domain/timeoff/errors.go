package timeoff

import "errors"

var (
	ErrRequestNotFound  = errors.New("time off request not found")
	ErrAlreadyProcessed = errors.New("time off request already processed")
	ErrNoAllocation     = errors.New("leave type has no allocation")
)
