package user

import "context"

// UserRepository - interface for the users table
type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// ListByHR returns the employees owned by hrID, newest first. When search
	// is non-empty it is matched case-insensitively as a substring against
	// name, email and employee code.
	ListByHR(ctx context.Context, hrID string, search string) ([]User, error)
}
