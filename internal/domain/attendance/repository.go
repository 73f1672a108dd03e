package attendance

import (
	"context"
	"time"
)

// RecordRepository - interface for the attendance_records table
type RecordRepository interface {
	// ListByUserAndRange returns the user's records with from <= date <= to,
	// newest first.
	ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]Record, error)
	// ListByHRAndDate returns one row per employee owned by hrID, ordered by
	// name, with the record for the given date joined in when present.
	// Search matches name, email and employee code case-insensitively.
	ListByHRAndDate(ctx context.Context, hrID string, date time.Time, search string) ([]EmployeeDay, error)
}
