package attendance

import (
	"context"
	"time"
)

type Service interface {
	// MyAttendance returns the actor's records for a calendar month
	// (month is 1-12) with the month summary.
	MyAttendance(ctx context.Context, actorID string, month int, year int) (MyAttendanceResponse, error)
	// TeamAttendance returns one row per employee owned by the HR actor for
	// the given date. Employees without a record render as absent.
	TeamAttendance(ctx context.Context, actorID string, date time.Time, search string) (TeamAttendanceResponse, error)
}
