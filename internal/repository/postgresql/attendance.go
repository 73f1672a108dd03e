package postgresql

import (
	"context"
	"time"

	"github.com/peoplehub/hr-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hr-backend-go/internal/pkg/database"
)

type attendanceRecordRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRecordRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRecordRepositoryImpl{db: db}
}

func (r *attendanceRecordRepositoryImpl) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, check_in, check_out, work_hours, extra_hours, status, created_at
		FROM attendance_records
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Date,
			&rec.CheckIn,
			&rec.CheckOut,
			&rec.WorkHours,
			&rec.ExtraHours,
			&rec.Status,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *attendanceRecordRepositoryImpl) ListByHRAndDate(ctx context.Context, hrID string, date time.Time, search string) ([]attendance.EmployeeDay, error) {
	q := GetQuerier(ctx, r.db)

	// LEFT JOIN keeps employees without a record for the date; the service
	// renders those as absent.
	query := `
		SELECT u.id, u.name, u.email, u.employee_code, u.avatar_url,
		       a.id, a.user_id, a.date, a.check_in, a.check_out,
		       a.work_hours, a.extra_hours, a.status, a.created_at
		FROM users u
		LEFT JOIN attendance_records a ON a.user_id = u.id AND a.date = $2
		WHERE u.hr_id = $1 AND u.role = 'employee'
		  AND ($3 = '' OR u.name ILIKE '%' || $3 || '%'
		       OR u.email ILIKE '%' || $3 || '%'
		       OR u.employee_code ILIKE '%' || $3 || '%')
		ORDER BY u.name ASC
	`

	rows, err := q.Query(ctx, query, hrID, date, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []attendance.EmployeeDay
	for rows.Next() {
		var day attendance.EmployeeDay
		var rec attendance.Record
		var recID, recUserID *string
		var recDate, recCreatedAt *time.Time
		var recStatus *attendance.Status
		err := rows.Scan(
			&day.UserID,
			&day.Name,
			&day.Email,
			&day.EmployeeCode,
			&day.AvatarURL,
			&recID,
			&recUserID,
			&recDate,
			&rec.CheckIn,
			&rec.CheckOut,
			&rec.WorkHours,
			&rec.ExtraHours,
			&recStatus,
			&recCreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if recID != nil {
			rec.ID = *recID
			rec.UserID = *recUserID
			rec.Date = *recDate
			rec.Status = *recStatus
			rec.CreatedAt = *recCreatedAt
			day.Record = &rec
		}
		days = append(days, day)
	}
	return days, rows.Err()
}
