package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/peoplehub/hr-backend-go/internal/domain/timeoff"
	"github.com/peoplehub/hr-backend-go/internal/pkg/database"
)

type timeOffRequestRepositoryImpl struct {
	db *database.DB
}

func NewTimeOffRequestRepository(db *database.DB) timeoff.RequestRepository {
	return &timeOffRequestRepositoryImpl{db: db}
}

const requestColumns = `
	r.id, r.user_id, r.type, r.start_date, r.end_date, r.days, r.status,
	r.attachment_url, r.notes, r.rejection_reason,
	r.approved_by, r.approved_at, r.rejected_by, r.rejected_at,
	r.created_at
`

func scanRequest(row pgx.Row) (timeoff.Request, error) {
	var req timeoff.Request
	err := row.Scan(
		&req.ID,
		&req.UserID,
		&req.Type,
		&req.StartDate,
		&req.EndDate,
		&req.Days,
		&req.Status,
		&req.AttachmentURL,
		&req.Notes,
		&req.RejectionReason,
		&req.ApprovedBy,
		&req.ApprovedAt,
		&req.RejectedBy,
		&req.RejectedAt,
		&req.CreatedAt,
	)
	return req, err
}

func (r *timeOffRequestRepositoryImpl) Create(ctx context.Context, request timeoff.Request) (timeoff.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_off_requests (
			id, user_id, type, start_date, end_date, days,
			status, attachment_url, notes, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, NOW()
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		request.UserID, request.Type, request.StartDate, request.EndDate, request.Days,
		request.Status, request.AttachmentURL, request.Notes,
	).Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		return timeoff.Request{}, err
	}

	return request, nil
}

func (r *timeOffRequestRepositoryImpl) GetByID(ctx context.Context, id string) (timeoff.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM time_off_requests r WHERE r.id = $1`

	req, err := scanRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeoff.Request{}, timeoff.ErrRequestNotFound
		}
		return timeoff.Request{}, err
	}
	return req, nil
}

func (r *timeOffRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]timeoff.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + requestColumns + `
		FROM time_off_requests r
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []timeoff.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *timeOffRequestRepositoryImpl) ListByHR(ctx context.Context, hrID string) ([]timeoff.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + requestColumns + `,
		       u.name AS employee_name,
		       u.email AS employee_email,
		       u.employee_code
		FROM time_off_requests r
		INNER JOIN users u ON r.user_id = u.id
		WHERE u.hr_id = $1 AND u.role = 'employee'
		ORDER BY r.created_at DESC
	`

	rows, err := q.Query(ctx, query, hrID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []timeoff.Request
	for rows.Next() {
		var req timeoff.Request
		err := rows.Scan(
			&req.ID,
			&req.UserID,
			&req.Type,
			&req.StartDate,
			&req.EndDate,
			&req.Days,
			&req.Status,
			&req.AttachmentURL,
			&req.Notes,
			&req.RejectionReason,
			&req.ApprovedBy,
			&req.ApprovedAt,
			&req.RejectedBy,
			&req.RejectedAt,
			&req.CreatedAt,
			&req.EmployeeName,
			&req.EmployeeEmail,
			&req.EmployeeCode,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// UpdateStatus is a conditional write: only a row still in the expected
// status is transitioned, which makes PENDING → terminal atomic under
// concurrent adjudications.
func (r *timeOffRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, expected timeoff.Status, update timeoff.StatusUpdate) (timeoff.Request, error) {
	q := GetQuerier(ctx, r.db)

	var query string
	switch update.Status {
	case timeoff.StatusApproved:
		query = `
			UPDATE time_off_requests
			SET status = $3, approved_by = $4, approved_at = $5
			WHERE id = $1 AND status = $2
			RETURNING ` + bareRequestColumns
	case timeoff.StatusRejected:
		query = `
			UPDATE time_off_requests
			SET status = $3, rejected_by = $4, rejected_at = $5, rejection_reason = $6
			WHERE id = $1 AND status = $2
			RETURNING ` + bareRequestColumns
	default:
		return timeoff.Request{}, timeoff.ErrAlreadyProcessed
	}

	args := []interface{}{id, expected, update.Status, update.ActorID, update.At}
	if update.Status == timeoff.StatusRejected {
		args = append(args, update.RejectionReason)
	}

	req, err := scanRequest(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the row is gone or the status guard failed; distinguish
			// so the caller can report a conflict vs a missing request.
			var exists bool
			if checkErr := q.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM time_off_requests WHERE id = $1)`, id,
			).Scan(&exists); checkErr != nil {
				return timeoff.Request{}, checkErr
			}
			if !exists {
				return timeoff.Request{}, timeoff.ErrRequestNotFound
			}
			return timeoff.Request{}, timeoff.ErrAlreadyProcessed
		}
		return timeoff.Request{}, err
	}
	return req, nil
}

// bareRequestColumns is requestColumns without the table alias, for RETURNING.
const bareRequestColumns = `
	id, user_id, type, start_date, end_date, days, status,
	attachment_url, notes, rejection_reason,
	approved_by, approved_at, rejected_by, rejected_at,
	created_at
`

func (r *timeOffRequestRepositoryImpl) SumApprovedDays(ctx context.Context, userID string, leaveType timeoff.Type) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(days), 0)
		FROM time_off_requests
		WHERE user_id = $1 AND type = $2 AND status = 'approved'
	`

	var total int
	if err := q.QueryRow(ctx, query, userID, leaveType).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
