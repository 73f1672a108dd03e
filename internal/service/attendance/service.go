package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/peoplehub/hr-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hr-backend-go/internal/domain/auth"
	"github.com/peoplehub/hr-backend-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendance.RecordRepository
	user.UserRepository
}

func NewAttendanceService(recordRepository attendance.RecordRepository, userRepository user.UserRepository) attendance.Service {
	return &AttendanceServiceImpl{
		RecordRepository: recordRepository,
		UserRepository:   userRepository,
	}
}

// MyAttendance implements attendance.Service.
func (s *AttendanceServiceImpl) MyAttendance(ctx context.Context, actorID string, month int, year int) (attendance.MyAttendanceResponse, error) {
	if month < 1 || month > 12 {
		return attendance.MyAttendanceResponse{}, attendance.ErrInvalidMonth
	}

	actor, err := s.UserRepository.GetByID(ctx, actorID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return attendance.MyAttendanceResponse{}, auth.ErrUserNotFound
		}
		return attendance.MyAttendanceResponse{}, fmt.Errorf("failed to resolve actor: %w", err)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := s.RecordRepository.ListByUserAndRange(ctx, actor.ID, from, to)
	if err != nil {
		return attendance.MyAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	resp := attendance.MyAttendanceResponse{
		Records: make([]attendance.DayResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, toDayResponse(rec))

		switch rec.Status {
		case attendance.StatusPresent, attendance.StatusHalfDay:
			resp.Summary.DaysPresent++
		case attendance.StatusLeave:
			resp.Summary.LeavesCount++
		}
		resp.Summary.TotalWorkingDays++
	}

	return resp, nil
}

// TeamAttendance implements attendance.Service.
func (s *AttendanceServiceImpl) TeamAttendance(ctx context.Context, actorID string, date time.Time, search string) (attendance.TeamAttendanceResponse, error) {
	actor, err := s.UserRepository.GetByID(ctx, actorID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return attendance.TeamAttendanceResponse{}, auth.ErrUserNotFound
		}
		return attendance.TeamAttendanceResponse{}, fmt.Errorf("failed to resolve actor: %w", err)
	}
	if !actor.IsHR() {
		return attendance.TeamAttendanceResponse{}, user.ErrHRAccessRequired
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	days, err := s.RecordRepository.ListByHRAndDate(ctx, actor.ID, day, search)
	if err != nil {
		return attendance.TeamAttendanceResponse{}, fmt.Errorf("failed to list team attendance: %w", err)
	}

	resp := attendance.TeamAttendanceResponse{
		Records: make([]attendance.TeamDayResponse, 0, len(days)),
		Date:    day.Format("2006-01-02"),
	}
	for _, d := range days {
		row := attendance.TeamDayResponse{
			EmployeeID:   d.UserID,
			Name:         d.Name,
			Email:        d.Email,
			EmployeeCode: d.EmployeeCode,
			AvatarURL:    d.AvatarURL,
			Status:       attendance.StatusAbsent,
		}
		if d.Record != nil {
			row.CheckIn = formatClock(d.Record.CheckIn)
			row.CheckOut = formatClock(d.Record.CheckOut)
			row.WorkHours = formatHours(d.Record.WorkHours)
			row.ExtraHours = formatHours(d.Record.ExtraHours)
			row.Status = d.Record.Status
		}
		resp.Records = append(resp.Records, row)
	}

	return resp, nil
}

func toDayResponse(rec attendance.Record) attendance.DayResponse {
	return attendance.DayResponse{
		ID:         rec.ID,
		Date:       rec.Date.Format("02/01/2006"),
		CheckIn:    formatClock(rec.CheckIn),
		CheckOut:   formatClock(rec.CheckOut),
		WorkHours:  formatHours(rec.WorkHours),
		ExtraHours: formatHours(rec.ExtraHours),
		Status:     rec.Status,
	}
}

// formatClock renders a timestamp as "HH:MM" in 24-hour format.
func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("15:04")
	return &formatted
}

// formatHours renders decimal hours as an "HH:MM" duration, e.g. 7.5 -> "07:30".
func formatHours(hours *decimal.Decimal) *string {
	if hours == nil {
		return nil
	}
	total := hours.InexactFloat64()
	h := int(total)
	m := int((total - float64(h)) * 60)
	formatted := fmt.Sprintf("%02d:%02d", h, m)
	return &formatted
}
