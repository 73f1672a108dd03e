package attendance

// DayResponse is one attendance row with display-formatted times. Clock
// times are "HH:MM" in 24-hour format, hour fields are "HH:MM" durations.
type DayResponse struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"` // DD/MM/YYYY
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	WorkHours  *string `json:"work_hours"`
	ExtraHours *string `json:"extra_hours"`
	Status     Status  `json:"status"`
}

// MonthSummary aggregates a month of records. Present and half days both
// count toward DaysPresent.
type MonthSummary struct {
	DaysPresent      int `json:"days_present"`
	LeavesCount      int `json:"leaves_count"`
	TotalWorkingDays int `json:"total_working_days"`
}

type MyAttendanceResponse struct {
	Records []DayResponse `json:"attendance"`
	Summary MonthSummary  `json:"summary"`
}

// TeamDayResponse is one owned employee's row for a single date on the HR
// view. Employees without a record for the date appear with status absent.
type TeamDayResponse struct {
	EmployeeID   string  `json:"employee_id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	WorkHours    *string `json:"work_hours"`
	ExtraHours   *string `json:"extra_hours"`
	Status       Status  `json:"status"`
}

type TeamAttendanceResponse struct {
	Records []TeamDayResponse `json:"attendance"`
	Date    string            `json:"date"`
}
