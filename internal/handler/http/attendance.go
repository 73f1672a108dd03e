package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/peoplehub/hr-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hr-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	GetTeamAttendance(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// GetMyAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if v := r.URL.Query().Get("month"); v != "" {
		month, err = strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return
		}
	}
	if v := r.URL.Query().Get("year"); v != "" {
		year, err = strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
	}

	resp, err := h.attendanceService.MyAttendance(r.Context(), actor, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetTeamAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetTeamAttendance(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	date := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		date, err = time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
	}
	search := r.URL.Query().Get("search")

	resp, err := h.attendanceService.TeamAttendance(r.Context(), actor, date, search)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
