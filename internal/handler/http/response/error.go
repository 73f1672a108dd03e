package response

import (
	"errors"
	"net/http"

	"github.com/peoplehub/hr-backend-go/internal/domain/attendance"
	"github.com/peoplehub/hr-backend-go/internal/domain/auth"
	"github.com/peoplehub/hr-backend-go/internal/domain/timeoff"
	"github.com/peoplehub/hr-backend-go/internal/domain/user"
	"github.com/peoplehub/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		Unauthorized(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, "Only HR can perform this action")
	case errors.Is(err, user.ErrEmployeeNotOwned):
		Forbidden(w, "Employee does not belong to this HR")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Time off domain errors
	case errors.Is(err, timeoff.ErrRequestNotFound):
		NotFound(w, "Time off request not found")
	case errors.Is(err, timeoff.ErrAlreadyProcessed):
		Conflict(w, "Time off request already processed")
	case errors.Is(err, timeoff.ErrNoAllocation):
		BadRequest(w, "Leave type has no allocation", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidMonth):
		BadRequest(w, "Month must be between 1 and 12", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
