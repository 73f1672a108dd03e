package user

import "time"

type EmployeeResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	EmployeeCode *string   `json:"employee_code,omitempty"`
	JobPosition  *string   `json:"job_position,omitempty"`
	Department   *string   `json:"department,omitempty"`
	PhoneNumber  *string   `json:"phone_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToEmployeeResponse(u User) EmployeeResponse {
	return EmployeeResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		AvatarURL:    u.AvatarURL,
		EmployeeCode: u.EmployeeCode,
		JobPosition:  u.JobPosition,
		Department:   u.Department,
		PhoneNumber:  u.PhoneNumber,
		CreatedAt:    u.CreatedAt,
	}
}
