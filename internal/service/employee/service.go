package employee

import (
	"context"
	"fmt"

	"github.com/peoplehub/hr-backend-go/internal/domain/auth"
	"github.com/peoplehub/hr-backend-go/internal/domain/user"
)

// EmployeeService serves the HR directory of owned employees.
type EmployeeService interface {
	ListEmployees(ctx context.Context, actorID string, search string) ([]user.EmployeeResponse, error)
}

type employeeServiceImpl struct {
	user.UserRepository
}

func NewEmployeeService(userRepository user.UserRepository) EmployeeService {
	return &employeeServiceImpl{UserRepository: userRepository}
}

func (s *employeeServiceImpl) ListEmployees(ctx context.Context, actorID string, search string) ([]user.EmployeeResponse, error) {
	actor, err := s.UserRepository.GetByID(ctx, actorID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve actor: %w", err)
	}
	if !actor.IsHR() {
		return nil, user.ErrHRAccessRequired
	}

	employees, err := s.UserRepository.ListByHR(ctx, actor.ID, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := make([]user.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		resp = append(resp, user.ToEmployeeResponse(emp))
	}
	return resp, nil
}
