package http

import (
	"net/http"

	"github.com/peoplehub/hr-backend-go/internal/handler/http/response"
	"github.com/peoplehub/hr-backend-go/internal/service/employee"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	search := r.URL.Query().Get("search")

	employees, err := h.employeeService.ListEmployees(r.Context(), actor, search)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}
