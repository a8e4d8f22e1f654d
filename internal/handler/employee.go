package handler

import (
	"github.com/deppfellow/employee-service/internal/model"
	"github.com/deppfellow/employee-service/internal/server"
	"github.com/deppfellow/employee-service/internal/service"
	"github.com/labstack/echo/v4"
)

type EmployeeHandler struct {
	Handler
	employees *service.EmployeeService
}

func NewEmployeeHandler(s *server.Server, employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		Handler:   NewHandler(s),
		employees: employees,
	}
}

// MessageResponse is the body of endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

func (h *EmployeeHandler) ListEmployees(c echo.Context, req *ListEmployeesRequest) ([]model.Employee, error) {
	return h.employees.List(c.Request().Context(), req.Filter())
}

func (h *EmployeeHandler) CreateEmployee(c echo.Context, req *CreateEmployeeRequest) (*model.Employee, error) {
	return h.employees.Create(c.Request().Context(), req.Employee())
}

func (h *EmployeeHandler) GetEmployee(c echo.Context, req *EmployeeIDRequest) (*model.Employee, error) {
	return h.employees.Get(c.Request().Context(), req.ID)
}

func (h *EmployeeHandler) UpdateEmployee(c echo.Context, req *UpdateEmployeeRequest) (*model.Employee, error) {
	return h.employees.Update(c.Request().Context(), req.ID, req.Update())
}

func (h *EmployeeHandler) DeleteEmployee(c echo.Context, req *EmployeeIDRequest) (*MessageResponse, error) {
	if err := h.employees.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Employee deleted"}, nil
}
