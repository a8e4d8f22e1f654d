package handler

import (
	"math"
	"strconv"

	"github.com/deppfellow/employee-service/internal/model"
	"github.com/deppfellow/employee-service/internal/validation"
)

// EmployeeIDRequest addresses a single employee by path id.
type EmployeeIDRequest struct {
	ID string `param:"id" json:"-" validate:"objectid"`
}

func (r *EmployeeIDRequest) Validate() error {
	return validation.Struct(r)
}

// ListEmployeesRequest carries the optional list filters. Salary stays a
// string until Validate so a non-numeric value is a field error rather than
// a bind error.
type ListEmployeesRequest struct {
	Name   string `query:"name"`
	Salary string `query:"salary"`

	minSalary *float64
}

func (r *ListEmployeesRequest) Validate() error {
	if r.Salary == "" {
		return nil
	}

	salary, err := strconv.ParseFloat(r.Salary, 64)
	if err != nil || math.IsNaN(salary) || math.IsInf(salary, 0) {
		return validation.CustomValidationErrors{{Field: "salary", Message: "must be a number"}}
	}
	r.minSalary = &salary

	return nil
}

func (r *ListEmployeesRequest) Filter() model.EmployeeFilter {
	return model.EmployeeFilter{
		Name:      r.Name,
		MinSalary: r.minSalary,
	}
}

// CreateEmployeeRequest uses pointers so a missing field can be told apart
// from a zero value; `required` on a pointer only checks presence.
type CreateEmployeeRequest struct {
	Name     *string  `json:"name" validate:"required"`
	Position *string  `json:"position"`
	Salary   *float64 `json:"salary" validate:"required"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateEmployeeRequest) Employee() *model.Employee {
	emp := &model.Employee{
		Name:   *r.Name,
		Salary: *r.Salary,
	}
	if r.Position != nil {
		emp.Position = *r.Position
	}
	return emp
}

// UpdateEmployeeRequest is a partial update: absent or null fields are left
// untouched.
type UpdateEmployeeRequest struct {
	ID       string   `param:"id" json:"-" validate:"objectid"`
	Name     *string  `json:"name"`
	Position *string  `json:"position"`
	Salary   *float64 `json:"salary"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validation.Struct(r)
}

func (r *UpdateEmployeeRequest) Update() model.EmployeeUpdate {
	return model.EmployeeUpdate{
		Name:     r.Name,
		Position: r.Position,
		Salary:   r.Salary,
	}
}
