// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/deppfellow/employee-service/internal/repository"
	"github.com/deppfellow/employee-service/internal/server"
)

type Services struct {
	Employees *EmployeeService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Employees: NewEmployeeService(repos.Employees),
	}, nil
}
