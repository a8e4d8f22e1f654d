package repository

import (
	"github.com/deppfellow/employee-service/internal/database"
	"github.com/deppfellow/employee-service/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Employees *EmployeeRepository
}

// NewRepositories constructs the repository container from the shared
// database handle on s.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Employees: NewEmployeeRepository(s.DB.Collection(database.EmployeesCollection), s.Metrics),
	}
}
