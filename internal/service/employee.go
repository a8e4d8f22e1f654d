package service

import (
	"context"

	"github.com/deppfellow/employee-service/internal/errs"
	"github.com/deppfellow/employee-service/internal/model"
	"github.com/pkg/errors"
)

// EmployeeStore is the persistence the employee service depends on.
// *repository.EmployeeRepository implements it.
type EmployeeStore interface {
	Create(ctx context.Context, emp *model.Employee) (*model.Employee, error)
	FindAll(ctx context.Context, filter model.EmployeeFilter) ([]model.Employee, error)
	FindByID(ctx context.Context, id string) (*model.Employee, error)
	Update(ctx context.Context, id string, upd model.EmployeeUpdate) (*model.Employee, error)
	Delete(ctx context.Context, id string) error
}

type EmployeeService struct {
	store EmployeeStore
}

func NewEmployeeService(store EmployeeStore) *EmployeeService {
	return &EmployeeService{store: store}
}

func (s *EmployeeService) Create(ctx context.Context, emp *model.Employee) (*model.Employee, error) {
	return s.store.Create(ctx, emp)
}

func (s *EmployeeService) List(ctx context.Context, filter model.EmployeeFilter) ([]model.Employee, error) {
	return s.store.FindAll(ctx, filter)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*model.Employee, error) {
	emp, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return emp, nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, upd model.EmployeeUpdate) (*model.Employee, error) {
	emp, err := s.store.Update(ctx, id, upd)
	if err != nil {
		return nil, notFound(err)
	}
	return emp, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return notFound(s.store.Delete(ctx, id))
}

// notFound turns the store's not-found sentinel into the client-facing 404
// and leaves every other error to the global error handler.
func notFound(err error) error {
	if errors.Is(err, model.ErrEmployeeNotFound) {
		return errs.NewNotFoundError("Employee not found", nil)
	}
	return err
}
