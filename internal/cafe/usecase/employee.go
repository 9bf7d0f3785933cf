package usecase

import (
	"context"

	"github.com/shandysiswandi/gocafe/internal/cafe/entity"
)

func (u *Usecase) Employees(ctx context.Context) ([]entity.Employee, error) {
	employees, err := u.store.ListActiveEmployees(ctx)
	if err != nil {
		return nil, normalizeErr(err)
	}
	return employees, nil
}

func (u *Usecase) Employee(ctx context.Context, id int64) (entity.Employee, error) {
	e, err := u.store.GetEmployee(ctx, id)
	if err != nil {
		return entity.Employee{}, mapStoreErr(err, "employee")
	}
	return e, nil
}

func (u *Usecase) CreateEmployee(ctx context.Context, in EmployeeInput) (entity.Employee, error) {
	if err := u.validate(in); err != nil {
		return entity.Employee{}, err
	}

	id, err := u.store.CreateEmployee(ctx, employeeFrom(0, in))
	if err != nil {
		return entity.Employee{}, normalizeErr(err)
	}

	return u.Employee(ctx, id)
}

func (u *Usecase) UpdateEmployee(ctx context.Context, id int64, in EmployeeInput) (entity.Employee, error) {
	if err := u.validate(in); err != nil {
		return entity.Employee{}, err
	}

	if err := u.store.UpdateEmployee(ctx, employeeFrom(id, in)); err != nil {
		return entity.Employee{}, mapStoreErr(err, "employee")
	}

	return u.Employee(ctx, id)
}

// DeleteEmployee marks the employee as no longer employed and returns the
// row as it now stands.
func (u *Usecase) DeleteEmployee(ctx context.Context, id int64) (entity.Employee, error) {
	if err := u.store.DeactivateEmployee(ctx, id); err != nil {
		return entity.Employee{}, mapStoreErr(err, "employee")
	}

	return u.Employee(ctx, id)
}

func employeeFrom(id int64, in EmployeeInput) entity.Employee {
	active := true
	if in.IsCurrentEmployee != nil {
		active = *in.IsCurrentEmployee
	}

	return entity.Employee{
		ID:                id,
		Name:              in.Name,
		Position:          in.Position,
		Wage:              in.Wage,
		IsCurrentEmployee: active,
	}
}
