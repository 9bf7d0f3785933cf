package usecase

import (
	"context"
	"errors"

	"github.com/shandysiswandi/gocafe/internal/cafe/entity"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgvalidator"
)

// Store persists cafe rows. Implementations return pkgerror.ErrNotFound when
// the addressed row does not exist, including from updates and deletes.
type Store interface {
	ListActiveEmployees(ctx context.Context) ([]entity.Employee, error)
	CreateEmployee(ctx context.Context, e entity.Employee) (int64, error)
	GetEmployee(ctx context.Context, id int64) (entity.Employee, error)
	UpdateEmployee(ctx context.Context, e entity.Employee) error
	DeactivateEmployee(ctx context.Context, id int64) error

	ListTimesheets(ctx context.Context, employeeID int64) ([]entity.Timesheet, error)
	CreateTimesheet(ctx context.Context, ts entity.Timesheet) (int64, error)
	GetTimesheet(ctx context.Context, id int64) (entity.Timesheet, error)
	UpdateTimesheet(ctx context.Context, ts entity.Timesheet) error
	DeleteTimesheet(ctx context.Context, id int64) error

	ListMenus(ctx context.Context) ([]entity.Menu, error)
	CreateMenu(ctx context.Context, m entity.Menu) (int64, error)
	GetMenu(ctx context.Context, id int64) (entity.Menu, error)
	UpdateMenu(ctx context.Context, m entity.Menu) error
	DeleteMenu(ctx context.Context, id int64) error

	CountMenuItems(ctx context.Context, menuID int64) (int64, error)
	ListMenuItems(ctx context.Context, menuID int64) ([]entity.MenuItem, error)
	CreateMenuItem(ctx context.Context, item entity.MenuItem) (int64, error)
	GetMenuItem(ctx context.Context, id int64) (entity.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item entity.MenuItem) error
	DeleteMenuItem(ctx context.Context, id int64) error

	Ping(ctx context.Context) error
}

type Validator interface {
	Validate(s any) error
}

type Dependency struct {
	Store     Store
	Validator Validator
}

// Usecase implements the cafe operations. Child operations (timesheets and
// menu items) expect the caller to have resolved the parent already; they
// only check that the child belongs to it.
type Usecase struct {
	store     Store
	validator Validator
}

// New builds the usecase. A nil Validator falls back to the JSON-tag aware
// pkgvalidator so required fields are always checked before a write.
func New(dep Dependency) *Usecase {
	v := dep.Validator
	if v == nil {
		v = pkgvalidator.New()
	}

	return &Usecase{
		store:     dep.Store,
		validator: v,
	}
}

// Health reports whether the store answers.
func (u *Usecase) Health(ctx context.Context) error {
	if err := u.store.Ping(ctx); err != nil {
		return pkgerror.NewServer(err)
	}
	return nil
}

func (u *Usecase) validate(in any) error {
	return u.validator.Validate(in)
}

func mapStoreErr(err error, what string) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewNotFound(what + " not found")
	}
	return normalizeErr(err)
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return pkgerror.NewUnavailable(err)
	}
	return pkgerror.NewServer(err)
}
