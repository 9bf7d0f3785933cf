package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/shandysiswandi/gocafe/internal/cafe/entity"
	"github.com/shandysiswandi/gocafe/internal/cafe/store"
	"github.com/shandysiswandi/gocafe/internal/cafe/usecase"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgvalidator"
)

var errBoom = errors.New("boom")

// countingStore records writes so tests can assert that rejected input
// never reaches the store.
type countingStore struct {
	usecase.Store
	writes int
}

func (s *countingStore) CreateMenu(ctx context.Context, m entity.Menu) (int64, error) {
	s.writes++
	return s.Store.CreateMenu(ctx, m)
}

func (s *countingStore) CreateEmployee(ctx context.Context, e entity.Employee) (int64, error) {
	s.writes++
	return s.Store.CreateEmployee(ctx, e)
}

func (s *countingStore) UpdateTimesheet(ctx context.Context, ts entity.Timesheet) error {
	s.writes++
	return s.Store.UpdateTimesheet(ctx, ts)
}

// failingStore fails every call it overrides with errBoom.
type failingStore struct {
	usecase.Store
}

func (failingStore) ListMenus(context.Context) ([]entity.Menu, error) { return nil, errBoom }
func (failingStore) GetEmployee(context.Context, int64) (entity.Employee, error) {
	return entity.Employee{}, errBoom
}
func (failingStore) CountMenuItems(context.Context, int64) (int64, error) { return 0, errBoom }
func (failingStore) Ping(context.Context) error                           { return errBoom }

// deadlineStore reports that the store ran past the request deadline.
type deadlineStore struct {
	usecase.Store
}

func (deadlineStore) ListActiveEmployees(context.Context) ([]entity.Employee, error) {
	return nil, fmt.Errorf("list employees: %w", context.DeadlineExceeded)
}

func newUsecase(s usecase.Store) *usecase.Usecase {
	return usecase.New(usecase.Dependency{Store: s, Validator: pkgvalidator.New()})
}

func statusOf(t *testing.T, err error) int {
	t.Helper()

	var perr *pkgerror.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *pkgerror.Error, got %T (%v)", err, err)
	}
	return perr.StatusCode()
}

func TestCreateEmployeeDefaultsToActive(t *testing.T) {
	uc := newUsecase(store.NewInMemoryStore())

	e, err := uc.CreateEmployee(context.Background(), usecase.EmployeeInput{Name: "Ann", Position: "Chef", Wage: 20})
	if err != nil {
		t.Fatalf("CreateEmployee() err = %v", err)
	}
	if !e.IsCurrentEmployee || e.ID != 1 {
		t.Fatalf("unexpected employee %+v", e)
	}

	inactive := false
	e, err = uc.CreateEmployee(context.Background(), usecase.EmployeeInput{
		Name: "Bob", Position: "Waiter", Wage: 10, IsCurrentEmployee: &inactive,
	})
	if err != nil {
		t.Fatalf("CreateEmployee() err = %v", err)
	}
	if e.IsCurrentEmployee || e.ID != 2 {
		t.Fatalf("unexpected employee %+v", e)
	}
}

func TestInvalidInputNeverWrites(t *testing.T) {
	ctx := context.Background()
	s := &countingStore{Store: store.NewInMemoryStore()}
	uc := newUsecase(s)

	_, err := uc.CreateMenu(ctx, usecase.MenuInput{})
	if statusOf(t, err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}

	_, err = uc.CreateEmployee(ctx, usecase.EmployeeInput{Name: "Ann", Position: "Chef"})
	if statusOf(t, err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}

	_, err = uc.UpdateTimesheet(ctx, 1, 1, usecase.TimesheetInput{Hours: 1, Rate: 1})
	if statusOf(t, err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}

	if s.writes != 0 {
		t.Fatalf("expected no writes, got %d", s.writes)
	}
}

func TestDeleteEmployeeKeepsRow(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(store.NewInMemoryStore())

	e, err := uc.CreateEmployee(ctx, usecase.EmployeeInput{Name: "Ann", Position: "Chef", Wage: 20})
	if err != nil {
		t.Fatalf("CreateEmployee() err = %v", err)
	}

	deleted, err := uc.DeleteEmployee(ctx, e.ID)
	if err != nil {
		t.Fatalf("DeleteEmployee() err = %v", err)
	}
	if deleted.IsCurrentEmployee {
		t.Fatalf("expected inactive employee")
	}

	list, err := uc.Employees(ctx)
	if err != nil {
		t.Fatalf("Employees() err = %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected inactive employee to be hidden, got %d", len(list))
	}

	if _, err := uc.Employee(ctx, e.ID); err != nil {
		t.Fatalf("Employee() err = %v", err)
	}
}

func TestDeleteMenuGuardsItems(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(store.NewInMemoryStore())

	m, _ := uc.CreateMenu(ctx, usecase.MenuInput{Title: "Lunch"})
	item, err := uc.CreateMenuItem(ctx, m.ID, usecase.MenuItemInput{Name: "Soup", Inventory: 1, Price: 2})
	if err != nil {
		t.Fatalf("CreateMenuItem() err = %v", err)
	}

	err = uc.DeleteMenu(ctx, m.ID)
	var perr *pkgerror.Error
	if !errors.As(err, &perr) || perr.Code() != pkgerror.CodeReferenced {
		t.Fatalf("expected referenced error, got %v", err)
	}

	if err := uc.DeleteMenuItem(ctx, m.ID, item.ID); err != nil {
		t.Fatalf("DeleteMenuItem() err = %v", err)
	}
	if err := uc.DeleteMenu(ctx, m.ID); err != nil {
		t.Fatalf("DeleteMenu() err = %v", err)
	}
	if _, err := uc.Menu(ctx, m.ID); statusOf(t, err) != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %v", err)
	}
}

func TestChildLookupsAreParentScoped(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(store.NewInMemoryStore())

	m1, _ := uc.CreateMenu(ctx, usecase.MenuInput{Title: "Lunch"})
	m2, _ := uc.CreateMenu(ctx, usecase.MenuInput{Title: "Dinner"})
	item, _ := uc.CreateMenuItem(ctx, m1.ID, usecase.MenuItemInput{Name: "Soup", Inventory: 1, Price: 2})

	if _, err := uc.MenuItem(ctx, m2.ID, item.ID); statusOf(t, err) != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign menu, got %v", err)
	}
	if _, err := uc.UpdateMenuItem(ctx, m1.ID, 99, usecase.MenuItemInput{Name: "x", Inventory: 1, Price: 1}); statusOf(t, err) != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown item, got %v", err)
	}

	e1, _ := uc.CreateEmployee(ctx, usecase.EmployeeInput{Name: "Ann", Position: "Chef", Wage: 1})
	e2, _ := uc.CreateEmployee(ctx, usecase.EmployeeInput{Name: "Bob", Position: "Cook", Wage: 1})
	ts, err := uc.CreateTimesheet(ctx, e1.ID, usecase.TimesheetInput{Hours: 1, Rate: 1, Date: 1})
	if err != nil {
		t.Fatalf("CreateTimesheet() err = %v", err)
	}
	if _, err := uc.Timesheet(ctx, e2.ID, ts.ID); statusOf(t, err) != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign employee, got %v", err)
	}

	if err := uc.DeleteMenuItem(ctx, m2.ID, item.ID); statusOf(t, err) != http.StatusNotFound {
		t.Fatalf("expected 404 deleting through foreign menu, got %v", err)
	}
	if _, err := uc.MenuItem(ctx, m1.ID, item.ID); err != nil {
		t.Fatalf("menu item should survive a foreign delete, got %v", err)
	}
	if err := uc.DeleteTimesheet(ctx, e2.ID, ts.ID); statusOf(t, err) != http.StatusNotFound {
		t.Fatalf("expected 404 deleting through foreign employee, got %v", err)
	}
	if err := uc.DeleteTimesheet(ctx, e1.ID, ts.ID); err != nil {
		t.Fatalf("DeleteTimesheet() err = %v", err)
	}
}

func TestUpdateTimesheetReassignment(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(store.NewInMemoryStore())

	e1, _ := uc.CreateEmployee(ctx, usecase.EmployeeInput{Name: "Ann", Position: "Chef", Wage: 1})
	e2, _ := uc.CreateEmployee(ctx, usecase.EmployeeInput{Name: "Bob", Position: "Cook", Wage: 1})
	ts, _ := uc.CreateTimesheet(ctx, e1.ID, usecase.TimesheetInput{Hours: 1, Rate: 1, Date: 1})

	_, err := uc.UpdateTimesheet(ctx, e1.ID, ts.ID, usecase.TimesheetInput{Hours: 2, Rate: 2, Date: 2, EmployeeID: 77})
	if statusOf(t, err) != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown target employee, got %v", err)
	}

	moved, err := uc.UpdateTimesheet(ctx, e1.ID, ts.ID, usecase.TimesheetInput{Hours: 2, Rate: 2, Date: 2, EmployeeID: e2.ID})
	if err != nil {
		t.Fatalf("UpdateTimesheet() err = %v", err)
	}
	if moved.EmployeeID != e2.ID || moved.Hours != 2 {
		t.Fatalf("unexpected timesheet %+v", moved)
	}
}

func TestStoreFailuresBecomeServerErrors(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(failingStore{Store: store.NewInMemoryStore()})

	if _, err := uc.Menus(ctx); statusOf(t, err) != http.StatusInternalServerError || !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped 500, got %v", err)
	}
	if _, err := uc.Employee(ctx, 1); statusOf(t, err) != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %v", err)
	}
	if err := uc.DeleteMenu(ctx, 1); statusOf(t, err) != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %v", err)
	}
	if err := uc.Health(ctx); !errors.Is(err, errBoom) {
		t.Fatalf("expected health to report store failure, got %v", err)
	}
}

func TestStoreDeadlineIsUnavailable(t *testing.T) {
	uc := newUsecase(deadlineStore{Store: store.NewInMemoryStore()})

	_, err := uc.Employees(context.Background())
	if statusOf(t, err) != http.StatusServiceUnavailable || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected wrapped 503, got %v", err)
	}
}

func TestNewWithoutValidatorStillValidates(t *testing.T) {
	counting := &countingStore{Store: store.NewInMemoryStore()}
	uc := usecase.New(usecase.Dependency{Store: counting})

	if _, err := uc.CreateMenu(context.Background(), usecase.MenuInput{}); statusOf(t, err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if counting.writes != 0 {
		t.Fatalf("expected no writes, got %d", counting.writes)
	}
}
