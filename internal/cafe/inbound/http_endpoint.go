package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/gocafe/internal/cafe/usecase"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgerror"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Health(ctx context.Context, _ *http.Request) (any, error) {
	if err := h.uc.Health(ctx); err != nil {
		slog.WarnContext(ctx, "health check failed", "error", err)
		return HealthResponse{status: status{code: http.StatusServiceUnavailable}, Status: "unavailable"}, nil
	}
	return HealthResponse{Status: "ok"}, nil
}

func (h *HTTPEndpoint) ListEmployees(ctx context.Context, _ *http.Request) (any, error) {
	employees, err := h.uc.Employees(ctx)
	if err != nil {
		return nil, err
	}
	return EmployeesResponse{Employees: mapAll(employees, toEmployee)}, nil
}

func (h *HTTPEndpoint) CreateEmployee(ctx context.Context, r *http.Request) (any, error) {
	in, err := decodeEmployee(r)
	if err != nil {
		return nil, err
	}

	e, err := h.uc.CreateEmployee(ctx, in)
	if err != nil {
		return nil, err
	}
	return EmployeeResponse{status: created, Employee: toEmployee(e)}, nil
}

func (h *HTTPEndpoint) GetEmployee(ctx context.Context, _ *http.Request) (any, error) {
	return EmployeeResponse{Employee: toEmployee(employeeFrom(ctx))}, nil
}

func (h *HTTPEndpoint) UpdateEmployee(ctx context.Context, r *http.Request) (any, error) {
	in, err := decodeEmployee(r)
	if err != nil {
		return nil, err
	}

	e, err := h.uc.UpdateEmployee(ctx, employeeFrom(ctx).ID, in)
	if err != nil {
		return nil, err
	}
	return EmployeeResponse{Employee: toEmployee(e)}, nil
}

func (h *HTTPEndpoint) DeleteEmployee(ctx context.Context, _ *http.Request) (any, error) {
	e, err := h.uc.DeleteEmployee(ctx, employeeFrom(ctx).ID)
	if err != nil {
		return nil, err
	}
	return EmployeeResponse{Employee: toEmployee(e)}, nil
}

func (h *HTTPEndpoint) ListTimesheets(ctx context.Context, _ *http.Request) (any, error) {
	timesheets, err := h.uc.Timesheets(ctx, employeeFrom(ctx).ID)
	if err != nil {
		return nil, err
	}
	return TimesheetsResponse{Timesheets: mapAll(timesheets, toTimesheet)}, nil
}

func (h *HTTPEndpoint) CreateTimesheet(ctx context.Context, r *http.Request) (any, error) {
	in, err := decodeTimesheet(r)
	if err != nil {
		return nil, err
	}

	ts, err := h.uc.CreateTimesheet(ctx, employeeFrom(ctx).ID, in)
	if err != nil {
		return nil, err
	}
	return TimesheetResponse{status: created, Timesheet: toTimesheet(ts)}, nil
}

func (h *HTTPEndpoint) GetTimesheet(ctx context.Context, _ *http.Request) (any, error) {
	return TimesheetResponse{Timesheet: toTimesheet(timesheetFrom(ctx))}, nil
}

func (h *HTTPEndpoint) UpdateTimesheet(ctx context.Context, r *http.Request) (any, error) {
	in, err := decodeTimesheet(r)
	if err != nil {
		return nil, err
	}

	ts, err := h.uc.UpdateTimesheet(ctx, employeeFrom(ctx).ID, timesheetFrom(ctx).ID, in)
	if err != nil {
		return nil, err
	}
	return TimesheetResponse{Timesheet: toTimesheet(ts)}, nil
}

func (h *HTTPEndpoint) DeleteTimesheet(ctx context.Context, _ *http.Request) (any, error) {
	return nil, h.uc.DeleteTimesheet(ctx, employeeFrom(ctx).ID, timesheetFrom(ctx).ID)
}

func (h *HTTPEndpoint) ListMenus(ctx context.Context, _ *http.Request) (any, error) {
	menus, err := h.uc.Menus(ctx)
	if err != nil {
		return nil, err
	}
	return MenusResponse{Menus: mapAll(menus, toMenu)}, nil
}

func (h *HTTPEndpoint) CreateMenu(ctx context.Context, r *http.Request) (any, error) {
	in, err := decodeMenu(r)
	if err != nil {
		return nil, err
	}

	m, err := h.uc.CreateMenu(ctx, in)
	if err != nil {
		return nil, err
	}
	return MenuResponse{status: created, Menu: toMenu(m)}, nil
}

func (h *HTTPEndpoint) GetMenu(ctx context.Context, _ *http.Request) (any, error) {
	return MenuResponse{Menu: toMenu(menuFrom(ctx))}, nil
}

func (h *HTTPEndpoint) UpdateMenu(ctx context.Context, r *http.Request) (any, error) {
	in, err := decodeMenu(r)
	if err != nil {
		return nil, err
	}

	m, err := h.uc.UpdateMenu(ctx, menuFrom(ctx).ID, in)
	if err != nil {
		return nil, err
	}
	return MenuResponse{Menu: toMenu(m)}, nil
}

func (h *HTTPEndpoint) DeleteMenu(ctx context.Context, _ *http.Request) (any, error) {
	return nil, h.uc.DeleteMenu(ctx, menuFrom(ctx).ID)
}

func (h *HTTPEndpoint) ListMenuItems(ctx context.Context, _ *http.Request) (any, error) {
	items, err := h.uc.MenuItems(ctx, menuFrom(ctx).ID)
	if err != nil {
		return nil, err
	}
	return MenuItemsResponse{MenuItems: mapAll(items, toMenuItem)}, nil
}

func (h *HTTPEndpoint) CreateMenuItem(ctx context.Context, r *http.Request) (any, error) {
	in, err := decodeMenuItem(r)
	if err != nil {
		return nil, err
	}

	item, err := h.uc.CreateMenuItem(ctx, menuFrom(ctx).ID, in)
	if err != nil {
		return nil, err
	}
	return MenuItemResponse{status: created, MenuItem: toMenuItem(item)}, nil
}

func (h *HTTPEndpoint) GetMenuItem(ctx context.Context, _ *http.Request) (any, error) {
	return MenuItemResponse{MenuItem: toMenuItem(menuItemFrom(ctx))}, nil
}

func (h *HTTPEndpoint) UpdateMenuItem(ctx context.Context, r *http.Request) (any, error) {
	in, err := decodeMenuItem(r)
	if err != nil {
		return nil, err
	}

	item, err := h.uc.UpdateMenuItem(ctx, menuFrom(ctx).ID, menuItemFrom(ctx).ID, in)
	if err != nil {
		return nil, err
	}
	return MenuItemResponse{MenuItem: toMenuItem(item)}, nil
}

func (h *HTTPEndpoint) DeleteMenuItem(ctx context.Context, _ *http.Request) (any, error) {
	return nil, h.uc.DeleteMenuItem(ctx, menuFrom(ctx).ID, menuItemFrom(ctx).ID)
}

// decodeBody reads a JSON body. An empty body decodes to the zero value so
// the caller reports the missing resource key rather than a syntax error.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	if errors.Is(err, errInvalidFlag) {
		return pkgerror.NewInvalidInput(err)
	}
	return pkgerror.NewInvalidFormat()
}

func missing(key string) error {
	return pkgerror.NewInvalidInput(errors.New(key + " is required"))
}

func decodeEmployee(r *http.Request) (usecase.EmployeeInput, error) {
	var req EmployeeRequest
	if err := decodeBody(r, &req); err != nil {
		return usecase.EmployeeInput{}, err
	}
	if req.Employee == nil {
		return usecase.EmployeeInput{}, missing("employee")
	}

	return usecase.EmployeeInput{
		Name:              req.Employee.Name,
		Position:          req.Employee.Position,
		Wage:              req.Employee.Wage,
		IsCurrentEmployee: req.Employee.IsCurrentlyEmployed.ptr(),
	}, nil
}

func decodeTimesheet(r *http.Request) (usecase.TimesheetInput, error) {
	var req TimesheetRequest
	if err := decodeBody(r, &req); err != nil {
		return usecase.TimesheetInput{}, err
	}
	if req.Timesheet == nil {
		return usecase.TimesheetInput{}, missing("timesheet")
	}

	return usecase.TimesheetInput{
		Hours:      req.Timesheet.Hours,
		Rate:       req.Timesheet.Rate,
		Date:       req.Timesheet.Date,
		EmployeeID: req.Timesheet.EmployeeID,
	}, nil
}

func decodeMenu(r *http.Request) (usecase.MenuInput, error) {
	var req MenuRequest
	if err := decodeBody(r, &req); err != nil {
		return usecase.MenuInput{}, err
	}
	if req.Menu == nil {
		return usecase.MenuInput{}, missing("menu")
	}

	return usecase.MenuInput{Title: req.Menu.Title}, nil
}

func decodeMenuItem(r *http.Request) (usecase.MenuItemInput, error) {
	var req MenuItemRequest
	if err := decodeBody(r, &req); err != nil {
		return usecase.MenuItemInput{}, err
	}
	if req.MenuItem == nil {
		return usecase.MenuItemInput{}, missing("menuItem")
	}

	return usecase.MenuItemInput{
		Name:        req.MenuItem.Name,
		Description: req.MenuItem.Description,
		Inventory:   req.MenuItem.Inventory,
		Price:       req.MenuItem.Price,
	}, nil
}
