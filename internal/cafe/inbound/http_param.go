package inbound

import (
	"context"
	"strconv"

	"github.com/shandysiswandi/gocafe/internal/cafe/entity"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgerror"
)

type ctxKey int

const (
	employeeKey ctxKey = iota
	timesheetKey
	menuKey
	menuItemKey
)

// parseID treats anything that is not a positive integer as an unknown row.
func parseID(value, what string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, pkgerror.NewNotFound(what + " not found")
	}
	return id, nil
}

func (h *HTTPEndpoint) loadEmployee(ctx context.Context, value string) (context.Context, error) {
	id, err := parseID(value, "employee")
	if err != nil {
		return ctx, err
	}
	e, err := h.uc.Employee(ctx, id)
	if err != nil {
		return ctx, err
	}
	return context.WithValue(ctx, employeeKey, e), nil
}

func (h *HTTPEndpoint) loadTimesheet(ctx context.Context, value string) (context.Context, error) {
	id, err := parseID(value, "timesheet")
	if err != nil {
		return ctx, err
	}
	ts, err := h.uc.Timesheet(ctx, employeeFrom(ctx).ID, id)
	if err != nil {
		return ctx, err
	}
	return context.WithValue(ctx, timesheetKey, ts), nil
}

func (h *HTTPEndpoint) loadMenu(ctx context.Context, value string) (context.Context, error) {
	id, err := parseID(value, "menu")
	if err != nil {
		return ctx, err
	}
	m, err := h.uc.Menu(ctx, id)
	if err != nil {
		return ctx, err
	}
	return context.WithValue(ctx, menuKey, m), nil
}

func (h *HTTPEndpoint) loadMenuItem(ctx context.Context, value string) (context.Context, error) {
	id, err := parseID(value, "menu item")
	if err != nil {
		return ctx, err
	}
	item, err := h.uc.MenuItem(ctx, menuFrom(ctx).ID, id)
	if err != nil {
		return ctx, err
	}
	return context.WithValue(ctx, menuItemKey, item), nil
}

func employeeFrom(ctx context.Context) entity.Employee {
	e, _ := ctx.Value(employeeKey).(entity.Employee)
	return e
}

func timesheetFrom(ctx context.Context) entity.Timesheet {
	ts, _ := ctx.Value(timesheetKey).(entity.Timesheet)
	return ts
}

func menuFrom(ctx context.Context) entity.Menu {
	m, _ := ctx.Value(menuKey).(entity.Menu)
	return m
}

func menuItemFrom(ctx context.Context) entity.MenuItem {
	item, _ := ctx.Value(menuItemKey).(entity.MenuItem)
	return item
}
