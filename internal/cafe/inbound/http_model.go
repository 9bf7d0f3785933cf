package inbound

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/shandysiswandi/gocafe/internal/cafe/entity"
)

type Employee struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Position          string  `json:"position"`
	Wage              float64 `json:"wage"`
	IsCurrentEmployee int64   `json:"is_current_employee"`
}

type Timesheet struct {
	ID         int64   `json:"id"`
	Hours      float64 `json:"hours"`
	Rate       float64 `json:"rate"`
	Date       int64   `json:"date"`
	EmployeeID int64   `json:"employee_id"`
}

type Menu struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type MenuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Inventory   int64   `json:"inventory"`
	Price       float64 `json:"price"`
	MenuID      int64   `json:"menu_id"`
}

// status is embedded by single-row responses; the zero value means 200.
type status struct {
	code int
}

func (s status) StatusCode() int {
	if s.code == 0 {
		return http.StatusOK
	}
	return s.code
}

var created = status{code: http.StatusCreated}

type EmployeeResponse struct {
	status
	Employee Employee `json:"employee"`
}

type EmployeesResponse struct {
	Employees []Employee `json:"employees"`
}

type TimesheetResponse struct {
	status
	Timesheet Timesheet `json:"timesheet"`
}

type TimesheetsResponse struct {
	Timesheets []Timesheet `json:"timesheets"`
}

type MenuResponse struct {
	status
	Menu Menu `json:"menu"`
}

type MenusResponse struct {
	Menus []Menu `json:"menus"`
}

type MenuItemResponse struct {
	status
	MenuItem MenuItem `json:"menuItem"`
}

type MenuItemsResponse struct {
	MenuItems []MenuItem `json:"menuItems"`
}

type HealthResponse struct {
	status
	Status string `json:"status"`
}

type EmployeeRequest struct {
	Employee *struct {
		Name                string  `json:"name"`
		Position            string  `json:"position"`
		Wage                float64 `json:"wage"`
		IsCurrentlyEmployed *Flag   `json:"isCurrentlyEmployed"`
	} `json:"employee"`
}

type TimesheetRequest struct {
	Timesheet *struct {
		Hours      float64 `json:"hours"`
		Rate       float64 `json:"rate"`
		Date       int64   `json:"date"`
		EmployeeID int64   `json:"employeeId"`
	} `json:"timesheet"`
}

type MenuRequest struct {
	Menu *struct {
		Title string `json:"title"`
	} `json:"menu"`
}

type MenuItemRequest struct {
	MenuItem *struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Inventory   int64   `json:"inventory"`
		Price       float64 `json:"price"`
	} `json:"menuItem"`
}

var errInvalidFlag = errors.New("isCurrentlyEmployed must be a boolean or 0/1")

// Flag accepts either a JSON boolean or the integers 0 and 1.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	switch string(bytes.TrimSpace(b)) {
	case "true", "1":
		*f = true
	case "false", "0":
		*f = false
	default:
		return errInvalidFlag
	}
	return nil
}

func (f *Flag) ptr() *bool {
	if f == nil {
		return nil
	}
	v := bool(*f)
	return &v
}

func toEmployee(e entity.Employee) Employee {
	return Employee{
		ID:                e.ID,
		Name:              e.Name,
		Position:          e.Position,
		Wage:              e.Wage,
		IsCurrentEmployee: entity.Flag(e.IsCurrentEmployee),
	}
}

func toTimesheet(ts entity.Timesheet) Timesheet {
	return Timesheet(ts)
}

func toMenu(m entity.Menu) Menu {
	return Menu(m)
}

func toMenuItem(item entity.MenuItem) MenuItem {
	return MenuItem(item)
}

func mapAll[E, M any](rows []E, fn func(E) M) []M {
	out := make([]M, 0, len(rows))
	for _, row := range rows {
		out = append(out, fn(row))
	}
	return out
}
