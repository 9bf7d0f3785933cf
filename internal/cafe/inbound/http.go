package inbound

import (
	"context"

	"github.com/shandysiswandi/gocafe/internal/cafe/entity"
	"github.com/shandysiswandi/gocafe/internal/cafe/usecase"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgrouter"
)

type uc interface {
	Health(ctx context.Context) error

	Employees(ctx context.Context) ([]entity.Employee, error)
	Employee(ctx context.Context, id int64) (entity.Employee, error)
	CreateEmployee(ctx context.Context, in usecase.EmployeeInput) (entity.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, in usecase.EmployeeInput) (entity.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) (entity.Employee, error)

	Timesheets(ctx context.Context, employeeID int64) ([]entity.Timesheet, error)
	Timesheet(ctx context.Context, employeeID, id int64) (entity.Timesheet, error)
	CreateTimesheet(ctx context.Context, employeeID int64, in usecase.TimesheetInput) (entity.Timesheet, error)
	UpdateTimesheet(ctx context.Context, employeeID, id int64, in usecase.TimesheetInput) (entity.Timesheet, error)
	DeleteTimesheet(ctx context.Context, employeeID, id int64) error

	Menus(ctx context.Context) ([]entity.Menu, error)
	Menu(ctx context.Context, id int64) (entity.Menu, error)
	CreateMenu(ctx context.Context, in usecase.MenuInput) (entity.Menu, error)
	UpdateMenu(ctx context.Context, id int64, in usecase.MenuInput) (entity.Menu, error)
	DeleteMenu(ctx context.Context, id int64) error

	MenuItems(ctx context.Context, menuID int64) ([]entity.MenuItem, error)
	MenuItem(ctx context.Context, menuID, id int64) (entity.MenuItem, error)
	CreateMenuItem(ctx context.Context, menuID int64, in usecase.MenuItemInput) (entity.MenuItem, error)
	UpdateMenuItem(ctx context.Context, menuID, id int64, in usecase.MenuItemInput) (entity.MenuItem, error)
	DeleteMenuItem(ctx context.Context, menuID, id int64) error
}

// RegisterHTTPEndpoint mounts the cafe API. Every :id segment is resolved by
// a Param middleware before any handler below it runs, so handlers read the
// loaded rows from the context instead of querying again.
func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/health", end.Health)

	api := r.Group("/api")

	employees := api.Group("/employees")
	employees.GET("", end.ListEmployees)
	employees.POST("", end.CreateEmployee)

	employee := employees.Group("/:employeeId", r.Param("employeeId", end.loadEmployee))
	employee.GET("", end.GetEmployee)
	employee.PUT("", end.UpdateEmployee)
	employee.DELETE("", end.DeleteEmployee)

	timesheets := employee.Group("/timesheets")
	timesheets.GET("", end.ListTimesheets)
	timesheets.POST("", end.CreateTimesheet)

	timesheet := timesheets.Group("/:timesheetId", r.Param("timesheetId", end.loadTimesheet))
	timesheet.GET("", end.GetTimesheet)
	timesheet.PUT("", end.UpdateTimesheet)
	timesheet.DELETE("", end.DeleteTimesheet)

	menus := api.Group("/menus")
	menus.GET("", end.ListMenus)
	menus.POST("", end.CreateMenu)

	menu := menus.Group("/:menuId", r.Param("menuId", end.loadMenu))
	menu.GET("", end.GetMenu)
	menu.PUT("", end.UpdateMenu)
	menu.DELETE("", end.DeleteMenu)

	menuItems := menu.Group("/menu-items")
	menuItems.GET("", end.ListMenuItems)
	menuItems.POST("", end.CreateMenuItem)

	menuItem := menuItems.Group("/:menuItemId", r.Param("menuItemId", end.loadMenuItem))
	menuItem.GET("", end.GetMenuItem)
	menuItem.PUT("", end.UpdateMenuItem)
	menuItem.DELETE("", end.DeleteMenuItem)
}
