package usecase

// EmployeeInput carries the writable employee fields. A nil
// IsCurrentEmployee means active.
type EmployeeInput struct {
	Name              string  `json:"name" validate:"required"`
	Position          string  `json:"position" validate:"required"`
	Wage              float64 `json:"wage" validate:"required"`
	IsCurrentEmployee *bool   `json:"isCurrentlyEmployed"`
}

// TimesheetInput carries the writable timesheet fields. EmployeeID is only
// read on update, where a non-zero value moves the timesheet to that
// employee.
type TimesheetInput struct {
	Hours      float64 `json:"hours" validate:"required"`
	Rate       float64 `json:"rate" validate:"required"`
	Date       int64   `json:"date" validate:"required"`
	EmployeeID int64   `json:"employeeId"`
}

type MenuInput struct {
	Title string `json:"title" validate:"required"`
}

type MenuItemInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Inventory   int64   `json:"inventory" validate:"required"`
	Price       float64 `json:"price" validate:"required"`
}
