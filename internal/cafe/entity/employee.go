package entity

// Employee is a member of staff. Employees are never removed; deleting one
// clears IsCurrentEmployee.
type Employee struct {
	ID                int64
	Name              string
	Position          string
	Wage              float64
	IsCurrentEmployee bool
}

// Timesheet records hours worked by an employee on a given date.
type Timesheet struct {
	ID         int64
	Hours      float64
	Rate       float64
	Date       int64
	EmployeeID int64
}
