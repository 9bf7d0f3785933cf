package usecase

import (
	"context"
	"errors"

	"github.com/shandysiswandi/gocafe/internal/cafe/entity"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgerror"
)

func (u *Usecase) Timesheets(ctx context.Context, employeeID int64) ([]entity.Timesheet, error) {
	timesheets, err := u.store.ListTimesheets(ctx, employeeID)
	if err != nil {
		return nil, normalizeErr(err)
	}
	return timesheets, nil
}

// Timesheet returns the timesheet only when it belongs to employeeID.
func (u *Usecase) Timesheet(ctx context.Context, employeeID, id int64) (entity.Timesheet, error) {
	ts, err := u.store.GetTimesheet(ctx, id)
	if err != nil {
		return entity.Timesheet{}, mapStoreErr(err, "timesheet")
	}
	if ts.EmployeeID != employeeID {
		return entity.Timesheet{}, pkgerror.NewNotFound("timesheet not found")
	}
	return ts, nil
}

func (u *Usecase) CreateTimesheet(ctx context.Context, employeeID int64, in TimesheetInput) (entity.Timesheet, error) {
	if err := u.validate(in); err != nil {
		return entity.Timesheet{}, err
	}

	id, err := u.store.CreateTimesheet(ctx, entity.Timesheet{
		Hours:      in.Hours,
		Rate:       in.Rate,
		Date:       in.Date,
		EmployeeID: employeeID,
	})
	if err != nil {
		return entity.Timesheet{}, normalizeErr(err)
	}

	return u.Timesheet(ctx, employeeID, id)
}

// UpdateTimesheet rewrites the timesheet. When in.EmployeeID names another
// employee the timesheet moves there; that employee has to exist.
func (u *Usecase) UpdateTimesheet(ctx context.Context, employeeID, id int64, in TimesheetInput) (entity.Timesheet, error) {
	if err := u.validate(in); err != nil {
		return entity.Timesheet{}, err
	}

	owner := employeeID
	if in.EmployeeID != 0 && in.EmployeeID != employeeID {
		if _, err := u.store.GetEmployee(ctx, in.EmployeeID); err != nil {
			if errors.Is(err, pkgerror.ErrNotFound) {
				return entity.Timesheet{}, pkgerror.NewInvalidInput(errors.New("employeeId does not reference an employee"))
			}
			return entity.Timesheet{}, normalizeErr(err)
		}
		owner = in.EmployeeID
	}

	if err := u.store.UpdateTimesheet(ctx, entity.Timesheet{
		ID:         id,
		Hours:      in.Hours,
		Rate:       in.Rate,
		Date:       in.Date,
		EmployeeID: owner,
	}); err != nil {
		return entity.Timesheet{}, mapStoreErr(err, "timesheet")
	}

	return u.Timesheet(ctx, owner, id)
}

func (u *Usecase) DeleteTimesheet(ctx context.Context, employeeID, id int64) error {
	if _, err := u.Timesheet(ctx, employeeID, id); err != nil {
		return err
	}

	if err := u.store.DeleteTimesheet(ctx, id); err != nil {
		return mapStoreErr(err, "timesheet")
	}
	return nil
}
