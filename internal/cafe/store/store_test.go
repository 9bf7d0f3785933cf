package store_test

import (
	"context"
	"testing"

	"github.com/shandysiswandi/gocafe/internal/cafe/entity"
	"github.com/shandysiswandi/gocafe/internal/cafe/usecase"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises behavior every usecase.Store must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) usecase.Store) {
	t.Helper()

	t.Run("employees", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		first, err := s.CreateEmployee(ctx, entity.Employee{Name: "Ann", Position: "Chef", Wage: 20, IsCurrentEmployee: true})
		require.NoError(t, err)
		second, err := s.CreateEmployee(ctx, entity.Employee{Name: "Bob", Position: "Waiter", Wage: 12, IsCurrentEmployee: true})
		require.NoError(t, err)
		assert.Greater(t, second, first)

		require.NoError(t, s.UpdateEmployee(ctx, entity.Employee{ID: first, Name: "Ann", Position: "Head Chef", Wage: 25, IsCurrentEmployee: true}))
		got, err := s.GetEmployee(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, "Head Chef", got.Position)
		assert.InDelta(t, 25.0, got.Wage, 0.001)

		require.NoError(t, s.DeactivateEmployee(ctx, second))
		got, err = s.GetEmployee(ctx, second)
		require.NoError(t, err)
		assert.False(t, got.IsCurrentEmployee)

		active, err := s.ListActiveEmployees(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, first, active[0].ID)

		_, err = s.GetEmployee(ctx, 999)
		require.ErrorIs(t, err, pkgerror.ErrNotFound)
		require.ErrorIs(t, s.UpdateEmployee(ctx, entity.Employee{ID: 999, Name: "x", Position: "y", Wage: 1}), pkgerror.ErrNotFound)
		require.ErrorIs(t, s.DeactivateEmployee(ctx, 999), pkgerror.ErrNotFound)
	})

	t.Run("timesheets", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		ann, err := s.CreateEmployee(ctx, entity.Employee{Name: "Ann", Position: "Chef", Wage: 20, IsCurrentEmployee: true})
		require.NoError(t, err)
		bob, err := s.CreateEmployee(ctx, entity.Employee{Name: "Bob", Position: "Waiter", Wage: 12, IsCurrentEmployee: true})
		require.NoError(t, err)

		empty, err := s.ListTimesheets(ctx, ann)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)

		id, err := s.CreateTimesheet(ctx, entity.Timesheet{Hours: 8, Rate: 20, Date: 1700000000000, EmployeeID: ann})
		require.NoError(t, err)

		require.NoError(t, s.UpdateTimesheet(ctx, entity.Timesheet{ID: id, Hours: 6, Rate: 21, Date: 1700000000001, EmployeeID: bob}))
		got, err := s.GetTimesheet(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.Timesheet{ID: id, Hours: 6, Rate: 21, Date: 1700000000001, EmployeeID: bob}, got)

		list, err := s.ListTimesheets(ctx, bob)
		require.NoError(t, err)
		require.Len(t, list, 1)

		require.NoError(t, s.DeleteTimesheet(ctx, id))
		_, err = s.GetTimesheet(ctx, id)
		require.ErrorIs(t, err, pkgerror.ErrNotFound)
		require.ErrorIs(t, s.DeleteTimesheet(ctx, id), pkgerror.ErrNotFound)
	})

	t.Run("menus and items", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		menuID, err := s.CreateMenu(ctx, entity.Menu{Title: "Lunch"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), menuID)

		itemID, err := s.CreateMenuItem(ctx, entity.MenuItem{Name: "Soup", Inventory: 10, Price: 5, MenuID: menuID})
		require.NoError(t, err)

		n, err := s.CountMenuItems(ctx, menuID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		item, err := s.GetMenuItem(ctx, itemID)
		require.NoError(t, err)
		assert.Nil(t, item.Description)

		hearty := "hearty"
		require.NoError(t, s.UpdateMenuItem(ctx, entity.MenuItem{
			ID: itemID, Name: "Stew", Description: &hearty, Inventory: 3, Price: 7.5, MenuID: menuID,
		}))
		item, err = s.GetMenuItem(ctx, itemID)
		require.NoError(t, err)
		require.NotNil(t, item.Description)
		assert.Equal(t, "hearty", *item.Description)
		assert.InDelta(t, 7.5, item.Price, 0.001)

		items, err := s.ListMenuItems(ctx, menuID)
		require.NoError(t, err)
		require.Len(t, items, 1)

		require.NoError(t, s.DeleteMenuItem(ctx, itemID))
		n, err = s.CountMenuItems(ctx, menuID)
		require.NoError(t, err)
		assert.Zero(t, n)

		require.NoError(t, s.UpdateMenu(ctx, entity.Menu{ID: menuID, Title: "Dinner"}))
		menus, err := s.ListMenus(ctx)
		require.NoError(t, err)
		assert.Equal(t, []entity.Menu{{ID: menuID, Title: "Dinner"}}, menus)

		require.NoError(t, s.DeleteMenu(ctx, menuID))
		_, err = s.GetMenu(ctx, menuID)
		require.ErrorIs(t, err, pkgerror.ErrNotFound)

		next, err := s.CreateMenu(ctx, entity.Menu{Title: "Brunch"})
		require.NoError(t, err)
		assert.Greater(t, next, menuID, "ids are not reused after delete")
	})

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, newStore(t).Ping(context.Background()))
	})
}
