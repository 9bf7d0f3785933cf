package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/shandysiswandi/gocafe/internal/cafe/entity"
	"github.com/shandysiswandi/gocafe/internal/cafe/usecase"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkguid"
)

var _ usecase.Store = (*InMemoryStore)(nil)

// InMemoryStore keeps every table in process memory. Each table has its own
// id sequence so ids behave like auto-increment keys.
type InMemoryStore struct {
	mu sync.RWMutex

	employees  map[int64]entity.Employee
	timesheets map[int64]entity.Timesheet
	menus      map[int64]entity.Menu
	menuItems  map[int64]entity.MenuItem

	employeeSeq  pkguid.NumberID
	timesheetSeq pkguid.NumberID
	menuSeq      pkguid.NumberID
	menuItemSeq  pkguid.NumberID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		employees:    make(map[int64]entity.Employee),
		timesheets:   make(map[int64]entity.Timesheet),
		menus:        make(map[int64]entity.Menu),
		menuItems:    make(map[int64]entity.MenuItem),
		employeeSeq:  pkguid.NewSequence(),
		timesheetSeq: pkguid.NewSequence(),
		menuSeq:      pkguid.NewSequence(),
		menuItemSeq:  pkguid.NewSequence(),
	}
}

func (s *InMemoryStore) ListActiveEmployees(ctx context.Context) ([]entity.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedWhere(s.employees, func(e entity.Employee) bool { return e.IsCurrentEmployee },
		func(e entity.Employee) int64 { return e.ID }), nil
}

func (s *InMemoryStore) CreateEmployee(ctx context.Context, e entity.Employee) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.employeeSeq.Generate()
	s.employees[e.ID] = e
	return e.ID, nil
}

func (s *InMemoryStore) GetEmployee(ctx context.Context, id int64) (entity.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(s.employees, id)
}

func (s *InMemoryStore) UpdateEmployee(ctx context.Context, e entity.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return replace(s.employees, e.ID, func(*entity.Employee) entity.Employee { return e })
}

func (s *InMemoryStore) DeactivateEmployee(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return replace(s.employees, id, func(cur *entity.Employee) entity.Employee {
		cur.IsCurrentEmployee = false
		return *cur
	})
}

func (s *InMemoryStore) ListTimesheets(ctx context.Context, employeeID int64) ([]entity.Timesheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedWhere(s.timesheets, func(ts entity.Timesheet) bool { return ts.EmployeeID == employeeID },
		func(ts entity.Timesheet) int64 { return ts.ID }), nil
}

func (s *InMemoryStore) CreateTimesheet(ctx context.Context, ts entity.Timesheet) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts.ID = s.timesheetSeq.Generate()
	s.timesheets[ts.ID] = ts
	return ts.ID, nil
}

func (s *InMemoryStore) GetTimesheet(ctx context.Context, id int64) (entity.Timesheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(s.timesheets, id)
}

func (s *InMemoryStore) UpdateTimesheet(ctx context.Context, ts entity.Timesheet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return replace(s.timesheets, ts.ID, func(*entity.Timesheet) entity.Timesheet { return ts })
}

func (s *InMemoryStore) DeleteTimesheet(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return remove(s.timesheets, id)
}

func (s *InMemoryStore) ListMenus(ctx context.Context) ([]entity.Menu, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedWhere(s.menus, nil, func(m entity.Menu) int64 { return m.ID }), nil
}

func (s *InMemoryStore) CreateMenu(ctx context.Context, m entity.Menu) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.menuSeq.Generate()
	s.menus[m.ID] = m
	return m.ID, nil
}

func (s *InMemoryStore) GetMenu(ctx context.Context, id int64) (entity.Menu, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(s.menus, id)
}

func (s *InMemoryStore) UpdateMenu(ctx context.Context, m entity.Menu) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return replace(s.menus, m.ID, func(*entity.Menu) entity.Menu { return m })
}

func (s *InMemoryStore) DeleteMenu(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return remove(s.menus, id)
}

func (s *InMemoryStore) CountMenuItems(ctx context.Context, menuID int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, item := range s.menuItems {
		if item.MenuID == menuID {
			n++
		}
	}
	return n, nil
}

func (s *InMemoryStore) ListMenuItems(ctx context.Context, menuID int64) ([]entity.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedWhere(s.menuItems, func(item entity.MenuItem) bool { return item.MenuID == menuID },
		func(item entity.MenuItem) int64 { return item.ID }), nil
}

func (s *InMemoryStore) CreateMenuItem(ctx context.Context, item entity.MenuItem) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.menuItemSeq.Generate()
	item.Description = cloneText(item.Description)
	s.menuItems[item.ID] = item
	return item.ID, nil
}

func (s *InMemoryStore) GetMenuItem(ctx context.Context, id int64) (entity.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lookup(s.menuItems, id)
}

func (s *InMemoryStore) UpdateMenuItem(ctx context.Context, item entity.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.Description = cloneText(item.Description)
	return replace(s.menuItems, item.ID, func(*entity.MenuItem) entity.MenuItem { return item })
}

// cloneText keeps callers from mutating stored rows through a shared pointer.
func cloneText(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func (s *InMemoryStore) DeleteMenuItem(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return remove(s.menuItems, id)
}

func (s *InMemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *InMemoryStore) Close() error {
	return nil
}

// The helpers below expect the caller to hold s.mu.

func lookup[T any](table map[int64]T, id int64) (T, error) {
	row, ok := table[id]
	if !ok {
		var zero T
		return zero, pkgerror.ErrNotFound
	}
	return row, nil
}

func replace[T any](table map[int64]T, id int64, fn func(cur *T) T) error {
	cur, ok := table[id]
	if !ok {
		return pkgerror.ErrNotFound
	}
	table[id] = fn(&cur)
	return nil
}

func remove[T any](table map[int64]T, id int64) error {
	if _, ok := table[id]; !ok {
		return pkgerror.ErrNotFound
	}
	delete(table, id)
	return nil
}

func sortedWhere[T any](table map[int64]T, keep func(T) bool, id func(T) int64) []T {
	out := make([]T, 0, len(table))
	for _, row := range table {
		if keep == nil || keep(row) {
			out = append(out, row)
		}
	}
	slices.SortFunc(out, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
	return out
}
