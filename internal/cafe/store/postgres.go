package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shandysiswandi/gocafe/internal/cafe/entity"
	"github.com/shandysiswandi/gocafe/internal/cafe/usecase"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgerror"
)

const driverPostgres = "postgres"

var _ usecase.Store = (*PostgresStore)(nil)

// Database is the subset of a pgx pool the store needs. Both *pgxpool.Pool
// and pgxmock pools satisfy it.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS employee (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		position TEXT NOT NULL,
		wage DOUBLE PRECISION NOT NULL,
		is_current_employee INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS timesheet (
		id BIGSERIAL PRIMARY KEY,
		hours DOUBLE PRECISION NOT NULL,
		rate DOUBLE PRECISION NOT NULL,
		date BIGINT NOT NULL,
		employee_id BIGINT NOT NULL REFERENCES employee (id)
	)`,
	`CREATE TABLE IF NOT EXISTS menu (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS menuitem (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		inventory BIGINT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		menu_id BIGINT NOT NULL REFERENCES menu (id)
	)`,
}

const (
	pgListActiveEmployees = `SELECT id, name, position, wage, is_current_employee FROM employee WHERE is_current_employee = 1 ORDER BY id`
	pgCreateEmployee      = `INSERT INTO employee (name, position, wage, is_current_employee) VALUES ($1, $2, $3, $4) RETURNING id`
	pgGetEmployee         = `SELECT id, name, position, wage, is_current_employee FROM employee WHERE id = $1`
	pgUpdateEmployee      = `UPDATE employee SET name = $2, position = $3, wage = $4, is_current_employee = $5 WHERE id = $1`
	pgDeactivateEmployee  = `UPDATE employee SET is_current_employee = 0 WHERE id = $1`

	pgListTimesheets  = `SELECT id, hours, rate, date, employee_id FROM timesheet WHERE employee_id = $1 ORDER BY id`
	pgCreateTimesheet = `INSERT INTO timesheet (hours, rate, date, employee_id) VALUES ($1, $2, $3, $4) RETURNING id`
	pgGetTimesheet    = `SELECT id, hours, rate, date, employee_id FROM timesheet WHERE id = $1`
	pgUpdateTimesheet = `UPDATE timesheet SET hours = $2, rate = $3, date = $4, employee_id = $5 WHERE id = $1`
	pgDeleteTimesheet = `DELETE FROM timesheet WHERE id = $1`

	pgListMenus  = `SELECT id, title FROM menu ORDER BY id`
	pgCreateMenu = `INSERT INTO menu (title) VALUES ($1) RETURNING id`
	pgGetMenu    = `SELECT id, title FROM menu WHERE id = $1`
	pgUpdateMenu = `UPDATE menu SET title = $2 WHERE id = $1`
	pgDeleteMenu = `DELETE FROM menu WHERE id = $1`

	pgCountMenuItems = `SELECT COUNT(*) FROM menuitem WHERE menu_id = $1`
	pgListMenuItems  = `SELECT id, name, description, inventory, price, menu_id FROM menuitem WHERE menu_id = $1 ORDER BY id`
	pgCreateMenuItem = `INSERT INTO menuitem (name, description, inventory, price, menu_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	pgGetMenuItem    = `SELECT id, name, description, inventory, price, menu_id FROM menuitem WHERE id = $1`
	pgUpdateMenuItem = `UPDATE menuitem SET name = $2, description = $3, inventory = $4, price = $5, menu_id = $6 WHERE id = $1`
	pgDeleteMenuItem = `DELETE FROM menuitem WHERE id = $1`
)

// PostgresStore keeps the cafe tables in PostgreSQL.
type PostgresStore struct {
	db  Database
	obs QueryObserver
}

// NewPostgresStore returns a store over db without touching the schema.
func NewPostgresStore(db Database, obs QueryObserver) *PostgresStore {
	return &PostgresStore{db: db, obs: observerOrNoop(obs)}
}

// Migrate creates the tables when missing.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	for _, ddl := range postgresSchema {
		if _, err := s.db.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create postgres schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) track(query string) func(err *error) {
	start := time.Now()
	return func(err *error) {
		s.obs.ObserveQuery(driverPostgres, query, start, *err != nil && !errors.Is(*err, pkgerror.ErrNotFound))
	}
}

func (s *PostgresStore) ListActiveEmployees(ctx context.Context) (_ []entity.Employee, err error) {
	defer s.track("list_active_employees")(&err)

	rows, err := s.db.Query(ctx, pgListActiveEmployees)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	employees, err := collect(rows, scanEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *PostgresStore) CreateEmployee(ctx context.Context, e entity.Employee) (id int64, err error) {
	defer s.track("create_employee")(&err)

	err = s.db.QueryRow(ctx, pgCreateEmployee, e.Name, e.Position, e.Wage, entity.Flag(e.IsCurrentEmployee)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create employee: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) GetEmployee(ctx context.Context, id int64) (_ entity.Employee, err error) {
	defer s.track("get_employee")(&err)

	e, err := scanEmployee(s.db.QueryRow(ctx, pgGetEmployee, id))
	if err != nil {
		return entity.Employee{}, notFoundOr(err, "failed to get employee")
	}
	return e, nil
}

func (s *PostgresStore) UpdateEmployee(ctx context.Context, e entity.Employee) (err error) {
	defer s.track("update_employee")(&err)

	return s.exec(ctx, "failed to update employee", pgUpdateEmployee,
		e.ID, e.Name, e.Position, e.Wage, entity.Flag(e.IsCurrentEmployee))
}

func (s *PostgresStore) DeactivateEmployee(ctx context.Context, id int64) (err error) {
	defer s.track("deactivate_employee")(&err)

	return s.exec(ctx, "failed to deactivate employee", pgDeactivateEmployee, id)
}

func (s *PostgresStore) ListTimesheets(ctx context.Context, employeeID int64) (_ []entity.Timesheet, err error) {
	defer s.track("list_timesheets")(&err)

	rows, err := s.db.Query(ctx, pgListTimesheets, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	timesheets, err := collect(rows, scanTimesheet)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	return timesheets, nil
}

func (s *PostgresStore) CreateTimesheet(ctx context.Context, ts entity.Timesheet) (id int64, err error) {
	defer s.track("create_timesheet")(&err)

	err = s.db.QueryRow(ctx, pgCreateTimesheet, ts.Hours, ts.Rate, ts.Date, ts.EmployeeID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create timesheet: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) GetTimesheet(ctx context.Context, id int64) (_ entity.Timesheet, err error) {
	defer s.track("get_timesheet")(&err)

	ts, err := scanTimesheet(s.db.QueryRow(ctx, pgGetTimesheet, id))
	if err != nil {
		return entity.Timesheet{}, notFoundOr(err, "failed to get timesheet")
	}
	return ts, nil
}

func (s *PostgresStore) UpdateTimesheet(ctx context.Context, ts entity.Timesheet) (err error) {
	defer s.track("update_timesheet")(&err)

	return s.exec(ctx, "failed to update timesheet", pgUpdateTimesheet,
		ts.ID, ts.Hours, ts.Rate, ts.Date, ts.EmployeeID)
}

func (s *PostgresStore) DeleteTimesheet(ctx context.Context, id int64) (err error) {
	defer s.track("delete_timesheet")(&err)

	return s.exec(ctx, "failed to delete timesheet", pgDeleteTimesheet, id)
}

func (s *PostgresStore) ListMenus(ctx context.Context) (_ []entity.Menu, err error) {
	defer s.track("list_menus")(&err)

	rows, err := s.db.Query(ctx, pgListMenus)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	menus, err := collect(rows, scanMenu)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	return menus, nil
}

func (s *PostgresStore) CreateMenu(ctx context.Context, m entity.Menu) (id int64, err error) {
	defer s.track("create_menu")(&err)

	if err = s.db.QueryRow(ctx, pgCreateMenu, m.Title).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create menu: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) GetMenu(ctx context.Context, id int64) (_ entity.Menu, err error) {
	defer s.track("get_menu")(&err)

	m, err := scanMenu(s.db.QueryRow(ctx, pgGetMenu, id))
	if err != nil {
		return entity.Menu{}, notFoundOr(err, "failed to get menu")
	}
	return m, nil
}

func (s *PostgresStore) UpdateMenu(ctx context.Context, m entity.Menu) (err error) {
	defer s.track("update_menu")(&err)

	return s.exec(ctx, "failed to update menu", pgUpdateMenu, m.ID, m.Title)
}

func (s *PostgresStore) DeleteMenu(ctx context.Context, id int64) (err error) {
	defer s.track("delete_menu")(&err)

	return s.exec(ctx, "failed to delete menu", pgDeleteMenu, id)
}

func (s *PostgresStore) CountMenuItems(ctx context.Context, menuID int64) (n int64, err error) {
	defer s.track("count_menu_items")(&err)

	if err = s.db.QueryRow(ctx, pgCountMenuItems, menuID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) ListMenuItems(ctx context.Context, menuID int64) (_ []entity.MenuItem, err error) {
	defer s.track("list_menu_items")(&err)

	rows, err := s.db.Query(ctx, pgListMenuItems, menuID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	items, err := collect(rows, scanMenuItem)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) CreateMenuItem(ctx context.Context, item entity.MenuItem) (id int64, err error) {
	defer s.track("create_menu_item")(&err)

	err = s.db.QueryRow(ctx, pgCreateMenuItem,
		item.Name, item.Description, item.Inventory, item.Price, item.MenuID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create menu item: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) GetMenuItem(ctx context.Context, id int64) (_ entity.MenuItem, err error) {
	defer s.track("get_menu_item")(&err)

	item, err := scanMenuItem(s.db.QueryRow(ctx, pgGetMenuItem, id))
	if err != nil {
		return entity.MenuItem{}, notFoundOr(err, "failed to get menu item")
	}
	return item, nil
}

func (s *PostgresStore) UpdateMenuItem(ctx context.Context, item entity.MenuItem) (err error) {
	defer s.track("update_menu_item")(&err)

	return s.exec(ctx, "failed to update menu item", pgUpdateMenuItem,
		item.ID, item.Name, item.Description, item.Inventory, item.Price, item.MenuID)
}

func (s *PostgresStore) DeleteMenuItem(ctx context.Context, id int64) (err error) {
	defer s.track("delete_menu_item")(&err)

	return s.exec(ctx, "failed to delete menu item", pgDeleteMenuItem, id)
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}

// exec runs a single-row write and reports pkgerror.ErrNotFound when no row
// matched.
func (s *PostgresStore) exec(ctx context.Context, msg, query string, args ...any) error {
	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", msg, err)
	}
	if tag.RowsAffected() == 0 {
		return pkgerror.ErrNotFound
	}
	return nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return pkgerror.ErrNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func scanEmployee(row pgx.Row) (entity.Employee, error) {
	var (
		e      entity.Employee
		active int64
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Position, &e.Wage, &active); err != nil {
		return entity.Employee{}, err
	}
	e.IsCurrentEmployee = entity.IsSet(active)
	return e, nil
}

func scanTimesheet(row pgx.Row) (entity.Timesheet, error) {
	var ts entity.Timesheet
	err := row.Scan(&ts.ID, &ts.Hours, &ts.Rate, &ts.Date, &ts.EmployeeID)
	return ts, err
}

func scanMenu(row pgx.Row) (entity.Menu, error) {
	var m entity.Menu
	err := row.Scan(&m.ID, &m.Title)
	return m, err
}

func scanMenuItem(row pgx.Row) (entity.MenuItem, error) {
	var (
		item entity.MenuItem
		desc pgtype.Text
	)
	if err := row.Scan(&item.ID, &item.Name, &desc, &item.Inventory, &item.Price, &item.MenuID); err != nil {
		return entity.MenuItem{}, err
	}
	if desc.Valid {
		item.Description = &desc.String
	}
	return item, nil
}
