package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shandysiswandi/gocafe/internal/cafe/entity"
	"github.com/shandysiswandi/gocafe/internal/cafe/usecase"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgerror"
	"gorm.io/gorm"
)

const driverSQLite = "sqlite"

var _ usecase.Store = (*SQLStore)(nil)

// sqliteSchema matches the layout of an existing database file, so pointing
// the service at one created elsewhere keeps working.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS Employee (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		position TEXT NOT NULL,
		wage REAL NOT NULL,
		is_current_employee INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS Timesheet (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hours REAL NOT NULL,
		rate REAL NOT NULL,
		date INTEGER NOT NULL,
		employee_id INTEGER NOT NULL,
		FOREIGN KEY (employee_id) REFERENCES Employee (id)
	)`,
	`CREATE TABLE IF NOT EXISTS Menu (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS MenuItem (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		inventory INTEGER NOT NULL,
		price REAL NOT NULL,
		menu_id INTEGER NOT NULL,
		FOREIGN KEY (menu_id) REFERENCES Menu (id)
	)`,
}

type employeeRecord struct {
	ID                int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name              string  `gorm:"column:name"`
	Position          string  `gorm:"column:position"`
	Wage              float64 `gorm:"column:wage"`
	IsCurrentEmployee int64   `gorm:"column:is_current_employee"`
}

func (employeeRecord) TableName() string { return "Employee" }

func (r employeeRecord) toEntity() entity.Employee {
	return entity.Employee{
		ID:                r.ID,
		Name:              r.Name,
		Position:          r.Position,
		Wage:              r.Wage,
		IsCurrentEmployee: entity.IsSet(r.IsCurrentEmployee),
	}
}

type timesheetRecord struct {
	ID         int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Hours      float64 `gorm:"column:hours"`
	Rate       float64 `gorm:"column:rate"`
	Date       int64   `gorm:"column:date"`
	EmployeeID int64   `gorm:"column:employee_id"`
}

func (timesheetRecord) TableName() string { return "Timesheet" }

func (r timesheetRecord) toEntity() entity.Timesheet {
	return entity.Timesheet(r)
}

type menuRecord struct {
	ID    int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Title string `gorm:"column:title"`
}

func (menuRecord) TableName() string { return "Menu" }

func (r menuRecord) toEntity() entity.Menu {
	return entity.Menu(r)
}

type menuItemRecord struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name"`
	Description *string `gorm:"column:description"`
	Inventory   int64   `gorm:"column:inventory"`
	Price       float64 `gorm:"column:price"`
	MenuID      int64   `gorm:"column:menu_id"`
}

func (menuItemRecord) TableName() string { return "MenuItem" }

func (r menuItemRecord) toEntity() entity.MenuItem {
	return entity.MenuItem(r)
}

// SQLStore keeps the cafe tables in a SQLite file through gorm.
type SQLStore struct {
	db  *gorm.DB
	obs QueryObserver
}

// NewSQLStore creates the tables when missing and returns a store over db.
func NewSQLStore(ctx context.Context, db *gorm.DB, obs QueryObserver) (*SQLStore, error) {
	for _, ddl := range sqliteSchema {
		if err := db.WithContext(ctx).Exec(ddl).Error; err != nil {
			return nil, fmt.Errorf("failed to create sqlite schema: %w", err)
		}
	}

	return &SQLStore{db: db, obs: observerOrNoop(obs)}, nil
}

func (s *SQLStore) track(query string) func(err *error) {
	start := time.Now()
	return func(err *error) {
		s.obs.ObserveQuery(driverSQLite, query, start, *err != nil && !errors.Is(*err, pkgerror.ErrNotFound))
	}
}

func (s *SQLStore) ListActiveEmployees(ctx context.Context) (_ []entity.Employee, err error) {
	defer s.track("list_active_employees")(&err)

	var recs []employeeRecord
	if err = s.db.WithContext(ctx).Where("is_current_employee = ?", 1).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return convert(recs, employeeRecord.toEntity), nil
}

func (s *SQLStore) CreateEmployee(ctx context.Context, e entity.Employee) (_ int64, err error) {
	defer s.track("create_employee")(&err)

	rec := employeeRecord{
		Name:              e.Name,
		Position:          e.Position,
		Wage:              e.Wage,
		IsCurrentEmployee: entity.Flag(e.IsCurrentEmployee),
	}
	if err = s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return 0, fmt.Errorf("failed to create employee: %w", err)
	}
	return rec.ID, nil
}

func (s *SQLStore) GetEmployee(ctx context.Context, id int64) (_ entity.Employee, err error) {
	defer s.track("get_employee")(&err)

	var rec employeeRecord
	if err = takeRow(ctx, s.db, id, &rec); err != nil {
		return entity.Employee{}, err
	}
	return rec.toEntity(), nil
}

func (s *SQLStore) UpdateEmployee(ctx context.Context, e entity.Employee) (err error) {
	defer s.track("update_employee")(&err)

	return updateRow(ctx, s.db, &employeeRecord{}, e.ID, map[string]any{
		"name":                e.Name,
		"position":            e.Position,
		"wage":                e.Wage,
		"is_current_employee": entity.Flag(e.IsCurrentEmployee),
	})
}

func (s *SQLStore) DeactivateEmployee(ctx context.Context, id int64) (err error) {
	defer s.track("deactivate_employee")(&err)

	return updateRow(ctx, s.db, &employeeRecord{}, id, map[string]any{"is_current_employee": 0})
}

func (s *SQLStore) ListTimesheets(ctx context.Context, employeeID int64) (_ []entity.Timesheet, err error) {
	defer s.track("list_timesheets")(&err)

	var recs []timesheetRecord
	if err = s.db.WithContext(ctx).Where("employee_id = ?", employeeID).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	return convert(recs, timesheetRecord.toEntity), nil
}

func (s *SQLStore) CreateTimesheet(ctx context.Context, ts entity.Timesheet) (_ int64, err error) {
	defer s.track("create_timesheet")(&err)

	rec := timesheetRecord(ts)
	rec.ID = 0
	if err = s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return 0, fmt.Errorf("failed to create timesheet: %w", err)
	}
	return rec.ID, nil
}

func (s *SQLStore) GetTimesheet(ctx context.Context, id int64) (_ entity.Timesheet, err error) {
	defer s.track("get_timesheet")(&err)

	var rec timesheetRecord
	if err = takeRow(ctx, s.db, id, &rec); err != nil {
		return entity.Timesheet{}, err
	}
	return rec.toEntity(), nil
}

func (s *SQLStore) UpdateTimesheet(ctx context.Context, ts entity.Timesheet) (err error) {
	defer s.track("update_timesheet")(&err)

	return updateRow(ctx, s.db, &timesheetRecord{}, ts.ID, map[string]any{
		"hours":       ts.Hours,
		"rate":        ts.Rate,
		"date":        ts.Date,
		"employee_id": ts.EmployeeID,
	})
}

func (s *SQLStore) DeleteTimesheet(ctx context.Context, id int64) (err error) {
	defer s.track("delete_timesheet")(&err)

	return deleteRow(ctx, s.db, &timesheetRecord{}, id)
}

func (s *SQLStore) ListMenus(ctx context.Context) (_ []entity.Menu, err error) {
	defer s.track("list_menus")(&err)

	var recs []menuRecord
	if err = s.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	return convert(recs, menuRecord.toEntity), nil
}

func (s *SQLStore) CreateMenu(ctx context.Context, m entity.Menu) (_ int64, err error) {
	defer s.track("create_menu")(&err)

	rec := menuRecord{Title: m.Title}
	if err = s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return 0, fmt.Errorf("failed to create menu: %w", err)
	}
	return rec.ID, nil
}

func (s *SQLStore) GetMenu(ctx context.Context, id int64) (_ entity.Menu, err error) {
	defer s.track("get_menu")(&err)

	var rec menuRecord
	if err = takeRow(ctx, s.db, id, &rec); err != nil {
		return entity.Menu{}, err
	}
	return rec.toEntity(), nil
}

func (s *SQLStore) UpdateMenu(ctx context.Context, m entity.Menu) (err error) {
	defer s.track("update_menu")(&err)

	return updateRow(ctx, s.db, &menuRecord{}, m.ID, map[string]any{"title": m.Title})
}

func (s *SQLStore) DeleteMenu(ctx context.Context, id int64) (err error) {
	defer s.track("delete_menu")(&err)

	return deleteRow(ctx, s.db, &menuRecord{}, id)
}

func (s *SQLStore) CountMenuItems(ctx context.Context, menuID int64) (_ int64, err error) {
	defer s.track("count_menu_items")(&err)

	var n int64
	if err = s.db.WithContext(ctx).Model(&menuItemRecord{}).Where("menu_id = ?", menuID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	return n, nil
}

func (s *SQLStore) ListMenuItems(ctx context.Context, menuID int64) (_ []entity.MenuItem, err error) {
	defer s.track("list_menu_items")(&err)

	var recs []menuItemRecord
	if err = s.db.WithContext(ctx).Where("menu_id = ?", menuID).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return convert(recs, menuItemRecord.toEntity), nil
}

func (s *SQLStore) CreateMenuItem(ctx context.Context, item entity.MenuItem) (_ int64, err error) {
	defer s.track("create_menu_item")(&err)

	rec := menuItemRecord(item)
	rec.ID = 0
	if err = s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return 0, fmt.Errorf("failed to create menu item: %w", err)
	}
	return rec.ID, nil
}

func (s *SQLStore) GetMenuItem(ctx context.Context, id int64) (_ entity.MenuItem, err error) {
	defer s.track("get_menu_item")(&err)

	var rec menuItemRecord
	if err = takeRow(ctx, s.db, id, &rec); err != nil {
		return entity.MenuItem{}, err
	}
	return rec.toEntity(), nil
}

func (s *SQLStore) UpdateMenuItem(ctx context.Context, item entity.MenuItem) (err error) {
	defer s.track("update_menu_item")(&err)

	return updateRow(ctx, s.db, &menuItemRecord{}, item.ID, map[string]any{
		"name":        item.Name,
		"description": item.Description,
		"inventory":   item.Inventory,
		"price":       item.Price,
		"menu_id":     item.MenuID,
	})
}

func (s *SQLStore) DeleteMenuItem(ctx context.Context, id int64) (err error) {
	defer s.track("delete_menu_item")(&err)

	return deleteRow(ctx, s.db, &menuItemRecord{}, id)
}

func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func takeRow(ctx context.Context, db *gorm.DB, id int64, dst any) error {
	err := db.WithContext(ctx).Where("id = ?", id).Take(dst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerror.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get row %d: %w", id, err)
	}
	return nil
}

func updateRow(ctx context.Context, db *gorm.DB, model any, id int64, values map[string]any) error {
	res := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("failed to update row %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgerror.ErrNotFound
	}
	return nil
}

func deleteRow(ctx context.Context, db *gorm.DB, model any, id int64) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return fmt.Errorf("failed to delete row %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgerror.ErrNotFound
	}
	return nil
}

func convert[R, E any](recs []R, fn func(R) E) []E {
	out := make([]E, 0, len(recs))
	for _, r := range recs {
		out = append(out, fn(r))
	}
	return out
}
