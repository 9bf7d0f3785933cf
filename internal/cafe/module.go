package cafe

import (
	"context"
	"fmt"

	"github.com/shandysiswandi/gocafe/internal/cafe/inbound"
	"github.com/shandysiswandi/gocafe/internal/cafe/store"
	"github.com/shandysiswandi/gocafe/internal/cafe/usecase"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgdb"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgmetrics"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgvalidator"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Dependency struct {
	Config  pkgconfig.Config
	Router  *pkgrouter.Router
	Metrics *pkgmetrics.Metrics
	Context context.Context
}

type closableStore interface {
	usecase.Store
	Close() error
}

// New opens the store selected by database.driver, mounts the API on the
// router and returns a closer that releases the store.
func New(dep Dependency) (func(context.Context) error, error) {
	ctx := dep.Context
	if ctx == nil {
		ctx = context.Background()
	}

	storage, err := openStore(ctx, dep)
	if err != nil {
		return nil, err
	}

	uc := usecase.New(usecase.Dependency{
		Store:     storage,
		Validator: pkgvalidator.New(),
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return func(context.Context) error {
		return storage.Close()
	}, nil
}

func openStore(ctx context.Context, dep Dependency) (closableStore, error) {
	var obs store.QueryObserver
	if dep.Metrics != nil {
		obs = dep.Metrics
	}

	switch driver := dep.Config.GetString("database.driver"); driver {
	case DriverSQLite, "":
		db, err := pkgdb.NewSQLite(dep.Config.GetString("database.path"))
		if err != nil {
			return nil, err
		}
		s, err := store.NewSQLStore(ctx, db, obs)
		if err != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
			return nil, err
		}
		return s, nil

	case DriverPostgres:
		pool, err := pkgdb.NewPostgres(dep.Config.GetString("database.dsn"))
		if err != nil {
			return nil, err
		}
		s := store.NewPostgresStore(pool, obs)
		if err := s.Migrate(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return s, nil

	case DriverMemory:
		return store.NewInMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
}
