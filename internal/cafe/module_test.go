package cafe_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shandysiswandi/gocafe/internal/cafe"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgmetrics"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgrouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(t *testing.T) pkgconfig.Config {
	t.Helper()

	cfg, err := pkgconfig.NewViper(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cfg.Close() })
	return cfg
}

func TestNew_SQLiteServesAPI(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", cafe.DriverSQLite)
	t.Setenv("TEST_DATABASE", filepath.Join(t.TempDir(), "database.sqlite"))

	router := pkgrouter.NewRouter(nil)
	closer, err := cafe.New(cafe.Dependency{
		Config:  newConfig(t),
		Router:  router,
		Metrics: pkgmetrics.New(),
	})
	require.NoError(t, err)
	defer func() { require.NoError(t, closer(context.Background())) }()

	req := httptest.NewRequest(http.MethodPost, "/api/menus", strings.NewReader(`{"menu":{"title":"Lunch"}}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"menu":{"id":1,"title":"Lunch"}}`, rec.Body.String())
}

func TestNew_MemoryDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", cafe.DriverMemory)

	router := pkgrouter.NewRouter(nil)
	closer, err := cafe.New(cafe.Dependency{Config: newConfig(t), Router: router})
	require.NoError(t, err)
	require.NoError(t, closer(context.Background()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNew_UnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "oracle")

	_, err := cafe.New(cafe.Dependency{Config: newConfig(t), Router: pkgrouter.NewRouter(nil)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown database driver "oracle"`)
}
