package pkgdb_test

import (
	"path/filepath"
	"testing"

	"github.com/shandysiswandi/gocafe/internal/pkg/pkgdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLite_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "database.sqlite")

	db, err := pkgdb.NewSQLite(path)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	require.NoError(t, db.Exec("CREATE TABLE probe (id INTEGER PRIMARY KEY)").Error)
	assert.FileExists(t, path)
}

func TestNewSQLite_Memory(t *testing.T) {
	t.Parallel()

	db, err := pkgdb.NewSQLite(":memory:")
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE TABLE probe (id INTEGER PRIMARY KEY)").Error)
	require.NoError(t, db.Exec("INSERT INTO probe DEFAULT VALUES").Error)

	var count int64
	require.NoError(t, db.Table("probe").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestNewPostgres_InvalidDSN(t *testing.T) {
	t.Parallel()

	_, err := pkgdb.NewPostgres("postgres://%zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse database config")
}
