package repositories

import (
	"path/filepath"
	"testing"

	"github.com/rohits-web03/filehub/internal/config"
	"github.com/rohits-web03/filehub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "a.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", SQLiteDSN("a.db"))
	assert.Equal(t, "a.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", SQLiteDSN("a.db?mode=rwc"))
	assert.Equal(t, "a.db?_pragma=foreign_keys(0)", SQLiteDSN("a.db?_pragma=foreign_keys(0)"))
}

func TestConnectDatabaseSQLite(t *testing.T) {
	db, err := ConnectDatabase(config.DatabaseConfig{
		Driver: "sqlite",
		URL:    filepath.Join(t.TempDir(), "test.db"),
	}, "info")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m))
	}
	assert.True(t, db.Migrator().HasIndex(&models.FileTag{}, "idx_file_tag"))
}

func TestConnectDatabaseErrors(t *testing.T) {
	_, err := ConnectDatabase(config.DatabaseConfig{Driver: "sqlite"}, "info")
	assert.Error(t, err)

	_, err = ConnectDatabase(config.DatabaseConfig{Driver: "oracle", URL: "x"}, "info")
	assert.Error(t, err)
}
