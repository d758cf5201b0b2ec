package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rohits-web03/filehub/internal/auth"
	"github.com/rohits-web03/filehub/internal/config"
	"github.com/rohits-web03/filehub/internal/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repositories.ConnectDatabase(config.DatabaseConfig{
		Driver: "sqlite",
		URL:    filepath.Join(t.TempDir(), "test.db"),
	}, "info")
	require.NoError(t, err)
	require.NoError(t, repositories.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func userCtx(userID string) context.Context {
	return auth.WithUserID(context.Background(), userID)
}
