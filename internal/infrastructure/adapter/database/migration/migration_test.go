package migration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/model"
)

func TestMigrateAll_Schema(t *testing.T) {
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())
	db := tdb.Manager.DB()

	mgr := migration.NewMigrationManager(db, tdb.Logger, tdb.TimeProvider)
	version, err := mgr.GetCurrentVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)

	for _, table := range []any{&model.User{}, &model.Transaction{}, &model.ProcessingLog{}, &model.MigrationVersion{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}

	assert.True(t, db.Migrator().HasIndex(&model.User{}, "idx_users_email"))
	assert.True(t, db.Migrator().HasIndex(&model.Transaction{}, "idx_transactions_user_id"))
	assert.True(t, db.Migrator().HasIndex(&model.Transaction{}, "idx_transactions_user_created"))
	assert.True(t, db.Migrator().HasIndex(&model.ProcessingLog{}, "idx_processing_logs_user_id"))
}

func TestMigrateAll_CreditsCannotGoNegative(t *testing.T) {
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())
	tdb.CreateTestUser(t, "usr_00000000000a", "neg@example.com", 1)

	err := tdb.Manager.DB().Exec("UPDATE users SET credits = -1 WHERE id = ?", "usr_00000000000a").Error
	assert.Error(t, err)
	assert.Equal(t, int64(1), tdb.Credits(t, "usr_00000000000a"))
}

func TestMigrateAll_SecondRunSkips(t *testing.T) {
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())
	mgr := migration.NewMigrationManager(tdb.Manager.DB(), tdb.Logger, tdb.TimeProvider)

	require.NoError(t, mgr.MigrateAll())
	require.NoError(t, mgr.MigrateAll())
	assert.Equal(t, int64(1), tdb.CountRows(t, &model.MigrationVersion{}))
}
