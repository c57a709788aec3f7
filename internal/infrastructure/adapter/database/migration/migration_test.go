package migration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})
	return db, mock
}

func TestGetCurrentVersion(t *testing.T) {
	ctx := context.Background()

	t.Run("latest applied version", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mgr := NewMigrationManager(db, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider())
		mock.ExpectQuery(`SELECT \* FROM "migration_versions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "version", "applied_at"}).AddRow(2, "1.0.0", time.Now()))

		version, err := mgr.GetCurrentVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", version)
	})

	t.Run("fresh database", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mgr := NewMigrationManager(db, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider())
		mock.ExpectQuery(`SELECT \* FROM "migration_versions"`).
			WillReturnError(gorm.ErrRecordNotFound)

		version, err := mgr.GetCurrentVersion(ctx)
		require.NoError(t, err)
		assert.Empty(t, version)
	})

	t.Run("cancelled context", func(t *testing.T) {
		db, _ := newMockGorm(t)
		mgr := NewMigrationManager(db, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider())
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := mgr.GetCurrentVersion(cancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCreateIndexes(t *testing.T) {
	t.Run("optional failures are skipped", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mgr := NewAdvancedIndexManager(db, logger.NewNoopLogger())
		for range requiredIndexes {
			mock.ExpectExec(`CREATE (UNIQUE )?INDEX IF NOT EXISTS`).WillReturnResult(sqlmock.NewResult(0, 0))
		}
		mock.ExpectExec(`USING GIN`).WillReturnError(errors.New("operator class does not exist"))
		mock.ExpectExec(`USING BRIN`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, mgr.CreateIndexes())
	})

	t.Run("required failure aborts", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mgr := NewAdvancedIndexManager(db, logger.NewNoopLogger())
		mock.ExpectExec(`idx_images_author_updated`).WillReturnError(errors.New("relation \"images\" does not exist"))

		assert.Error(t, mgr.CreateIndexes())
	})
}

func TestRunVersionedMigrations(t *testing.T) {
	ctx := context.Background()

	t.Run("1.0.0 runs every step", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mgr := NewMigrationManager(db, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider())
		mock.ExpectExec(`INSERT INTO credit_transactions`).WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`UPDATE credit_transactions c`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, mgr.runVersionedMigrations(ctx, "1.0.0"))
	})

	t.Run("1.1.0 deduplicates purchase references", func(t *testing.T) {
		db, mock := newMockGorm(t)
		mgr := NewMigrationManager(db, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider())
		mock.ExpectExec(`UPDATE credit_transactions c`).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, mgr.runVersionedMigrations(ctx, "1.1.0"))
	})

	t.Run("fresh database has nothing to upgrade", func(t *testing.T) {
		db, _ := newMockGorm(t)
		mgr := NewMigrationManager(db, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider())

		assert.NoError(t, mgr.runVersionedMigrations(ctx, ""))
	})
}
