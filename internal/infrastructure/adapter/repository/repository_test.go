package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixedClock struct {
	core.TimeProvider
}

func (fixedClock) Now() time.Time { return fixedTime }

// newMockDB opens gorm on top of sqlmock and fails the test on unmet expectations
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

func newTestLogger() core.Logger {
	return logger.NewNoopLogger()
}

var userColumns = []string{
	"id", "identity_id", "email", "username", "first_name", "last_name",
	"photo", "credit_balance", "created_at", "updated_at",
}

func userRow(id string, balance int64) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(id, "idp_"+id, id+"@example.com", nil, "Ada", "Lovelace", "", balance, fixedTime, fixedTime)
}
