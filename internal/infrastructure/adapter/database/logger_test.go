package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/transform-studio/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type recordingObserver struct {
	queries []QueryMetrics
	pools   []sql.DBStats
}

func (o *recordingObserver) ObserveQuery(m QueryMetrics) { o.queries = append(o.queries, m) }

func (o *recordingObserver) ObservePool(s sql.DBStats) { o.pools = append(o.pools, s) }

func coreDuration(d time.Duration) coreport.Duration { return coreport.Duration(d) }

func TestExtractQueryInfo(t *testing.T) {
	tests := []struct {
		sql       string
		queryType string
		table     string
	}{
		{`SELECT * FROM "users" WHERE id = $1`, "SELECT", "users"},
		{`INSERT INTO "images" ("id","title") VALUES ($1,$2)`, "INSERT", "images"},
		{`UPDATE "users" SET "credit_balance"=credit_balance - $1`, "UPDATE", "users"},
		{`DELETE FROM "credit_transactions" WHERE id = $1`, "DELETE", "credit_transactions"},
		{`SET TIME ZONE 'UTC'`, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			assert.Equal(t, tt.queryType, extractQueryType(tt.sql))
			assert.Equal(t, tt.table, extractTableName(tt.sql))
		})
	}
}

func TestDatabaseLogger_Trace(t *testing.T) {
	begin := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	newLogger := func(t *testing.T, elapsed time.Duration) (*DatabaseLogger, *coremocks.MockLogger, *recordingObserver) {
		core := coremocks.NewMockLogger(t)
		tp := coremocks.NewMockTimeProvider(t)
		tp.EXPECT().Since(begin).Return(coreDuration(elapsed)).Maybe()
		obs := &recordingObserver{}
		l := NewDatabaseLogger(core, tp, "info", obs).(*DatabaseLogger)
		return l, core, obs
	}

	t.Run("regular query logs at debug", func(t *testing.T) {
		l, core, obs := newLogger(t, time.Millisecond)
		core.EXPECT().Debug("SQL Query", mock.Anything).Once()

		l.Trace(context.Background(), begin, func() (string, int64) {
			return `SELECT * FROM "users"`, 1
		}, nil)

		assert.Len(t, obs.queries, 1)
		assert.Equal(t, "users", obs.queries[0].Table)
		assert.False(t, obs.queries[0].Failed)
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		l, core, obs := newLogger(t, time.Millisecond)
		core.EXPECT().Debug("SQL Query", mock.Anything).Once()

		l.Trace(context.Background(), begin, func() (string, int64) {
			return `SELECT * FROM "images"`, 0
		}, gorm.ErrRecordNotFound)

		assert.False(t, obs.queries[0].Failed)
	})

	t.Run("failure logs error", func(t *testing.T) {
		l, core, obs := newLogger(t, time.Millisecond)
		core.EXPECT().Error("SQL Error", mock.Anything).Once()

		l.Trace(context.Background(), begin, func() (string, int64) {
			return `UPDATE "users" SET x = 1`, 0
		}, errors.New("boom"))

		assert.True(t, obs.queries[0].Failed)
	})

	t.Run("slow query warns", func(t *testing.T) {
		l, core, _ := newLogger(t, time.Second)
		core.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		l.Trace(context.Background(), begin, func() (string, int64) {
			return `SELECT * FROM "images"`, 10
		}, nil)
	})

	t.Run("silent still observes", func(t *testing.T) {
		l, _, obs := newLogger(t, time.Millisecond)
		silent := l.LogMode(logger.Silent)

		silent.Trace(context.Background(), begin, func() (string, int64) {
			return `DELETE FROM "images"`, 1
		}, nil)

		assert.Len(t, obs.queries, 1)
	})
}
