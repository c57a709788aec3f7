package database

import (
	"database/sql"
	"sync"
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/transform-studio/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeStats struct {
	mu    sync.Mutex
	stats sql.DBStats
}

func (f *fakeStats) Stats() sql.DBStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}

func (f *fakeStats) set(s sql.DBStats) {
	f.mu.Lock()
	f.stats = s
	f.mu.Unlock()
}

type syncObserver struct {
	mu    sync.Mutex
	pools []sql.DBStats
}

func (o *syncObserver) ObserveQuery(QueryMetrics) {}

func (o *syncObserver) ObservePool(s sql.DBStats) {
	o.mu.Lock()
	o.pools = append(o.pools, s)
	o.mu.Unlock()
}

func (o *syncObserver) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.pools)
}

func TestConnectionPoolMonitor(t *testing.T) {
	source := &fakeStats{stats: sql.DBStats{MaxOpenConnections: 10, OpenConnections: 3, InUse: 2, Idle: 1}}
	observer := &syncObserver{}

	ticks := make(chan time.Time)
	ticker := coremocks.NewMockTicker(t)
	ticker.EXPECT().C().Return((<-chan time.Time)(ticks))
	ticker.EXPECT().Stop().Once()

	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().NewTicker(mock.Anything).Return(ticker).Once()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Once()

	monitor := NewConnectionPoolMonitor(source, logger, tp, observer)
	monitor.Start(30 * time.Second)

	assert.Equal(t, 1, observer.count())
	assert.Equal(t, 2, monitor.GetMetrics().InUse)

	source.set(sql.DBStats{MaxOpenConnections: 10, InUse: 9})
	ticks <- time.Now()

	assert.Eventually(t, func() bool {
		return monitor.GetMetrics().InUse == 9
	}, time.Second, 5*time.Millisecond)

	monitor.Stop()
	monitor.Stop()
	assert.Equal(t, 2, observer.count())
}
