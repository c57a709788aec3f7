package database

import (
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
)

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
}

// StatsSource yields connection pool statistics; *sql.DB satisfies it
type StatsSource interface {
	Stats() sql.DBStats
}

// ConnectionPoolMonitor samples the connection pool and reports it to the observer
type ConnectionPoolMonitor struct {
	source       StatsSource
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	observer     Observer
	metricsCache *ConnectionPoolMetrics
	mutex        sync.RWMutex
	stopChan     chan struct{}
	stopOnce     sync.Once
	done         chan struct{}
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(source StatsSource, logger coreport.Logger, timeProvider coreport.TimeProvider, observer Observer) *ConnectionPoolMonitor {
	if observer == nil {
		observer = NoopObserver()
	}
	return &ConnectionPoolMonitor{
		source:       source,
		logger:       logger,
		timeProvider: timeProvider,
		observer:     observer,
		stopChan:     make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start samples once and then on every tick until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.collectMetrics()

	ticker := m.timeProvider.NewTicker(coreport.Duration(interval))
	go func() {
		defer close(m.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C():
				m.collectMetrics()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the monitoring and waits for the sampling goroutine to exit
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
	<-m.done
}

// GetMetrics returns the latest connection pool sample
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.metricsCache == nil {
		return ConnectionPoolMetrics{}
	}

	return *m.metricsCache
}

func (m *ConnectionPoolMonitor) collectMetrics() {
	stats := m.source.Stats()
	m.observer.ObservePool(stats)

	m.mutex.Lock()
	m.metricsCache = &ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
	}
	m.mutex.Unlock()

	// Warn when more than 80% of the pool is checked out
	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}
