package database

import (
	"database/sql"
	"time"
)

// QueryMetrics describes one executed SQL statement
type QueryMetrics struct {
	Operation    string
	Table        string
	Duration     time.Duration
	RowsAffected int64
	Failed       bool
}

// Observer receives database telemetry. The prometheus adapter implements it.
type Observer interface {
	ObserveQuery(metrics QueryMetrics)
	ObservePool(stats sql.DBStats)
}

type noopObserver struct{}

func (noopObserver) ObserveQuery(QueryMetrics) {}

func (noopObserver) ObservePool(sql.DBStats) {}

// NoopObserver discards all telemetry
func NoopObserver() Observer {
	return noopObserver{}
}
