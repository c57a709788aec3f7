package metrics

import (
	"time"

	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
)

// Noop satisfies every recorder in this package and drops the samples
type Noop struct{}

// NewNoop returns a recorder for deployments with metrics disabled
func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) TransformationApplied(string) {}

func (*Noop) CreditsSpent(int64) {}

func (*Noop) ImageSaved(string) {}

func (*Noop) ActiveSessions(int) {}

func (*Noop) HTTPStarted() {}

func (*Noop) HTTPFinished(string, string, int, time.Duration) {}

func (*Noop) ObserveMediaRequest(string, error, time.Duration) {}

var _ coreport.Metrics = (*Noop)(nil)
