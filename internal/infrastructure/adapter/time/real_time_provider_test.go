package time

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider(t *testing.T) {
	p := NewRealTimeProvider()

	t.Run("Since measures elapsed time", func(t *testing.T) {
		start := p.Now()
		p.Sleep(5 * core.Millisecond)
		assert.GreaterOrEqual(t, p.Since(start).Std(), 5*time.Millisecond)
	})

	t.Run("WithTimeout cancels the context", func(t *testing.T) {
		ctx, cancel := p.WithTimeout(context.Background(), 10*core.Millisecond)
		defer cancel()

		select {
		case <-ctx.Done():
			assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
		case <-time.After(time.Second):
			t.Fatal("context was not canceled")
		}
	})

	t.Run("Ticker fires until stopped", func(t *testing.T) {
		ticker := p.NewTicker(5 * core.Millisecond)
		defer ticker.Stop()

		select {
		case <-ticker.C():
		case <-time.After(time.Second):
			t.Fatal("ticker did not fire")
		}
	})
}
