package transformation

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
)

func TestEditCoalescer(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Rapid edits collapse into the latest value", func(t *testing.T) {
		c := NewEditCoalescer(time.Second)
		c.Record(usecase.FieldPrompt, "c", start)
		c.Record(usecase.FieldPrompt, "ca", start.Add(200*time.Millisecond))
		c.Record(usecase.FieldPrompt, "cat", start.Add(400*time.Millisecond))

		assert.Empty(t, c.Settle(start.Add(900*time.Millisecond)))
		assert.True(t, c.Pending())

		settled := c.Settle(start.Add(1400 * time.Millisecond))
		assert.Equal(t, []FieldEdit{{Field: usecase.FieldPrompt, Value: "cat"}}, settled)
		assert.False(t, c.Pending())
	})

	t.Run("Fields settle independently", func(t *testing.T) {
		c := NewEditCoalescer(time.Second)
		c.Record(usecase.FieldPrompt, "car", start)
		c.Record(usecase.FieldColor, "red", start.Add(800*time.Millisecond))

		settled := c.Settle(start.Add(time.Second))
		assert.Equal(t, []FieldEdit{{Field: usecase.FieldPrompt, Value: "car"}}, settled)
		assert.True(t, c.Pending())
	})

	t.Run("Flush returns everything", func(t *testing.T) {
		c := NewEditCoalescer(time.Second)
		c.Record(usecase.FieldPrompt, "car", start)
		c.Record(usecase.FieldColor, "red", start)

		settled := c.Flush()
		assert.Equal(t, []FieldEdit{
			{Field: usecase.FieldColor, Value: "red"},
			{Field: usecase.FieldPrompt, Value: "car"},
		}, settled)
		assert.False(t, c.Pending())
	})

	t.Run("Zero window settles immediately", func(t *testing.T) {
		c := NewEditCoalescer(-time.Second)
		assert.Equal(t, time.Duration(0), c.Window())

		c.Record(usecase.FieldPrompt, "car", start)
		assert.Len(t, c.Settle(start), 1)
	})
}
