package transformation

import (
	"sort"
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/usecase"
)

// DefaultEditWindow is how long a field must stay unchanged before its edit is staged
const DefaultEditWindow = time.Second

type pendingEdit struct {
	value    string
	editedAt time.Time
}

// FieldEdit is a settled edit ready to be staged
type FieldEdit struct {
	Field usecase.FormField
	Value string
}

// EditCoalescer collapses rapid edits of a field into its most recent value.
// An edit settles once window has passed since the field was last touched.
type EditCoalescer struct {
	window  time.Duration
	pending map[usecase.FormField]pendingEdit
}

// NewEditCoalescer creates a coalescer; a non-positive window settles edits immediately
func NewEditCoalescer(window time.Duration) *EditCoalescer {
	if window < 0 {
		window = 0
	}
	return &EditCoalescer{
		window:  window,
		pending: make(map[usecase.FormField]pendingEdit),
	}
}

// Record replaces any unsettled edit of field
func (c *EditCoalescer) Record(field usecase.FormField, value string, now time.Time) {
	c.pending[field] = pendingEdit{value: value, editedAt: now}
}

// Settle removes and returns the edits whose window has elapsed by now
func (c *EditCoalescer) Settle(now time.Time) []FieldEdit {
	var settled []FieldEdit
	for field, edit := range c.pending {
		if now.Sub(edit.editedAt) >= c.window {
			settled = append(settled, FieldEdit{Field: field, Value: edit.value})
			delete(c.pending, field)
		}
	}
	sortEdits(settled)
	return settled
}

// Flush removes and returns every unsettled edit regardless of age
func (c *EditCoalescer) Flush() []FieldEdit {
	settled := make([]FieldEdit, 0, len(c.pending))
	for field, edit := range c.pending {
		settled = append(settled, FieldEdit{Field: field, Value: edit.value})
	}
	c.pending = make(map[usecase.FormField]pendingEdit)
	sortEdits(settled)
	return settled
}

// Pending reports whether any edit is still waiting to settle
func (c *EditCoalescer) Pending() bool {
	return len(c.pending) > 0
}

// Window returns the coalescing window
func (c *EditCoalescer) Window() time.Duration {
	return c.window
}

func sortEdits(edits []FieldEdit) {
	sort.Slice(edits, func(i, j int) bool { return edits[i].Field < edits[j].Field })
}
