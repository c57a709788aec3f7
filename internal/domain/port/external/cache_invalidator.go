package external

import "context"

// CacheInvalidator signals that the cached rendering of a page path is stale.
// Delivery is best effort; callers log failures and carry on.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, path string) error
}
