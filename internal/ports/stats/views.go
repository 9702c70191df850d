package stats

import "context"

// ViewRepository counts post detail views. Hits accumulate out of band and a
// worker drains them into the posts table.
type ViewRepository interface {
	// Hit records one view and returns the pending (not yet flushed) count.
	Hit(ctx context.Context, postID string) (int64, error)
	// Drain atomically takes up to limit pending counters, keyed by post id.
	Drain(ctx context.Context, limit int64) (map[string]int64, error)
}
