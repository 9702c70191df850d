package workers

import (
	"context"
	"time"

	"go.uber.org/zap"

	postPort "postboard/internal/ports/post"
	statsPort "postboard/internal/ports/stats"
)

// ViewSyncWorker periodically drains the Redis view counters and adds them
// to posts.view_count. Detail views stay cheap, the table converges.
type ViewSyncWorker struct {
	Views     statsPort.ViewRepository
	Posts     postPort.PostRepository
	Interval  time.Duration
	BatchSize int
	Logger    *zap.Logger
}

func NewViewSyncWorker(
	views statsPort.ViewRepository,
	posts postPort.PostRepository,
	interval time.Duration,
	batchSize int,
	logger *zap.Logger,
) *ViewSyncWorker {
	return &ViewSyncWorker{
		Views:     views,
		Posts:     posts,
		Interval:  interval,
		BatchSize: batchSize,
		Logger:    logger,
	}
}

func (w *ViewSyncWorker) Run(ctx context.Context) {
	w.Logger.Info("🚀 ViewSyncWorker started")
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("🛑 View sync worker stopped")
			return
		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *ViewSyncWorker) flush(ctx context.Context) {
	pending, err := w.Views.Drain(ctx, int64(w.BatchSize))
	if err != nil {
		w.Logger.Error("❌ Error draining view counters:", zap.Error(err))
		return
	}

	flushed := 0
	for postID, delta := range pending {
		if err := w.Posts.AddViews(ctx, postID, delta); err != nil {
			w.Logger.Warn("⚠️ Warning: could not flush view counter",
				zap.String("postID", postID), zap.Error(err))
			continue
		}
		flushed++
	}

	if flushed > 0 {
		w.Logger.Info("✅ Flushed view counters", zap.Int("count", flushed))
	}
}
