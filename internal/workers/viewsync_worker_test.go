package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	postEntity "postboard/internal/core/post"
	postPort "postboard/internal/ports/post"
)

type fakeViews struct {
	pending  map[string]int64
	drainErr error
}

func (f *fakeViews) Hit(_ context.Context, postID string) (int64, error) {
	if f.pending == nil {
		f.pending = map[string]int64{}
	}
	f.pending[postID]++
	return f.pending[postID], nil
}

func (f *fakeViews) Drain(_ context.Context, _ int64) (map[string]int64, error) {
	if f.drainErr != nil {
		return nil, f.drainErr
	}
	out := f.pending
	f.pending = map[string]int64{}
	return out, nil
}

type fakePosts struct {
	added   map[string]int64
	failFor string
}

func (f *fakePosts) AddViews(_ context.Context, id string, delta int64) error {
	if id == f.failFor {
		return errors.New("gone")
	}
	if f.added == nil {
		f.added = map[string]int64{}
	}
	f.added[id] += delta
	return nil
}

func (f *fakePosts) Create(_ context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	return p, nil
}
func (f *fakePosts) Update(_ context.Context, _ *postEntity.Post) error { return nil }
func (f *fakePosts) Delete(_ context.Context, _ string) error           { return nil }
func (f *fakePosts) FindVisibleByID(_ context.Context, _ string, _ postEntity.Visibility) (*postEntity.Post, error) {
	return nil, postPort.ErrNotFound
}
func (f *fakePosts) ListVisible(_ context.Context, _ postEntity.Visibility, _ postPort.Filter, _ int) (*postPort.Page, error) {
	return &postPort.Page{}, nil
}

func TestFlushMovesPendingCounters(t *testing.T) {
	views := &fakeViews{pending: map[string]int64{"a": 3, "b": 1}}
	posts := &fakePosts{}
	w := NewViewSyncWorker(views, posts, 0, 100, zap.NewNop())

	w.flush(context.Background())

	assert.Equal(t, int64(3), posts.added["a"])
	assert.Equal(t, int64(1), posts.added["b"])
	assert.Empty(t, views.pending)
}

func TestFlushSkipsFailedPost(t *testing.T) {
	views := &fakeViews{pending: map[string]int64{"a": 2, "gone": 5}}
	posts := &fakePosts{failFor: "gone"}
	w := NewViewSyncWorker(views, posts, 0, 100, zap.NewNop())

	w.flush(context.Background())

	assert.Equal(t, int64(2), posts.added["a"])
	assert.NotContains(t, posts.added, "gone")
}

func TestRunStopsOnCancelWithoutWaitingOutInterval(t *testing.T) {
	w := NewViewSyncWorker(&fakeViews{}, &fakePosts{}, time.Hour, 100, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestFlushSurvivesDrainError(t *testing.T) {
	views := &fakeViews{drainErr: errors.New("redis down")}
	posts := &fakePosts{}
	w := NewViewSyncWorker(views, posts, 0, 100, zap.NewNop())

	w.flush(context.Background())

	assert.Empty(t, posts.added)
}
