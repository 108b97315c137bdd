package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"

	"echofeed/storage"
)

// newTestStore builds a store backed by an in-process redis. The clock is
// replaced with a deterministic one that advances a second per call, so
// ordering assertions do not depend on wall-clock resolution.
func newTestStore(t *testing.T) (*Store, *storage.Adapter) {
	t.Helper()

	mr := miniredis.RunT(t)
	kv := storage.NewRedisKV(storage.NewRedisClient(mr.Addr()))
	t.Cleanup(func() { _ = kv.Close() })

	adapter := storage.NewAdapter(kv, zap.NewNop())
	s := New(adapter, zap.NewNop())
	s.now = testClock()
	return s, adapter
}

func testClock() func() time.Time {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}

func ctx() context.Context {
	return context.Background()
}
