package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FocusLoot_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start(context.Background())

	job := &testJob{executed: &executed}
	require.NoError(t, pool.Enqueue(context.Background(), job))
	require.NoError(t, pool.Enqueue(context.Background(), job))

	require.NoError(t, pool.Stop())
	assert.Equal(t, int32(TestExpectedJobCount), atomic.LoadInt32(&executed))
}

func TestPool_DrainsQueueOnStop(t *testing.T) {
	var executed int32
	pool := NewPool(1, 100)

	// Queue everything before any worker runs.
	for i := 0; i < 50; i++ {
		require.NoError(t, pool.Enqueue(context.Background(), &testJob{executed: &executed}))
	}
	pool.Start(context.Background())

	require.NoError(t, pool.Stop())
	assert.Equal(t, int32(50), atomic.LoadInt32(&executed))
}

func TestPool_CollectsErrors(t *testing.T) {
	errBoom := errors.New("boom")
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start(context.Background())

	require.NoError(t, pool.Enqueue(context.Background(), JobFunc(func(context.Context) error { return errBoom })))
	require.NoError(t, pool.Enqueue(context.Background(), JobFunc(func(context.Context) error { return nil })))

	err := pool.Stop()
	assert.ErrorIs(t, err, errBoom)

	// Stop is idempotent.
	assert.ErrorIs(t, pool.Stop(), errBoom)
}

func TestPool_EnqueueHonorsContext(t *testing.T) {
	pool := NewPool(1, 0) // unbuffered, no workers started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pool.Enqueue(ctx, JobFunc(func(context.Context) error { return nil }))
	assert.ErrorIs(t, err, context.Canceled)

	pool.Start(context.Background())
	assert.NoError(t, pool.Stop())
}

func TestPool_PassesContextToJobs(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	var seen atomic.Value
	pool := NewPool(1, 1)
	pool.Start(ctx)
	require.NoError(t, pool.Enqueue(context.Background(), JobFunc(func(jobCtx context.Context) error {
		seen.Store(jobCtx.Value(ctxKey{}))
		return nil
	})))
	require.NoError(t, pool.Stop())

	assert.Equal(t, "marker", seen.Load())
}

func TestPool_StopLeavesNoWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(8, 4)
		pool.Start(context.Background())
		for i := 0; i < 20; i++ {
			require.NoError(t, pool.Enqueue(context.Background(), JobFunc(func(context.Context) error { return nil })))
		}
		require.NoError(t, pool.Stop())
	})
}
