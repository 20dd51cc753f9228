// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingWorker tracks how many times Run was called.
type countingWorker struct {
	runCount atomic.Int32
	err      error
}

func (w *countingWorker) Run(context.Context) error {
	w.runCount.Add(1)
	return w.err
}

func TestPool_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}

	errs := NewPool(2).Run(context.Background(), w1, w2, w3)

	require.Len(t, errs, 3)
	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
		assert.NoError(t, errs[i])
	}
}

func TestPool_Run_Empty(t *testing.T) {
	errs := NewPool(4).Run(context.Background())
	assert.Empty(t, errs)
}

func TestPool_Run_FailureDoesNotStopOthers(t *testing.T) {
	boom := errors.New("boom")
	ok1, failing, ok2 := &countingWorker{}, &countingWorker{err: boom}, &countingWorker{}

	errs := NewPool(1).Run(context.Background(), ok1, failing, ok2)

	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], boom)
	assert.NoError(t, errs[2])
	assert.Equal(t, int32(1), ok2.runCount.Load())
}

func TestPool_Run_RespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32

	worker := WorkerFunc(func(context.Context) error {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return nil
	})

	jobs := make([]Worker, 8)
	for i := range jobs {
		jobs[i] = worker
	}

	NewPool(3).Run(context.Background(), jobs...)
	assert.LessOrEqual(t, peak.Load(), int32(3))
	assert.GreaterOrEqual(t, peak.Load(), int32(1))
}

func TestPool_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &countingWorker{}
	errs := NewPool(0).Run(ctx, w)

	assert.ErrorIs(t, errs[0], context.Canceled)
	assert.Equal(t, int32(0), w.runCount.Load())
}
