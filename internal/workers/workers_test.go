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

// countingWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type countingWorker struct {
	runCount atomic.Int32
}

func (m *countingWorker) Run(context.Context) error {
	m.runCount.Add(1)
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &countingWorker{}

	ws := NewWorkers(w1, w2, w3)
	require.NoError(t, ws.Run(context.Background()))

	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not block or panic on empty workers list
	require.NoError(t, NewWorkers().Run(context.Background()))
	require.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &countingWorker{}
	ws := NewWorkers(w)

	for range 3 {
		require.NoError(t, ws.Run(context.Background()))
	}

	assert.Equal(t, int32(3), w.runCount.Load())
}

func TestWorkers_Run_ErrorCancelsOthers(t *testing.T) {
	boom := errors.New("boom")

	blocking := WorkerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})
	failing := WorkerFunc(func(context.Context) error {
		return boom
	})

	done := make(chan error, 1)
	go func() { done <- NewWorkers(blocking, failing).Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop after a failure")
	}
}

func TestWorkers_Run_ParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	w := WorkerFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})

	done := make(chan error, 1)
	go func() { done <- NewWorkers(w).Run(ctx) }()

	<-started
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("workers ignored cancellation")
	}
}
