package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// drain collects events until the stream ends or the timeout hits.
func drain(t *testing.T, s *Source, timeout time.Duration) []Event {
	t.Helper()
	out := make(chan []Event, 1)

	go func() {
		var got []Event
		for {
			ev, ok := s.Next()
			if !ok {
				out <- got
				return
			}
			got = append(got, ev)
		}
	}()

	select {
	case got := <-out:
		return got
	case <-time.After(timeout):
		t.Fatal("event stream did not finish")
		return nil
	}
}

func TestSource_DeliversInputInOrderAndTerminatesOnce(t *testing.T) {
	input := make(chan KeyCode)
	src := NewSource(time.Hour, input, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- src.Run(ctx) }()

	input <- Char('g')
	input <- Char('o')
	input <- Named(KeyEnter)
	cancel()

	require.NoError(t, <-errCh)

	got := drain(t, src, time.Second)
	require.Len(t, got, 4)
	assert.Equal(t, []Event{Input(Char('g')), Input(Char('o')), Input(Named(KeyEnter)), Terminate()}, got)
}

func TestSource_EmitsTicks(t *testing.T) {
	src := NewSource(time.Millisecond, nil, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	go func() { _ = src.Run(ctx) }()

	ev, ok := src.Next()
	require.True(t, ok)
	assert.Equal(t, KindTick, ev.Kind)

	cancel()
	got := drain(t, src, time.Second)
	require.NotEmpty(t, got)
	assert.Equal(t, Terminate(), got[len(got)-1])
	for _, ev := range got[:len(got)-1] {
		assert.Equal(t, KindTick, ev.Kind)
	}
}

func TestSource_CancelledBeforeRun(t *testing.T) {
	src := NewSource(time.Millisecond, nil, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, src.Run(ctx))
	assert.Equal(t, []Event{Terminate()}, drain(t, src, time.Second))
}

func TestSource_NotRestartable(t *testing.T) {
	src := NewSource(time.Millisecond, nil, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, src.Run(ctx))
	assert.ErrorIs(t, src.Run(ctx), ErrSourceStarted)
}

func TestSource_ClosedInputKeepsTicking(t *testing.T) {
	input := make(chan KeyCode)
	close(input)
	src := NewSource(time.Millisecond, input, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = src.Run(ctx) }()

	ev, ok := src.Next()
	require.True(t, ok)
	assert.Equal(t, KindTick, ev.Kind)
}

func TestNewSource_DefaultInterval(t *testing.T) {
	src := NewSource(0, nil, logger.Nop())
	assert.Equal(t, DefaultTickInterval, src.interval)
}
