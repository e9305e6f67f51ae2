package events

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// DefaultTickInterval is the Tick period used when none is configured.
const DefaultTickInterval = 8 * time.Millisecond

// ErrSourceStarted is returned by Run on a source that already ran.
var ErrSourceStarted = errors.New("event source already started")

// Source produces the event stream. Key presses arrive on the input channel
// given to [NewSource]; a nil or closed channel only stops input, the ticker
// keeps running until the context is cancelled.
type Source struct {
	interval time.Duration
	input    <-chan KeyCode
	queue    *Queue
	started  atomic.Bool
	logger   *logger.Logger
}

func NewSource(interval time.Duration, input <-chan KeyCode, log *logger.Logger) *Source {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	return &Source{
		interval: interval,
		input:    input,
		queue:    NewQueue(),
		logger:   log,
	}
}

// Run is the producer loop. It returns nil after ctx is cancelled, once the
// final Terminate has been queued.
func (s *Source) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrSourceStarted
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	input := s.input
	for {
		// cancellation wins over pending ticks and keys
		if ctx.Err() != nil {
			break
		}

		select {
		case <-ctx.Done():
		case <-ticker.C:
			s.queue.Push(Tick())
		case key, ok := <-input:
			if !ok {
				s.logger.Debug().Str("func", "Source.Run").Msg("input channel closed")
				input = nil
				continue
			}
			s.queue.Push(Input(key))
		}
	}

	s.queue.Push(Terminate())
	s.queue.Close()
	s.logger.Debug().Str("func", "Source.Run").Msg("event source stopped")

	return nil
}

// Next returns the next event for the consumer. It blocks until one is
// available and returns false after Terminate has been delivered.
func (s *Source) Next() (Event, bool) {
	return s.queue.Next()
}
