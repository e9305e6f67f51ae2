package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue()
	q.Push(Input(Char('a')))
	q.Push(Tick())
	q.Push(Input(Char('b')))
	q.Close()

	var got []Event
	for {
		ev, ok := q.Next()
		if !ok {
			break
		}
		got = append(got, ev)
	}

	assert.Equal(t, []Event{Input(Char('a')), Tick(), Input(Char('b'))}, got)
}

func TestQueue_CoalescesConsecutiveTicks(t *testing.T) {
	q := NewQueue()
	q.Push(Tick())
	q.Push(Tick())
	q.Push(Tick())
	assert.Equal(t, 1, q.Len())

	q.Push(Input(Char('x')))
	q.Push(Tick())
	q.Push(Tick())
	assert.Equal(t, 3, q.Len())
}

func TestQueue_PushAfterClose(t *testing.T) {
	q := NewQueue()
	q.Close()

	assert.False(t, q.Push(Tick()))
	_, ok := q.Next()
	assert.False(t, ok)
}

func TestQueue_NextBlocksUntilPush(t *testing.T) {
	q := NewQueue()
	done := make(chan Event)

	go func() {
		ev, _ := q.Next()
		done <- ev
	}()

	select {
	case <-done:
		t.Fatal("Next returned before anything was pushed")
	case <-time.After(20 * time.Millisecond):
	}

	q.Push(Input(Named(KeyEnter)))

	select {
	case ev := <-done:
		assert.Equal(t, Input(Named(KeyEnter)), ev)
	case <-time.After(time.Second):
		t.Fatal("Next did not wake up")
	}
}

func TestQueue_ConcurrentProducerKeepsOrder(t *testing.T) {
	q := NewQueue()
	const n = 1000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Push(Input(Char(rune('a' + i%26))))
		}
		q.Close()
	}()

	count := 0
	for {
		ev, ok := q.Next()
		if !ok {
			break
		}
		require.Equal(t, rune('a'+count%26), ev.Key.Rune)
		count++
	}
	wg.Wait()

	assert.Equal(t, n, count)
}
