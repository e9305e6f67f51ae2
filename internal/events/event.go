package events

import "fmt"

// Kind tells the three event variants apart.
type Kind int

const (
	KindTick Kind = iota
	KindInput
	KindTerminate
)

// Event is a single item of the stream. Key is meaningful only for KindInput.
type Event struct {
	Kind Kind
	Key  KeyCode
}

func Tick() Event {
	return Event{Kind: KindTick}
}

func Input(key KeyCode) Event {
	return Event{Kind: KindInput, Key: key}
}

func Terminate() Event {
	return Event{Kind: KindTerminate}
}

func (e Event) String() string {
	switch e.Kind {
	case KindTick:
		return "tick"
	case KindInput:
		return fmt.Sprintf("input(%s)", e.Key)
	case KindTerminate:
		return "terminate"
	}
	return "unknown"
}
