package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/events"
)

var namedKeys = map[tea.KeyType]events.KeyKind{
	tea.KeyEnter:     events.KeyEnter,
	tea.KeyTab:       events.KeyTab,
	tea.KeyShiftTab:  events.KeyBackTab,
	tea.KeyBackspace: events.KeyBackspace,
	tea.KeyDelete:    events.KeyDelete,
	tea.KeyUp:        events.KeyUp,
	tea.KeyDown:      events.KeyDown,
	tea.KeyLeft:      events.KeyLeft,
	tea.KeyRight:     events.KeyRight,
	tea.KeyHome:      events.KeyHome,
	tea.KeyEnd:       events.KeyEnd,
	tea.KeyPgUp:      events.KeyPageUp,
	tea.KeyPgDown:    events.KeyPageDown,
	tea.KeyInsert:    events.KeyInsert,
	tea.KeyEsc:       events.KeyEsc,
	// most terminals send ^H for ctrl+backspace
	tea.KeyCtrlH: events.KeyCtrlBackspace,
}

var functionKeys = map[tea.KeyType]int{
	tea.KeyF1: 1, tea.KeyF2: 2, tea.KeyF3: 3, tea.KeyF4: 4,
	tea.KeyF5: 5, tea.KeyF6: 6, tea.KeyF7: 7, tea.KeyF8: 8,
	tea.KeyF9: 9, tea.KeyF10: 10, tea.KeyF11: 11, tea.KeyF12: 12,
}

// keyCodes normalizes one bubbletea key message. A paste yields one code
// per rune; unmapped keys yield nothing.
func keyCodes(msg tea.KeyMsg) []events.KeyCode {
	switch msg.Type {
	case tea.KeyRunes:
		codes := make([]events.KeyCode, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if msg.Alt && !msg.Paste {
				codes = append(codes, events.Alt(r))
				continue
			}
			codes = append(codes, events.Char(r))
		}
		return codes
	case tea.KeySpace:
		return []events.KeyCode{events.Char(' ')}
	case tea.KeyBackspace:
		if msg.Alt {
			return []events.KeyCode{events.Named(events.KeyAltBackspace)}
		}
	case tea.KeyDelete:
		if msg.Alt {
			return []events.KeyCode{events.Named(events.KeyAltDelete)}
		}
	}

	if kind, ok := namedKeys[msg.Type]; ok {
		return []events.KeyCode{events.Named(kind)}
	}
	if n, ok := functionKeys[msg.Type]; ok {
		return []events.KeyCode{events.F(n)}
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return []events.KeyCode{events.Ctrl(rune('a' + int(msg.Type-tea.KeyCtrlA)))}
	}

	return nil
}
