package events

import (
	"fmt"
	"unicode"
)

// KeyKind enumerates the normalized key vocabulary.
type KeyKind int

const (
	KeyNull KeyKind = iota
	KeyChar
	KeyCtrl
	KeyAlt
	KeyEnter
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyEsc
	KeyF
	KeyCtrlBackspace
	KeyCtrlDelete
	KeyAltBackspace
	KeyAltDelete
)

var keyKindNames = map[KeyKind]string{
	KeyNull:          "null",
	KeyEnter:         "enter",
	KeyTab:           "tab",
	KeyBackTab:       "shift+tab",
	KeyBackspace:     "backspace",
	KeyDelete:        "delete",
	KeyUp:            "up",
	KeyDown:          "down",
	KeyLeft:          "left",
	KeyRight:         "right",
	KeyHome:          "home",
	KeyEnd:           "end",
	KeyPageUp:        "pgup",
	KeyPageDown:      "pgdown",
	KeyInsert:        "insert",
	KeyEsc:           "esc",
	KeyCtrlBackspace: "ctrl+backspace",
	KeyCtrlDelete:    "ctrl+delete",
	KeyAltBackspace:  "alt+backspace",
	KeyAltDelete:     "alt+delete",
}

// KeyCode is one normalized key press. Rune is set for Char, Ctrl and Alt
// (lower-cased for Ctrl); N is set for F keys.
type KeyCode struct {
	Kind KeyKind
	Rune rune
	N    int
}

func Char(r rune) KeyCode {
	return KeyCode{Kind: KeyChar, Rune: r}
}

func Ctrl(r rune) KeyCode {
	return KeyCode{Kind: KeyCtrl, Rune: unicode.ToLower(r)}
}

func Alt(r rune) KeyCode {
	return KeyCode{Kind: KeyAlt, Rune: r}
}

func F(n int) KeyCode {
	return KeyCode{Kind: KeyF, N: n}
}

// Named returns the key code of a key without a payload, such as KeyEnter.
func Named(kind KeyKind) KeyCode {
	return KeyCode{Kind: kind}
}

// IsChar reports whether k is the printable character r.
func (k KeyCode) IsChar(r rune) bool {
	return k.Kind == KeyChar && k.Rune == r
}

// IsCtrl reports whether k is Ctrl combined with r.
func (k KeyCode) IsCtrl(r rune) bool {
	return k.Kind == KeyCtrl && k.Rune == unicode.ToLower(r)
}

func (k KeyCode) String() string {
	switch k.Kind {
	case KeyChar:
		return string(k.Rune)
	case KeyCtrl:
		return "ctrl+" + string(k.Rune)
	case KeyAlt:
		return "alt+" + string(k.Rune)
	case KeyF:
		return fmt.Sprintf("f%d", k.N)
	}

	if name, ok := keyKindNames[k.Kind]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k.Kind))
}
