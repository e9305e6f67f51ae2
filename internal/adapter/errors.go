package adapter

import "errors"

var (
	// ErrClipboardUnavailable is returned when no clipboard utility is
	// installed (xclip, xsel or wl-copy on Linux).
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// ErrClipboardWrite is returned when the clipboard utility fails.
	ErrClipboardWrite = errors.New("clipboard write failed")
)
