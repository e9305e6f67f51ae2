package console

import "errors"

var (
	// ErrNotTerminal is returned when a passphrase is requested but the
	// input is not a terminal.
	ErrNotTerminal = errors.New("cannot read passphrase: input is not a terminal")

	// ErrPassphraseMismatch is returned when the confirmation differs from
	// the first entry.
	ErrPassphraseMismatch = errors.New("passphrases do not match")
)
