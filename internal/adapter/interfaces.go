// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides thin wrappers around host facilities the vault
// talks to but does not own.
//
// The only adapter today is the system clipboard ([NewSystemClipboard]),
// which the page machine uses to hand a revealed secret to the operator.
// Error values defined in errors.go let callers use [errors.Is] without
// depending on the underlying library.
package adapter

// Clipboard writes text to the host clipboard. It satisfies the machine's
// clipboard collaborator.
type Clipboard interface {
	// WriteAll replaces the clipboard contents with text.
	WriteAll(text string) error
}
