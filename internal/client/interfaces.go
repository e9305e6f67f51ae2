// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/events"
	"github.com/MKhiriev/go-pass-vault/internal/machine"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Reducer consumes events one at a time. *machine.Machine implements it.
type Reducer interface {
	Apply(ctx context.Context, ev events.Event) (machine.Directive, error)
	Snapshot() machine.Snapshot
}

// UI is the terminal collaborator: it produces keys and renders snapshots.
// *tui.TUI implements it.
type UI interface {
	Input() <-chan events.KeyCode
	Render(snap machine.Snapshot)
	Run(ctx context.Context) error
}
