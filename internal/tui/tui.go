// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal collaborator of the page machine: it turns
// bubbletea key messages into normalized key codes and renders the
// snapshots the machine publishes. It holds no vault state of its own.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/events"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/machine"
)

// inputBuffer absorbs key bursts (pastes) while the event source catches up.
const inputBuffer = 256

// Options configures the terminal UI.
type Options struct {
	// Version is shown in the title bar.
	Version string

	// programOptions replace the default alt-screen options in tests.
	programOptions []tea.ProgramOption
}

// TUI runs the bubbletea program. Key presses are published on [TUI.Input];
// snapshots are pushed with [TUI.Render].
type TUI struct {
	program *tea.Program
	input   chan events.KeyCode
	stopped chan struct{}
	logger  *logger.Logger
}

func New(opts Options, log *logger.Logger) *TUI {
	input := make(chan events.KeyCode, inputBuffer)
	stopped := make(chan struct{})

	programOptions := opts.programOptions
	if programOptions == nil {
		programOptions = []tea.ProgramOption{tea.WithAltScreen()}
	}

	model := newRootModel(input, stopped, opts.Version)
	return &TUI{
		program: tea.NewProgram(model, programOptions...),
		input:   input,
		stopped: stopped,
		logger:  log,
	}
}

// Input is the key stream for the event source. It is closed when the
// program exits.
func (t *TUI) Input() <-chan events.KeyCode {
	return t.input
}

// Render hands a snapshot to the program. It returns once the program took
// it or has exited.
func (t *TUI) Render(snap machine.Snapshot) {
	t.program.Send(snapshotMsg{snap: snap})
}

// Run blocks until the program exits. Cancelling ctx quits the program and
// restores the terminal. Run may be called once.
func (t *TUI) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		// unblocks a key send nobody reads anymore
		close(t.stopped)
		t.program.Quit()
	})
	defer stop()

	_, err := t.program.Run()
	// no Update runs after Run returns
	close(t.input)

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal program failed")
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
