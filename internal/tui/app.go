package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/events"
	"github.com/MKhiriev/go-pass-vault/internal/machine"
)

// rootModel forwards keys and shows the latest snapshot:
// 1) every key message is normalized and sent on the input channel
// 2) snapshot messages replace what is shown
// 3) window size messages resize the layout
type rootModel struct {
	input   chan<- events.KeyCode
	stopped <-chan struct{}

	snap    machine.Snapshot
	ready   bool
	version string

	width  int
	height int
}

func newRootModel(input chan<- events.KeyCode, stopped <-chan struct{}, version string) rootModel {
	return rootModel{
		input:   input,
		stopped: stopped,
		version: version,
		snap:    machine.Snapshot{Page: machine.PageList},
	}
}

func (r rootModel) Init() tea.Cmd {
	return nil
}

func (r rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		for _, code := range keyCodes(msg) {
			select {
			case r.input <- code:
			case <-r.stopped:
				return r, nil
			}
		}
		return r, nil
	case snapshotMsg:
		r.snap = msg.snap
		r.ready = true
		return r, nil
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		return r, nil
	}

	return r, nil
}

func (r rootModel) View() string {
	if !r.ready {
		return renderPage(r.title(), "loading...", "")
	}
	return renderSnapshot(r.snap, r.title(), r.width, r.height)
}

func (r rootModel) title() string {
	if r.version == "" {
		return "go-pass-vault"
	}
	return "go-pass-vault " + r.version
}
