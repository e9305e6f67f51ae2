package machine

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/events"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Options configures a Machine.
type Options struct {
	// TerminatePages are the pages on which q and Ctrl+c end the session.
	// Nil means only the list page.
	TerminatePages []Page

	// DefaultExportPath prefills the export location.
	DefaultExportPath string
}

// Machine is the single-threaded reducer over page states. It is not safe
// for concurrent use; one consumer goroutine owns it.
type Machine struct {
	vault     Vault
	clipboard Clipboard
	logger    *logger.Logger

	terminatePages    map[Page]bool
	defaultExportPath string

	state    PageState
	names    []string
	selected int
	stale    bool

	errFlag    bool
	errMessage string
	status     string

	terminated bool
}

// New returns a machine on the list page. The list starts stale, so the
// first Tick loads it.
func New(vault Vault, clipboard Clipboard, opts Options, log *logger.Logger) *Machine {
	pages := opts.TerminatePages
	if pages == nil {
		pages = []Page{PageList}
	}

	terminate := make(map[Page]bool, len(pages))
	for _, p := range pages {
		terminate[p] = true
	}

	return &Machine{
		vault:             vault,
		clipboard:         clipboard,
		logger:            log,
		terminatePages:    terminate,
		defaultExportPath: opts.DefaultExportPath,
		state:             listState{},
		names:             []string{},
		stale:             true,
	}
}

// Page returns the active page.
func (m *Machine) Page() Page {
	return m.state.Page()
}

// Apply processes one event. Failures of the triggered vault operation are
// returned and also recorded in the error flag; they never stop the
// session. After Terminate has been returned every further event is
// ignored.
func (m *Machine) Apply(ctx context.Context, ev events.Event) (Directive, error) {
	if m.terminated {
		return Terminate, nil
	}

	switch ev.Kind {
	case events.KindTerminate:
		m.terminate()
		return Terminate, nil
	case events.KindTick:
		return Continue, m.onTick(ctx)
	case events.KindInput:
		return m.onKey(ctx, ev.Key)
	}

	return Continue, nil
}

func (m *Machine) terminate() {
	m.terminated = true
	m.reset(listState{})
}

func (m *Machine) onTick(ctx context.Context) error {
	if !m.stale {
		return nil
	}

	names, err := m.vault.List(ctx)
	if err != nil {
		return m.fail(fmt.Errorf("reload secrets: %w", err))
	}

	m.names = names
	if m.names == nil {
		m.names = []string{}
	}
	m.selected = clamp(m.selected, len(m.names))
	m.stale = false

	if st, ok := m.state.(*searchState); ok {
		st.refilter(m.names)
	}

	return nil
}

func (m *Machine) onKey(ctx context.Context, key events.KeyCode) (Directive, error) {
	m.errFlag = false
	m.errMessage = ""
	m.status = ""

	if m.terminatePages[m.state.Page()] && (key.IsChar('q') || key.IsCtrl('c')) {
		m.terminate()
		return Terminate, nil
	}

	var err error
	switch st := m.state.(type) {
	case listState:
		err = m.onListKey(ctx, key)
	case *secretFormState:
		err = m.onFormKey(ctx, st, key)
	case *searchState:
		err = m.onSearchKey(ctx, st, key)
	case *exportState:
		err = m.onExportKey(ctx, st, key)
	}

	return Continue, err
}

// reset replaces the page state, dropping the buffers of the old page.
func (m *Machine) reset(next PageState) {
	if st, ok := m.state.(*exportState); ok {
		st.wipe()
	}
	m.state = next
}

func (m *Machine) fail(err error) error {
	m.errFlag = true
	m.errMessage = app.UserMessage(err)
	m.logger.Debug().Err(err).Str("page", m.state.Page().String()).Msg("transition failed")
	return err
}
