package machine

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-pass-vault/internal/events"
)

func (m *Machine) onListKey(ctx context.Context, key events.KeyCode) error {
	switch {
	case key.Kind == events.KeyDown:
		if m.selected < len(m.names)-1 {
			m.selected++
		}
	case key.Kind == events.KeyUp:
		if m.selected > 0 {
			m.selected--
		}
	case key.IsChar('a'):
		m.reset(&secretFormState{page: PageCreateName})
	case isSelectionKey(key):
		name, ok := m.selectedName()
		if !ok {
			return m.fail(ErrInvalidSelection)
		}
		return m.onSelection(ctx, key, name)
	case key.IsChar('/'):
		m.reset(&searchState{page: PageSearchName, filtered: slices.Clone(m.names)})
	case key.IsChar('p'):
		m.reset(&exportState{page: PageExportLocation, location: m.defaultExportPath})
	case key.IsChar('x'):
		// without a default there is nothing to skip to; ask for the location
		page := PageExportPassword
		if m.defaultExportPath == "" {
			page = PageExportLocation
		}
		m.reset(&exportState{page: page, location: m.defaultExportPath})
	}

	return nil
}

func (m *Machine) selectedName() (string, bool) {
	if len(m.names) == 0 {
		return "", false
	}
	return m.names[m.selected], true
}

// isSelectionKey reports whether key acts on the selected secret.
func isSelectionKey(key events.KeyCode) bool {
	return key.IsChar('e') || key.IsChar('d') || key.Kind == events.KeyEnter
}

func (m *Machine) onSelection(ctx context.Context, key events.KeyCode, name string) error {
	switch {
	case key.IsChar('e'):
		return m.startEdit(ctx, name)
	case key.IsChar('d'):
		return m.deleteSecret(ctx, name)
	default:
		return m.copySecret(ctx, name)
	}
}

// startEdit decrypts name into a fresh edit form. On failure the current
// page stays.
func (m *Machine) startEdit(ctx context.Context, name string) error {
	body, err := m.vault.Reveal(ctx, name)
	if err != nil {
		return m.fail(fmt.Errorf("open %q for editing: %w", name, err))
	}

	m.reset(&secretFormState{
		page:         PageEditName,
		name:         name,
		body:         body,
		originalName: name,
	})

	return nil
}

// deleteSecret removes name from the store and from every list in view.
func (m *Machine) deleteSecret(ctx context.Context, name string) error {
	if err := m.vault.Delete(ctx, name); err != nil {
		return m.fail(fmt.Errorf("delete %q: %w", name, err))
	}

	m.names = removeName(m.names, name)
	m.selected = clamp(m.selected, len(m.names))

	if st, ok := m.state.(*searchState); ok {
		st.filtered = removeName(st.filtered, name)
		st.selected = clamp(st.selected, len(st.filtered))
	}

	m.status = fmt.Sprintf("deleted %s", name)
	return nil
}

func (m *Machine) copySecret(ctx context.Context, name string) error {
	body, err := m.vault.Reveal(ctx, name)
	if err != nil {
		return m.fail(fmt.Errorf("reveal %q: %w", name, err))
	}

	if err := m.clipboard.WriteAll(body); err != nil {
		return m.fail(fmt.Errorf("copy %q to clipboard: %w", name, err))
	}

	m.status = fmt.Sprintf("copied %s to clipboard", name)
	return nil
}
