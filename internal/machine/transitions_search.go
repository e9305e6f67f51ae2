package machine

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/events"
)

func (m *Machine) onSearchKey(ctx context.Context, st *searchState, key events.KeyCode) error {
	if key.IsCtrl('c') {
		m.reset(listState{})
		return nil
	}

	if st.page == PageSearchName {
		switch key.Kind {
		case events.KeyChar:
			st.term = appendRune(st.term, key.Rune)
			st.refilter(m.names)
		case events.KeyBackspace:
			st.term = dropLastRune(st.term)
			st.refilter(m.names)
		case events.KeyEnter, events.KeyTab, events.KeyBackTab:
			st.page = PageSearchBody
		}
		return nil
	}

	switch {
	case key.Kind == events.KeyDown:
		if st.selected < len(st.filtered)-1 {
			st.selected++
		}
	case key.Kind == events.KeyUp:
		if st.selected > 0 {
			st.selected--
		}
	case key.Kind == events.KeyTab, key.Kind == events.KeyBackTab:
		st.page = PageSearchName
	case key.Kind == events.KeyEsc, key.IsChar('c'), key.IsChar('q'):
		m.reset(listState{})
	case key.IsChar('a'):
		m.reset(&secretFormState{page: PageCreateName})
	case isSelectionKey(key):
		name, ok := st.selectedName()
		if !ok {
			return m.fail(ErrInvalidSelection)
		}
		return m.onSelection(ctx, key, name)
	}

	return nil
}

func (s *searchState) selectedName() (string, bool) {
	if len(s.filtered) == 0 {
		return "", false
	}
	return s.filtered[s.selected], true
}
