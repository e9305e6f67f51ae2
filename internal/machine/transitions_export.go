package machine

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/internal/events"
)

func (m *Machine) onExportKey(ctx context.Context, st *exportState, key events.KeyCode) error {
	if key.IsCtrl('c') {
		m.reset(listState{})
		return nil
	}

	if st.page == PageExportLocation {
		switch key.Kind {
		case events.KeyChar:
			st.location = appendRune(st.location, key.Rune)
		case events.KeyBackspace:
			st.location = dropLastRune(st.location)
		case events.KeyEnter:
			if strings.TrimSpace(st.location) == "" {
				return m.fail(ErrEmptyExportLocation)
			}
			st.page = PageExportPassword
		}
		return nil
	}

	switch key.Kind {
	case events.KeyChar:
		st.passphrase = utf8.AppendRune(st.passphrase, key.Rune)
	case events.KeyBackspace:
		if len(st.passphrase) > 0 {
			_, size := utf8.DecodeLastRune(st.passphrase)
			clear(st.passphrase[len(st.passphrase)-size:])
			st.passphrase = st.passphrase[:len(st.passphrase)-size]
		}
	case events.KeyEnter:
		return m.export(ctx, st)
	}

	return nil
}

// export wraps the master key under the typed passphrase and writes the
// bundle. The page stays open on failure.
func (m *Machine) export(ctx context.Context, st *exportState) error {
	location := strings.TrimSpace(st.location)
	if location == "" {
		return m.fail(ErrEmptyExportLocation)
	}

	if err := m.vault.Export(ctx, location, st.passphrase); err != nil {
		return m.fail(fmt.Errorf("export master key: %w", err))
	}

	m.reset(listState{})
	m.status = fmt.Sprintf("master key exported to %s", location)

	return nil
}
