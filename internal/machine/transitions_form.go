package machine

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/events"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (m *Machine) onFormKey(ctx context.Context, st *secretFormState, key events.KeyCode) error {
	if key.IsCtrl('c') {
		m.reset(listState{})
		return nil
	}

	if st.onNamePage() {
		switch key.Kind {
		case events.KeyChar:
			st.name = appendRune(st.name, key.Rune)
		case events.KeyBackspace:
			st.name = dropLastRune(st.name)
		case events.KeyEnter, events.KeyTab:
			st.toBody()
		}
		return nil
	}

	switch {
	case key.Kind == events.KeyChar:
		st.body = appendRune(st.body, key.Rune)
	case key.Kind == events.KeyBackspace:
		st.body = dropLastRune(st.body)
	case key.Kind == events.KeyEnter:
		st.body = appendRune(st.body, '\n')
	case key.Kind == events.KeyBackTab:
		st.toName()
	case key.IsCtrl('d'):
		return m.saveSecret(ctx, st)
	}

	return nil
}

// saveSecret encrypts and stores the form. The form stays open on failure.
func (m *Machine) saveSecret(ctx context.Context, st *secretFormState) error {
	draft := models.SecretDraft{
		Name:         st.name,
		Body:         st.body,
		OriginalName: st.originalName,
	}

	if err := m.vault.Save(ctx, draft); err != nil {
		return m.fail(fmt.Errorf("save %q: %w", st.name, err))
	}

	m.reset(listState{})
	m.stale = true
	m.status = fmt.Sprintf("saved %s", draft.Name)

	return nil
}
