package machine

import (
	"slices"
	"unicode/utf8"
)

// Snapshot is a read-only copy of the machine handed to renderers. Slices
// are owned by the snapshot; mutating them does not affect the machine.
type Snapshot struct {
	Page Page

	Names    []string
	Selected int

	// Search pages.
	SearchTerm       string
	Filtered         []string
	FilteredSelected int

	// Create and edit pages. OriginalName is set while editing.
	NameBuffer   string
	BodyBuffer   string
	OriginalName string

	// Export pages. Only the passphrase length is exposed.
	ExportLocation   string
	PassphraseLength int

	Err        bool
	ErrMessage string
	Status     string
}

// Snapshot returns a deep copy of the current state.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		Page:       m.state.Page(),
		Names:      slices.Clone(m.names),
		Selected:   m.selected,
		Err:        m.errFlag,
		ErrMessage: m.errMessage,
		Status:     m.status,
	}
	if snap.Names == nil {
		snap.Names = []string{}
	}

	switch st := m.state.(type) {
	case *secretFormState:
		snap.NameBuffer = st.name
		snap.BodyBuffer = st.body
		snap.OriginalName = st.originalName
	case *searchState:
		snap.SearchTerm = st.term
		snap.Filtered = slices.Clone(st.filtered)
		snap.FilteredSelected = st.selected
	case *exportState:
		snap.ExportLocation = st.location
		snap.PassphraseLength = utf8.RuneCount(st.passphrase)
	}

	return snap
}

// Equal reports whether two snapshots would render the same.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.Page == other.Page &&
		s.Selected == other.Selected &&
		s.SearchTerm == other.SearchTerm &&
		s.FilteredSelected == other.FilteredSelected &&
		s.NameBuffer == other.NameBuffer &&
		s.BodyBuffer == other.BodyBuffer &&
		s.OriginalName == other.OriginalName &&
		s.ExportLocation == other.ExportLocation &&
		s.PassphraseLength == other.PassphraseLength &&
		s.Err == other.Err &&
		s.ErrMessage == other.ErrMessage &&
		s.Status == other.Status &&
		slices.Equal(s.Names, other.Names) &&
		slices.Equal(s.Filtered, other.Filtered)
}
