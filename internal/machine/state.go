package machine

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/awnumar/memguard"
)

// PageState is the active page together with the buffers only that page
// family uses. The set of implementations is closed: listState,
// secretFormState, searchState and exportState.
type PageState interface {
	Page() Page
	pageState()
}

type listState struct{}

func (listState) Page() Page { return PageList }
func (listState) pageState() {}

// secretFormState backs the create and edit flows. originalName is empty
// while creating.
type secretFormState struct {
	page         Page
	name         string
	body         string
	originalName string
}

func (s *secretFormState) Page() Page { return s.page }
func (*secretFormState) pageState()   {}

func (s *secretFormState) editing() bool {
	return s.page == PageEditName || s.page == PageEditBody
}

func (s *secretFormState) onNamePage() bool {
	return s.page == PageCreateName || s.page == PageEditName
}

// toBody and toName switch between the paired pages of one flow.
func (s *secretFormState) toBody() {
	if s.editing() {
		s.page = PageEditBody
		return
	}
	s.page = PageCreateBody
}

func (s *secretFormState) toName() {
	if s.editing() {
		s.page = PageEditName
		return
	}
	s.page = PageCreateName
}

// searchState keeps the term and the filtered view over the full list.
type searchState struct {
	page     Page
	term     string
	filtered []string
	selected int
}

func (s *searchState) Page() Page { return s.page }
func (*searchState) pageState()   {}

// refilter rebuilds the filtered view from all and clamps the selection.
func (s *searchState) refilter(all []string) {
	s.filtered = filterNames(all, s.term)
	s.selected = clamp(s.selected, len(s.filtered))
}

type exportState struct {
	page       Page
	location   string
	passphrase []byte
}

func (s *exportState) Page() Page { return s.page }
func (*exportState) pageState()   {}

func (s *exportState) wipe() {
	memguard.WipeBytes(s.passphrase)
	s.passphrase = nil
}

// filterNames keeps names containing term, ignoring case, in their original
// order. An empty term keeps everything.
func filterNames(all []string, term string) []string {
	if term == "" {
		return slices.Clone(all)
	}

	needle := strings.ToLower(term)
	out := make([]string, 0, len(all))
	for _, name := range all {
		if strings.Contains(strings.ToLower(name), needle) {
			out = append(out, name)
		}
	}
	return out
}

// clamp keeps idx within [0, max(0, n-1)].
func clamp(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func appendRune(s string, r rune) string {
	return s + string(r)
}

func dropLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

func removeName(names []string, name string) []string {
	if i := slices.Index(names, name); i >= 0 {
		return slices.Delete(names, i, i+1)
	}
	return names
}
