package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	for p := PageList; p <= PageExportPassword; p++ {
		got, err := ParsePage(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePage("  Search_Body ")
	require.NoError(t, err)
	assert.Equal(t, PageSearchBody, got)

	_, err = ParsePage("settings")
	assert.ErrorIs(t, err, ErrUnknownPage)
}

func TestParsePages(t *testing.T) {
	pages, err := ParsePages([]string{"list", "", "search_body"})
	require.NoError(t, err)
	assert.Equal(t, []Page{PageList, PageSearchBody}, pages)

	_, err = ParsePages([]string{"list", "nope"})
	assert.ErrorIs(t, err, ErrUnknownPage)
}

func TestPage_StringOutOfRange(t *testing.T) {
	assert.Equal(t, "page(42)", Page(42).String())
}

func TestDirective_String(t *testing.T) {
	assert.Equal(t, "continue", Continue.String())
	assert.Equal(t, "terminate", Terminate.String())
}

func TestFilterNames(t *testing.T) {
	all := []string{"GitHub", "gitlab", "netflix"}

	assert.Equal(t, []string{"GitHub", "gitlab"}, filterNames(all, "git"))
	assert.Equal(t, all, filterNames(all, ""))
	assert.Empty(t, filterNames(all, "zzz"))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(0, 0))
	assert.Equal(t, 0, clamp(5, 0))
	assert.Equal(t, 2, clamp(5, 3))
	assert.Equal(t, 0, clamp(-1, 3))
	assert.Equal(t, 1, clamp(1, 3))
}
