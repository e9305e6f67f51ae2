package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-vault/internal/machine"
)

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name              string
		n, selected, rows int
		wantFrom, wantTo  int
	}{
		{"fits", 3, 2, 10, 0, 3},
		{"no height known", 50, 40, 0, 0, 50},
		{"top", 50, 0, 10, 0, 10},
		{"middle", 50, 25, 10, 20, 30},
		{"bottom", 50, 49, 10, 40, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := visibleRange(tt.n, tt.selected, tt.rows)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
			assert.GreaterOrEqual(t, tt.selected, from)
			assert.Less(t, tt.selected, to)
		})
	}
}

func TestRenderSnapshot_List(t *testing.T) {
	snap := machine.Snapshot{Page: machine.PageList, Names: []string{"github", "netflix"}, Selected: 1}

	out := renderSnapshot(snap, "go-pass-vault", 80, 40)

	assert.Contains(t, out, "github")
	assert.Contains(t, out, "> netflix")
	assert.Contains(t, out, "create new")
	assert.Contains(t, out, "quit")
}

func TestRenderSnapshot_EmptyList(t *testing.T) {
	out := renderSnapshot(machine.Snapshot{Page: machine.PageList}, "go-pass-vault", 80, 40)

	assert.Contains(t, out, "No secrets yet")
}

func TestRenderSnapshot_ErrorAndStatus(t *testing.T) {
	snap := machine.Snapshot{Page: machine.PageList, Err: true, ErrMessage: "wrong passphrase", Status: "copied github"}

	out := renderSnapshot(snap, "go-pass-vault", 80, 40)

	assert.Contains(t, out, "Error: wrong passphrase")
	assert.Contains(t, out, "copied github")
}

func TestRenderSnapshot_FormShowsBuffers(t *testing.T) {
	snap := machine.Snapshot{Page: machine.PageEditBody, NameBuffer: "github", BodyBuffer: "s3cr3t", OriginalName: "github"}

	out := renderSnapshot(snap, "go-pass-vault", 80, 40)

	assert.Contains(t, out, "edit github")
	assert.Contains(t, out, "Password Name")
	assert.Contains(t, out, "s3cr3t")
	assert.Contains(t, out, "ctrl+d")
	assert.NotContains(t, out, "quit")
}

func TestRenderSnapshot_SearchNoMatches(t *testing.T) {
	snap := machine.Snapshot{Page: machine.PageSearchName, SearchTerm: "zzz", Names: []string{"github"}}

	out := renderSnapshot(snap, "go-pass-vault", 80, 40)

	assert.Contains(t, out, "zzz")
	assert.Contains(t, out, "No matches.")
}

func TestRenderSnapshot_ExportMasksPassphrase(t *testing.T) {
	snap := machine.Snapshot{Page: machine.PageExportPassword, ExportLocation: "/tmp/key.export", PassphraseLength: 4}

	out := renderSnapshot(snap, "go-pass-vault", 80, 40)

	assert.Contains(t, out, "/tmp/key.export")
	assert.Contains(t, out, "****")
	assert.False(t, strings.Contains(out, "*****"))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "жж", fitText("жжжж", 2))
}
