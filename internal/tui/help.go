package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/MKhiriev/go-pass-vault/internal/machine"
)

type keyMap struct {
	up      key.Binding
	down    key.Binding
	create  key.Binding
	edit    key.Binding
	delete  key.Binding
	copy    key.Binding
	search  key.Binding
	export  key.Binding
	quickEx key.Binding
	quit    key.Binding
	cancel  key.Binding
	next    key.Binding
	back    key.Binding
	save    key.Binding
	results key.Binding
	term    key.Binding
	leave   key.Binding
	confirm key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	create:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "create new")),
	edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit entry")),
	delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	copy:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "copy")),
	search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	export:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "export key")),
	quickEx: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export here")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	cancel:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "cancel")),
	next:    key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter/tab", "continue")),
	back:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "back")),
	save:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "save")),
	results: key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter/tab", "results")),
	term:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "edit term")),
	leave:   key.NewBinding(key.WithKeys("esc", "c", "q"), key.WithHelp("esc", "close search")),
	confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "export")),
}

// pageBindings lists the hotkey rows shown for page.
func pageBindings(page machine.Page) [][]key.Binding {
	switch page {
	case machine.PageList:
		return [][]key.Binding{
			{keys.up, keys.down, keys.copy, keys.create, keys.edit, keys.delete},
			{keys.search, keys.export, keys.quickEx, keys.quit},
		}
	case machine.PageCreateName, machine.PageEditName:
		return [][]key.Binding{{keys.cancel, keys.next}}
	case machine.PageCreateBody, machine.PageEditBody:
		return [][]key.Binding{{keys.cancel, keys.back, keys.save}}
	case machine.PageSearchName:
		return [][]key.Binding{{keys.cancel, keys.results}}
	case machine.PageSearchBody:
		return [][]key.Binding{
			{keys.up, keys.down, keys.copy, keys.edit, keys.delete},
			{keys.create, keys.term, keys.leave},
		}
	case machine.PageExportLocation:
		return [][]key.Binding{{keys.cancel, keys.next}}
	case machine.PageExportPassword:
		return [][]key.Binding{{keys.cancel, keys.confirm}}
	default:
		return nil
	}
}

func renderHelp(page machine.Page) string {
	h := help.New()

	rows := pageBindings(page)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, h.ShortHelpView(row))
	}
	return strings.Join(lines, "\n")
}
