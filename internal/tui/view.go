package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/machine"
)

// chrome is the number of terminal rows used around a list: padding,
// title, dividers, help, status and error lines.
const chrome = 12

func renderSnapshot(snap machine.Snapshot, title string, width, height int) string {
	var body string
	switch snap.Page {
	case machine.PageList:
		body = renderList(snap.Names, snap.Selected, height, false)
	case machine.PageCreateName, machine.PageCreateBody, machine.PageEditName, machine.PageEditBody:
		body = renderSecretForm(snap, width)
	case machine.PageSearchName, machine.PageSearchBody:
		body = renderSearch(snap, width, height)
	case machine.PageExportLocation, machine.PageExportPassword:
		body = renderExport(snap, width)
	}

	var b strings.Builder
	b.WriteString(body)
	if snap.Status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(snap.Status))
	}
	if snap.Err {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + snap.ErrMessage))
	}

	return renderPage(pageTitle(title, snap), b.String(), renderHelp(snap.Page))
}

func pageTitle(title string, snap machine.Snapshot) string {
	switch snap.Page {
	case machine.PageCreateName, machine.PageCreateBody:
		return title + " · new secret"
	case machine.PageEditName, machine.PageEditBody:
		return title + " · edit " + snap.OriginalName
	case machine.PageSearchName, machine.PageSearchBody:
		return title + " · search"
	case machine.PageExportLocation, machine.PageExportPassword:
		return title + " · export master key"
	default:
		return title
	}
}

// renderList shows the window of names around selected that fits height.
func renderList(names []string, selected, height int, dimmed bool) string {
	if len(names) == 0 {
		return dimmedStyle.Render("No secrets yet. Press a to create one.")
	}

	from, to := visibleRange(len(names), selected, height-chrome)

	var b strings.Builder
	for i := from; i < to; i++ {
		line := "  " + names[i]
		switch {
		case dimmed:
			line = dimmedStyle.Render(line)
		case i == selected:
			line = selectedStyle.Render("> " + names[i])
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if from > 0 || to < len(names) {
		b.WriteString(dimmedStyle.Render(fmt.Sprintf("%d/%d", selected+1, len(names))))
	}

	return strings.TrimRight(b.String(), "\n")
}

// visibleRange returns [from, to) of n rows keeping selected visible in a
// window of rows lines. A non-positive rows shows everything.
func visibleRange(n, selected, rows int) (int, int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}

	from := selected - rows/2
	if from < 0 {
		from = 0
	}
	if from+rows > n {
		from = n - rows
	}
	return from, from + rows
}

func renderInput(label, value string, active bool, width int) string {
	style := boxStyle
	if active {
		style = activeBox
		value += "█"
	}
	return labelStyle.Render(label) + "\n" + style.Width(boxWidth(width)).Render(value)
}

func renderSecretForm(snap machine.Snapshot, width int) string {
	onName := snap.Page == machine.PageCreateName || snap.Page == machine.PageEditName

	return renderInput("Password Name", snap.NameBuffer, onName, width) + "\n\n" +
		renderInput("Password", snap.BodyBuffer, !onName, width)
}

func renderSearch(snap machine.Snapshot, width, height int) string {
	onTerm := snap.Page == machine.PageSearchName

	list := renderList(snap.Filtered, snap.FilteredSelected, height-4, onTerm)
	if len(snap.Filtered) == 0 {
		list = dimmedStyle.Render("No matches.")
	}

	return renderInput("Search", snap.SearchTerm, onTerm, width) + "\n\n" + list
}

func renderExport(snap machine.Snapshot, width int) string {
	onLocation := snap.Page == machine.PageExportLocation

	// the passphrase is never rendered, only its length
	masked := strings.Repeat("*", snap.PassphraseLength)

	return renderInput("Export location", fitText(snap.ExportLocation, boxWidth(width)), onLocation, width) + "\n\n" +
		renderInput("Export passphrase", masked, !onLocation, width)
}
