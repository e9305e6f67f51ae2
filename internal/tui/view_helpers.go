package tui

import (
	"strings"
)

const (
	uiDivider   = "──────────────────────────────────────────────────────"
	minBoxWidth = 20
)

// renderPage frames data between the title and the hotkey rows.
func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return appStyle.Render(b.String())
}

// boxWidth is the inner width of a bordered input box for a terminal of
// the given width.
func boxWidth(width int) int {
	// padding of appStyle, border and padding of the box
	w := width - 4 - 4
	if w < minBoxWidth {
		return minBoxWidth
	}
	return w
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
