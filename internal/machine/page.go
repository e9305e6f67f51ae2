package machine

import (
	"fmt"
	"strings"
)

// Page identifies the active screen.
type Page int

const (
	PageList Page = iota
	PageCreateName
	PageCreateBody
	PageEditName
	PageEditBody
	PageSearchName
	PageSearchBody
	PageExportLocation
	PageExportPassword
)

var pageNames = [...]string{
	PageList:           "list",
	PageCreateName:     "create_name",
	PageCreateBody:     "create_body",
	PageEditName:       "edit_name",
	PageEditBody:       "edit_body",
	PageSearchName:     "search_name",
	PageSearchBody:     "search_body",
	PageExportLocation: "export_location",
	PageExportPassword: "export_password",
}

func (p Page) String() string {
	if p >= 0 && int(p) < len(pageNames) {
		return pageNames[p]
	}
	return fmt.Sprintf("page(%d)", int(p))
}

// ParsePage converts a configuration name such as "search_body" into a Page.
func ParsePage(s string) (Page, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range pageNames {
		if n == name {
			return Page(p), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPage, s)
}

// ParsePages converts a list of page names, skipping blanks.
func ParsePages(names []string) ([]Page, error) {
	pages := make([]Page, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		p, err := ParsePage(n)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, nil
}

// Directive tells the event loop what to do after an event.
type Directive int

const (
	Continue Directive = iota
	Terminate
)

func (d Directive) String() string {
	if d == Terminate {
		return "terminate"
	}
	return "continue"
}
