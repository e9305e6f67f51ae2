package machine

import "errors"

var (
	// ErrInvalidSelection is reported when an action needs a selected secret
	// but the visible list is empty.
	ErrInvalidSelection = errors.New("no secret is selected")

	// ErrEmptyExportLocation is reported when the export location is blank.
	ErrEmptyExportLocation = errors.New("export location is empty")

	// ErrUnknownPage is returned by ParsePage for names it does not know.
	ErrUnknownPage = errors.New("unknown page")
)
