package console

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// WithSpinner shows message with a spinner on w while fn runs. The spinner
// line is cleared before WithSpinner returns.
func WithSpinner(w io.Writer, message string, fn func() error) error {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	// an unknown colour only loses the decoration
	_ = s.Color("cyan")

	s.Start()
	defer s.Stop()

	return fn()
}
