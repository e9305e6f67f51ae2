package console

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/awnumar/memguard"
	"golang.org/x/term"
)

// Prompter reads passphrases without echo.
type Prompter struct {
	fd  int
	out io.Writer

	isTerminal   func(fd int) bool
	readPassword func(fd int) ([]byte, error)
}

// NewPrompter prompts on stderr and reads from stdin.
func NewPrompter() *Prompter {
	return &Prompter{
		fd:           int(os.Stdin.Fd()),
		out:          os.Stderr,
		isTerminal:   term.IsTerminal,
		readPassword: term.ReadPassword,
	}
}

// ReadPassphrase prints prompt and reads one hidden line.
func (p *Prompter) ReadPassphrase(prompt string) ([]byte, error) {
	if !p.isTerminal(p.fd) {
		return nil, ErrNotTerminal
	}

	fmt.Fprint(p.out, prompt)
	passphrase, err := p.readPassword(p.fd)
	fmt.Fprintln(p.out) // newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return passphrase, nil
}

// ReadNewPassphrase asks twice and returns the passphrase only when both
// entries match. Both copies are wiped on mismatch.
func (p *Prompter) ReadNewPassphrase(prompt, confirmPrompt string) ([]byte, error) {
	first, err := p.ReadPassphrase(prompt)
	if err != nil {
		return nil, err
	}

	second, err := p.ReadPassphrase(confirmPrompt)
	if err != nil {
		memguard.WipeBytes(first)
		return nil, err
	}
	defer memguard.WipeBytes(second)

	if !bytes.Equal(first, second) {
		memguard.WipeBytes(first)
		return nil, ErrPassphraseMismatch
	}

	return first, nil
}
