package adapter

import (
	"fmt"
	"unicode/utf8"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type systemClipboard struct {
	unsupported bool
	write       func(text string) error

	logger *logger.Logger
}

// NewSystemClipboard returns a [Clipboard] backed by the host clipboard.
func NewSystemClipboard(logger *logger.Logger) Clipboard {
	return &systemClipboard{
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
		logger:      logger,
	}
}

func (c *systemClipboard) WriteAll(text string) error {
	if c.unsupported {
		return ErrClipboardUnavailable
	}

	if err := c.write(text); err != nil {
		c.logger.Err(err).Str("func", "systemClipboard.WriteAll").Msg("failed to write to clipboard")
		return fmt.Errorf("%w: %w", ErrClipboardWrite, err)
	}

	// never log the text itself
	c.logger.Debug().Int("runes", utf8.RuneCountInString(text)).Msg("clipboard updated")
	return nil
}
