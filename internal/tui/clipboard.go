package tui

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard and falls back to an OSC 52
// escape sequence when no clipboard utility is available.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	err := clipboard.WriteAll(text)
	if err == nil {
		return nil
	}
	log.WithError(err).Debug("system clipboard unavailable, trying OSC 52")
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	termenv.Copy(text)
	return nil
}
