package render

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

func init() {
	// keep the platform opener's chatter out of report output
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Opener displays a rendered artifact to the user.
type Opener interface {
	Open(path string) error
}

// BrowserOpener opens files in the system's default browser.
type BrowserOpener struct{}

// Open hands path to the platform opener and returns without waiting for the viewer.
func (BrowserOpener) Open(path string) error {
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}

// NopOpener skips display.
type NopOpener struct{}

// Open does nothing.
func (NopOpener) Open(string) error { return nil }
