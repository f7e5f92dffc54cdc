// Package clipboard adapts the system clipboard to domain.Clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/runoshun/taskflow/internal/domain"
)

// System writes to the OS clipboard.
type System struct{}

// New creates a System clipboard.
func New() *System {
	return &System{}
}

// WriteAll copies text to the clipboard.
func (*System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard: no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

var _ domain.Clipboard = (*System)(nil)
