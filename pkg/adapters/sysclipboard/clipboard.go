// Package sysclipboard places images on the system clipboard.
package sysclipboard

import (
	"errors"
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/user/codesnap/pkg/ports"
)

// ErrUnavailable is returned when no clipboard backend could be initialised,
// for example on a headless machine.
var ErrUnavailable = errors.New("clipboard unavailable")

var (
	initOnce sync.Once
	initErr  error
)

// Clipboard implements ports.Clipboard with golang.design/x/clipboard.
type Clipboard struct{}

// New creates a new Clipboard. Initialisation is deferred to the first write.
func New() *Clipboard {
	return &Clipboard{}
}

// WritePNG places PNG data on the clipboard.
func (c *Clipboard) WritePNG(data []byte) error {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, initErr)
	}
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}

var _ ports.Clipboard = (*Clipboard)(nil)
