package mocks

import (
	"sync"

	"github.com/user/codesnap/pkg/ports"
)

// Clipboard is a mock implementation of ports.Clipboard.
type Clipboard struct {
	mu sync.Mutex

	WritePNGFunc func(data []byte) error

	Written [][]byte
}

func (m *Clipboard) WritePNG(data []byte) error {
	m.mu.Lock()
	m.Written = append(m.Written, data)
	m.mu.Unlock()
	if m.WritePNGFunc != nil {
		return m.WritePNGFunc(data)
	}
	return nil
}

var _ ports.Clipboard = (*Clipboard)(nil)
