package mocks

import (
	"image"
	"sync"

	"github.com/user/codesnap/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	LayoutJSON []byte
	Card       image.Image
	Shadow     image.Image
	Frame      image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{enabled: enabled}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveLayoutJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LayoutJSON = data
	return nil
}

func (m *DebugSink) SaveCard(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Card = img
	return nil
}

func (m *DebugSink) SaveShadow(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Shadow = img
	return nil
}

func (m *DebugSink) SaveFrame(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Frame = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
