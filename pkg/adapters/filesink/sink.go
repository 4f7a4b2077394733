// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/codesnap/pkg/ports"
)

// Sink saves intermediate results under baseDir.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveLayoutJSON writes layout.json.
func (s *Sink) SaveLayoutJSON(data []byte) error {
	if err := s.fs.MkdirAll(s.baseDir); err != nil {
		return err
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, "layout.json"), data)
}

// SaveCard writes card.png.
func (s *Sink) SaveCard(img image.Image) error {
	return s.savePNG("card.png", img)
}

// SaveShadow writes shadow.png.
func (s *Sink) SaveShadow(img image.Image) error {
	return s.savePNG("shadow.png", img)
}

// SaveFrame writes frame.png.
func (s *Sink) SaveFrame(img image.Image) error {
	return s.savePNG("frame.png", img)
}

func (s *Sink) savePNG(name string, img image.Image) error {
	if err := s.fs.MkdirAll(s.baseDir); err != nil {
		return err
	}
	data, err := s.renderer.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, name), data)
}

var _ ports.DebugSink = (*Sink)(nil)
