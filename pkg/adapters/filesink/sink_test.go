package filesink

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/user/codesnap/pkg/mocks"
)

var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), &mocks.Renderer{})

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveLayoutJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.Renderer{})

	data := []byte(`{"Width": 400}`)
	if err := sink.SaveLayoutJSON(data); err != nil {
		t.Fatalf("SaveLayoutJSON failed: %v", err)
	}

	if !fs.HasDir(testBaseDir) {
		t.Error("expected base directory to be created")
	}
	saved, ok := fs.GetFile(filepath.Join(testBaseDir, "layout.json"))
	if !ok {
		t.Fatal("expected layout.json to be saved")
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveImages(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.Renderer{})
	img := image.NewNRGBA(image.Rect(0, 0, 12, 8))

	saves := map[string]func(image.Image) error{
		"card.png":   sink.SaveCard,
		"shadow.png": sink.SaveShadow,
		"frame.png":  sink.SaveFrame,
	}
	for name, save := range saves {
		if err := save(img); err != nil {
			t.Fatalf("save %s failed: %v", name, err)
		}

		data, ok := fs.GetFile(filepath.Join(testBaseDir, name))
		if !ok {
			t.Fatalf("expected %s to be saved", name)
		}
		decoded, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("%s is not a PNG: %v", name, err)
		}
		if b := decoded.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
			t.Errorf("%s: expected 12x8, got %dx%d", name, b.Dx(), b.Dy())
		}
	}
}

func TestSink_EncodeError(t *testing.T) {
	renderer := &mocks.Renderer{
		EncodePNGFunc: func(img image.Image) ([]byte, error) {
			return nil, errors.New("encoder exploded")
		},
	}
	sink := New(testBaseDir, mocks.NewFileSystem(), renderer)

	if err := sink.SaveCard(image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected encode error to propagate")
	}
}
