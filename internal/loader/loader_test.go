package loader

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	apperrors "go-image-quality/internal/errors"
)

// writeTestPNG writes a small solid PNG into dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetRGBA(x, y, color.RGBA{120, 130, 140, 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("Failed to write test image: %v", err)
	}
	return path
}

type stubRawDecoder struct {
	img  image.Image
	err  error
	path string
}

func (d *stubRawDecoder) Decode(path string) (image.Image, error) {
	d.path = path
	return d.img, d.err
}

func TestIsRawPath(t *testing.T) {
	testCases := []struct {
		path     string
		expected bool
	}{
		{"photo.arw", true},
		{"photo.CR2", true},
		{"dir/photo.nef", true},
		{"photo.dng", true},
		{"photo.jpg", false},
		{"photo.png", false},
		{"photo", false},
		{"photo.raw.jpg", false},
	}

	for _, tc := range testCases {
		if got := IsRawPath(tc.path); got != tc.expected {
			t.Errorf("IsRawPath(%q): expected %v, got %v", tc.path, tc.expected, got)
		}
	}
}

func TestFileSource_LoadPNG(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "sample.png")

	img, err := NewFileSource(nil).Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 20 {
		t.Errorf("Expected 20x20 image, got %v", img.Bounds())
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource(nil).Load(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		t.Errorf("Expected not_found error type, got %v", err)
	}
}

func TestFileSource_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := NewFileSource(nil).Load(path)
	if err == nil {
		t.Fatal("Expected error for corrupt file, got nil")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("Expected validation error type, got %v", err)
	}
}

func TestFileSource_RawWithoutDecoder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.arw")
	if err := os.WriteFile(path, []byte("raw bytes"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := NewFileSource(nil).Load(path)
	if err == nil {
		t.Fatal("Expected error for RAW file without decoder, got nil")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("Expected validation error type, got %v", err)
	}
}

func TestFileSource_RawRoutedToDecoder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.nef")
	if err := os.WriteFile(path, []byte("raw bytes"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	decoder := &stubRawDecoder{img: image.NewRGBA(image.Rect(0, 0, 4, 4))}
	img, err := NewFileSource(decoder).Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img == nil {
		t.Fatal("Expected decoded image, got nil")
	}
	if decoder.path != path {
		t.Errorf("Expected decoder to receive %q, got %q", path, decoder.path)
	}
}

func TestFileSource_RawDecoderFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.cr2")
	if err := os.WriteFile(path, []byte("raw bytes"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	decoder := &stubRawDecoder{err: fmt.Errorf("unsupported sensor layout")}
	_, err := NewFileSource(decoder).Load(path)
	if err == nil {
		t.Fatal("Expected error from failing decoder, got nil")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeProcessing) {
		t.Errorf("Expected processing error type, got %v", err)
	}
}

func TestDecode_InvalidStream(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("garbage")))
	if err == nil {
		t.Fatal("Expected error for invalid stream, got nil")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("Expected validation error type, got %v", err)
	}
}
