// Package loader turns image references (local paths, uploads, URLs)
// into decoded rasters for the assessment engine. RAW decoding is
// delegated to an external collaborator; the loader only recognizes
// RAW extensions and routes them.
package loader

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	apperrors "go-image-quality/internal/errors"
)

// RawDecoder decodes a camera RAW file into a standard RGB image. The
// decoder is expected to apply camera white balance and produce a
// full-resolution 8-bit raster.
type RawDecoder interface {
	Decode(path string) (image.Image, error)
}

// rawExtensions are the camera RAW formats routed to the RawDecoder.
var rawExtensions = map[string]struct{}{
	".arw": {}, ".cr2": {}, ".cr3": {}, ".nef": {}, ".dng": {},
	".raf": {}, ".orf": {}, ".rw2": {}, ".pef": {}, ".srw": {},
	".x3f": {}, ".3fr": {}, ".fff": {}, ".iiq": {}, ".k25": {},
	".kdc": {}, ".mef": {}, ".mos": {}, ".mrw": {}, ".nrw": {},
	".ptx": {}, ".r3d": {}, ".raw": {}, ".rwl": {}, ".rwz": {},
	".sr2": {}, ".srf": {},
}

// IsRawPath reports whether the path carries a camera RAW extension.
func IsRawPath(path string) bool {
	_, ok := rawExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// FileSource loads images from the local file system. Standard formats
// (jpeg, png, gif, bmp, tiff, webp) decode directly; RAW files are
// handed to the configured RawDecoder.
type FileSource struct {
	raw RawDecoder
}

// NewFileSource creates a file source. A nil decoder is allowed; RAW
// inputs then fail with a validation error naming the extension.
func NewFileSource(raw RawDecoder) *FileSource {
	return &FileSource{raw: raw}
}

// Load reads and decodes the image at path.
func (s *FileSource) Load(path string) (image.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("image not found: %s", path), err)
	}

	if IsRawPath(path) {
		if s.raw == nil {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("no RAW decoder configured for %s files", filepath.Ext(path)), nil)
		}
		img, err := s.raw.Decode(path)
		if err != nil {
			return nil, apperrors.NewProcessingError(
				fmt.Sprintf("could not process raw image %s", path), err)
		}
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("could not open image: %s", path), err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode decodes an image stream in any registered format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, apperrors.NewValidationError("could not decode image", err)
	}
	return img, nil
}
