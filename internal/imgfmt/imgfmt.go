// Package imgfmt selects a raster encoder from a file extension and writes
// encoded images to disk.
package imgfmt

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned when no encoder is registered for a file
// extension.
var ErrUnknownFormat = errors.New("imgfmt: no encoder for extension")

// jpegQuality is used for .jpg/.jpeg output.
const jpegQuality = 95

// EncodeFunc writes img to w.
type EncodeFunc func(w io.Writer, img image.Image) error

// Format is a named raster encoder.
type Format struct {
	Name   string
	Encode EncodeFunc
}

var (
	pngFormat = Format{Name: "png", Encode: png.Encode}

	jpegFormat = Format{Name: "jpeg", Encode: func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	}}

	bmpFormat = Format{Name: "bmp", Encode: bmp.Encode}

	tiffFormat = Format{Name: "tiff", Encode: func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}}
)

var formats = map[string]Format{
	".png":  pngFormat,
	".jpg":  jpegFormat,
	".jpeg": jpegFormat,
	".bmp":  bmpFormat,
	".tif":  tiffFormat,
	".tiff": tiffFormat,
}

// Lookup returns the encoder for path's extension, matched case-insensitively.
func Lookup(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := formats[ext]
	if !ok {
		if ext == "" {
			ext = "(none)"
		}
		return Format{}, fmt.Errorf("%w %s", ErrUnknownFormat, ext)
	}
	return f, nil
}

// Extensions lists the supported extensions in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(formats))
	for ext := range formats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// WriteFile encodes img into path using the format implied by its
// extension. The data goes to a temporary file in the same directory which
// is renamed over path only after encoding succeeds, so a failure never
// leaves a truncated image behind.
func WriteFile(path string, img image.Image) error {
	f, err := Lookup(path)
	if err != nil {
		return err
	}

	dir, base := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return fmt.Errorf("imgfmt: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := f.Encode(tmp, img); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("imgfmt: encode %s: %w", f.Name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("imgfmt: close temp file: %w", err)
	}
	// CreateTemp uses 0600; icons are ordinary readable assets.
	if err := os.Chmod(tmpName, 0o644); err != nil { //nolint:gosec // world-readable image assets
		_ = os.Remove(tmpName)
		return fmt.Errorf("imgfmt: chmod: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("imgfmt: rename: %w", err)
	}
	return nil
}
