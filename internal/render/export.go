package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for export paths that are neither .svg
// nor .png.
var ErrUnsupportedFormat = errors.New("render: unsupported format")

// Format is an export file format.
type Format int

const (
	SVG Format = iota
	PNG
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return SVG, nil
	case ".png":
		return PNG, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// WithDefaultExt appends .svg when path has no extension.
func WithDefaultExt(path string) string {
	if filepath.Ext(path) == "" {
		return path + ".svg"
	}
	return path
}

// Encode writes s to w in format f.
func Encode(w io.Writer, s *Surface, f Format) error {
	switch f {
	case SVG:
		return EncodeSVG(w, s)
	case PNG:
		return EncodePNG(w, s)
	}
	return fmt.Errorf("%w: %d", ErrUnsupportedFormat, f)
}

// WriteFile writes s to path, choosing the format from its extension.
func WriteFile(path string, s *Surface) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if err := Encode(out, s, f); err != nil {
		return err
	}
	Logger().Info("surface exported", "path", path, "circles", s.Len())
	return nil
}
