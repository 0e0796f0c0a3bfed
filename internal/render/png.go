package render

import (
	"fmt"
	"image/png"
	"io"
	"os"
)

// WritePNG encodes the surface as a PNG.
func (s *PixelSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG writes the surface to path, replacing any existing file.
func (s *PixelSurface) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	if err := s.WritePNG(f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
