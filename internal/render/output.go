package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// FrameFilename names the PNG for a frame index.
func FrameFilename(i int) string {
	return fmt.Sprintf("frame_%06d.png", i)
}

func writePNG(dir string, i int, img *image.RGBA) error {
	path := filepath.Join(dir, FrameFilename(i))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
