package vcui

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
)

// ReadImage decodes an image from f into a surface of backend b.
func ReadImage(b Backend, f io.Reader) (Surface, error) {
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	s, err := b.Image(img)
	if err != nil {
		return nil, fmt.Errorf("image to surface: %w", err)
	}
	return s, nil
}

// ReadImagePath is a convenience function that opens path and calls ReadImage.
func ReadImagePath(b Backend, path string) (Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadImage(b, f)
}
