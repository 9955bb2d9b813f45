package vcui

import (
	"fmt"
)

type fontKey struct {
	name string
	size int
}

// FontCache loads each (name, size) font once per backend.
type FontCache struct {
	backend Backend
	fonts   map[fontKey]Font
}

func NewFontCache(b Backend) *FontCache {
	return &FontCache{backend: b, fonts: map[fontKey]Font{}}
}

// Get returns the font, loading it on first use.
func (c *FontCache) Get(name string, size int) (Font, error) {
	k := fontKey{name, size}
	if f, ok := c.fonts[k]; ok {
		return f, nil
	}
	f, err := c.backend.LoadFont(name, size)
	if err != nil {
		return nil, fmt.Errorf("load font %q %d: %w", name, size, err)
	}
	c.fonts[k] = f
	return f, nil
}

// Len returns the number of cached fonts.
func (c *FontCache) Len() int {
	return len(c.fonts)
}
