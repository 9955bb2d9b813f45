package vcui

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 30, cfg.LoopsPerSecond)
	require.Equal(t, "vertical", cfg.Scroll.Direction)
	require.Equal(t, "on-activity", cfg.Scroll.Visibility)
	require.Equal(t, 3.0, cfg.Scroll.Intensity)
	require.Equal(t, 600.0, cfg.Scroll.Timeout)
	require.Equal(t, 24, cfg.Scroll.BackgroundWidth)
	require.Equal(t, 16, cfg.Scroll.ThumbWidth)
	require.Equal(t, 80, cfg.TabBar.Height)
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
loops_per_second = 60

[scroll]
visibility = "always"
direction = "horizontal"
thumb_width = 10
`))
	require.NoError(t, err)
	require.Equal(t, 60, cfg.LoopsPerSecond)
	require.Equal(t, "always", cfg.Scroll.Visibility)
	require.Equal(t, "horizontal", cfg.Scroll.Direction)
	require.Equal(t, 10, cfg.Scroll.ThumbWidth)
	require.Equal(t, 24, cfg.Scroll.BackgroundWidth, "defaults kept")
	require.Equal(t, 20, cfg.Font.Size)

	env, err := NewEnv(Raster{}, cfg)
	require.NoError(t, err)
	c, err := NewScrollController(env, image.Pt(100, 100))
	require.NoError(t, err)
	require.Equal(t, Horizontal, c.Direction())
	require.Equal(t, VisibilityAlways, c.Visibility())
	require.Equal(t, 10, c.ThumbWidth)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		err  error
	}{
		{"visibility", `scroll.visibility = "sometimes"`, ErrInvalidMode},
		{"on-focus", `scroll.visibility = "on-focus"`, ErrUnsupported},
		{"direction", `scroll.direction = "left"`, ErrInvalidOrientation},
		{"direction name", `scroll.direction = "diagonal"`, ErrInvalidOrientation},
		{"unknown key", `scroll.speed = 3`, ErrUnsupported},
		{"color", `scroll.color = "grey"`, ErrInvalidMode},
		{"lps", `loops_per_second = 0`, ErrInvalidMode},
		{"widths", "[scroll]\nthumb_width = 30", ErrInvalidMode},
		{"intensity", `scroll.intensity = -1.0`, ErrInvalidMode},
		{"font", `font.size = 0`, ErrInvalidMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.toml))
			require.ErrorIs(t, err, tt.err)
		})
	}

	_, err := ParseConfig([]byte(`loops_per_second = "fast"`))
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "vcui.toml")
	require.NoError(t, os.WriteFile(p, []byte("[tab_bar]\nheight = 50\n"), 0o644))
	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	require.Equal(t, 50, cfg.TabBar.Height)

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	require.Equal(t, color.RGBA{0xff, 0x80, 0x00, 0xff}, c)
	_, err = ParseColor("ff8000")
	require.ErrorIs(t, err, ErrInvalidMode)
}
