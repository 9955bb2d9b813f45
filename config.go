package vcui

import (
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Config holds the settings of an application, typically read from a TOML file.
type Config struct {
	LoopsPerSecond int          `toml:"loops_per_second"`
	Font           FontConfig   `toml:"font"`
	Scroll         ScrollConfig `toml:"scroll"`
	TabBar         TabBarConfig `toml:"tab_bar"`
}

type FontConfig struct {
	Name string `toml:"name"`
	Size int    `toml:"size"`
}

type ScrollConfig struct {
	Direction       string  `toml:"direction"`  // "vertical" or "horizontal", axis the wheel scrolls
	Visibility      string  `toml:"visibility"` // "never", "on-activity" or "always"
	Intensity       float64 `toml:"intensity"`  // pixels per delta unit per wheel step
	Timeout         float64 `toml:"timeout"`    // in delta units, how long scrollbars stay visible after activity
	BackgroundWidth int     `toml:"background_width"`
	ThumbWidth      int     `toml:"thumb_width"`
	Color           string  `toml:"color"`
	BackgroundColor string  `toml:"background_color"`
	HighlightColor  string  `toml:"highlight_color"`
}

type TabBarConfig struct {
	Height             int    `toml:"height"`
	FontSize           int    `toml:"font_size"`
	Color              string `toml:"color"`
	HighlightColor     string `toml:"highlight_color"`
	TextColor          string `toml:"text_color"`
	TextHighlightColor string `toml:"text_highlight_color"`
}

const defaultConfigTOML = `# vcui settings
loops_per_second = 30

[font]
name = "monospace"
size = 20

[scroll]
direction = "vertical"
visibility = "on-activity"
intensity = 3.0
timeout = 600.0
background_width = 24
thumb_width = 16
color = "#505050"
background_color = "#c8c8c8"
highlight_color = "#828282"

[tab_bar]
height = 80
font_size = 40
color = "#282828"
highlight_color = "#b4b4b4"
text_color = "#ffffff"
text_highlight_color = "#000000"
`

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	cfg, err := ParseConfig([]byte(defaultConfigTOML))
	if err != nil {
		panic(fmt.Sprintf("bad default config: %s", err))
	}
	return cfg
}

// ParseConfig parses TOML on top of the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigTOML, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode default config: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q: %w", undecoded[0].String(), ErrUnsupported)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate rejects out of range values. Nothing is coerced to a default.
func (c Config) Validate() error {
	if c.LoopsPerSecond <= 0 {
		return invalid(ErrInvalidMode, "loops_per_second", c.LoopsPerSecond)
	}
	if c.Font.Size <= 0 {
		return invalid(ErrInvalidMode, "font size", c.Font.Size)
	}
	s := c.Scroll
	d, err := ParseOrientation(s.Direction)
	if err == nil {
		err = checkAxis(d)
	}
	if err != nil {
		return fmt.Errorf("scroll direction: %w", err)
	}
	v, err := ParseVisibility(s.Visibility)
	if err != nil {
		return err
	}
	if err := v.check(); err != nil {
		return err
	}
	if s.Intensity <= 0 || s.Timeout < 0 {
		return invalid(ErrInvalidMode, "scroll intensity/timeout", fmt.Sprintf("%v/%v", s.Intensity, s.Timeout))
	}
	if s.BackgroundWidth <= 0 || s.ThumbWidth <= 0 || s.ThumbWidth > s.BackgroundWidth {
		return invalid(ErrInvalidMode, "scroll widths", fmt.Sprintf("%d/%d", s.BackgroundWidth, s.ThumbWidth))
	}
	if c.TabBar.Height < 0 || c.TabBar.FontSize <= 0 {
		return invalid(ErrInvalidMode, "tab bar height/font size", fmt.Sprintf("%d/%d", c.TabBar.Height, c.TabBar.FontSize))
	}
	for _, h := range []string{s.Color, s.BackgroundColor, s.HighlightColor, c.TabBar.Color, c.TabBar.HighlightColor, c.TabBar.TextColor, c.TabBar.TextHighlightColor} {
		if _, err := ParseColor(h); err != nil {
			return err
		}
	}
	return nil
}

// ParseColor parses a "#rrggbb" color.
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, invalid(ErrInvalidMode, "color", fmt.Sprintf("%q", hex))
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}, nil
}

func mustColor(hex string) color.Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
