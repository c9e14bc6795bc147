package theme

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidTheme is wrapped by every Validate failure.
var ErrInvalidTheme = errors.New("invalid theme")

// knownEasings mirrors the names accepted by the animation engine.
var knownEasings = map[string]bool{
	"linear":         true,
	"ease-in":        true,
	"ease-out":       true,
	"ease":           true,
	"ease-in-out":    true,
	"cubic":          true,
	"ease-out-cubic": true,
	"back":           true,
	"bumpy":          true,
}

// Parse decodes a TOML theme on top of Default().
func Parse(data []byte) (Theme, error) {
	t := Default()
	if err := toml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse theme: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Load reads a theme file. A missing file yields Default() without error.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Marshal encodes the theme as TOML.
func Marshal(t Theme) ([]byte, error) {
	data, err := toml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal theme: %w", err)
	}
	return data, nil
}

// Validate checks the values the layout engine relies on.
func (t Theme) Validate() error {
	switch {
	case t.Item.Height <= 0:
		return fmt.Errorf("%w: item.height must be positive", ErrInvalidTheme)
	case t.Item.DurationMS <= 0:
		return fmt.Errorf("%w: item.duration_ms must be positive", ErrInvalidTheme)
	case t.Item.MaxWidth < t.Item.Height:
		return fmt.Errorf("%w: item.max_width must be at least item.height", ErrInvalidTheme)
	case t.Item.MinScale < 0 || t.Item.MinScale > 1:
		return fmt.Errorf("%w: item.min_scale must be within [0, 1]", ErrInvalidTheme)
	case t.ItemSkip < 0:
		return fmt.Errorf("%w: item_skip must not be negative", ErrInvalidTheme)
	case t.FieldHeight <= 0:
		return fmt.Errorf("%w: field_height must be positive", ErrInvalidTheme)
	case t.FontSize <= 0:
		return fmt.Errorf("%w: font_size must be positive", ErrInvalidTheme)
	}
	for _, name := range []string{t.Item.SlideEasing, t.HeightEasing} {
		if name != "" && !knownEasings[name] {
			return fmt.Errorf("%w: unknown easing %q", ErrInvalidTheme, name)
		}
	}
	if _, err := t.Resolve(false); err != nil {
		return err
	}
	if _, err := t.Resolve(true); err != nil {
		return err
	}
	return nil
}

// ParseColor parses #RGB, #RRGGBB and #RRGGBBAA strings.
func ParseColor(value string) (color.RGBA, error) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		return color.RGBA{}, fmt.Errorf("%w: colour %q must start with #", ErrInvalidTheme, value)
	}
	hex := value[1:]

	// Expand shorthand: #RGB → #RRGGBB
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: colour %q has wrong length", ErrInvalidTheme, value)
	}

	var r, g, b, a uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
		return color.RGBA{}, fmt.Errorf("%w: colour %q: %v", ErrInvalidTheme, value, err)
	}
	// color.RGBA is alpha-premultiplied.
	return color.RGBA{
		R: uint8(uint16(r) * uint16(a) / 255),
		G: uint8(uint16(g) * uint16(a) / 255),
		B: uint8(uint16(b) * uint16(a) / 255),
		A: a,
	}, nil
}

// FormatColor renders a colour as #RRGGBB, or #RRGGBBAA when translucent.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
