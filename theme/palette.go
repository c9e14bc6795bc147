package theme

import (
	"fmt"
	"image/color"
)

// Colors is a resolved palette.
type Colors struct {
	WindowBg     color.RGBA
	TextBg       color.RGBA
	TextActiveBg color.RGBA
	TextFg       color.RGBA
	TextActiveFg color.RGBA
	DeleteFg     color.RGBA
	IconFg       color.RGBA
}

// Resolve parses the palette. With dark set, non-empty entries of the dark
// palette are applied on top of the light one.
func (t Theme) Resolve(dark bool) (Colors, error) {
	p := t.Colors
	if dark {
		mergePalette(&p, &t.Dark)
	}

	var c Colors
	fields := []struct {
		name string
		src  string
		dst  *color.RGBA
	}{
		{"window_bg", p.WindowBg, &c.WindowBg},
		{"text_bg", p.TextBg, &c.TextBg},
		{"text_active_bg", p.TextActiveBg, &c.TextActiveBg},
		{"text_fg", p.TextFg, &c.TextFg},
		{"text_active_fg", p.TextActiveFg, &c.TextActiveFg},
		{"delete_fg", p.DeleteFg, &c.DeleteFg},
		{"icon_fg", p.IconFg, &c.IconFg},
	}
	for _, f := range fields {
		v, err := ParseColor(f.src)
		if err != nil {
			return Colors{}, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.dst = v
	}
	return c, nil
}

// mergePalette copies non-empty entries from src to dst.
func mergePalette(dst, src *Palette) {
	if src.WindowBg != "" {
		dst.WindowBg = src.WindowBg
	}
	if src.TextBg != "" {
		dst.TextBg = src.TextBg
	}
	if src.TextActiveBg != "" {
		dst.TextActiveBg = src.TextActiveBg
	}
	if src.TextFg != "" {
		dst.TextFg = src.TextFg
	}
	if src.TextActiveFg != "" {
		dst.TextActiveFg = src.TextActiveFg
	}
	if src.DeleteFg != "" {
		dst.DeleteFg = src.DeleteFg
	}
	if src.IconFg != "" {
		dst.IconFg = src.IconFg
	}
}
