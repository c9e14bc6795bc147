// Package theme holds the style values of the tag input: chip metrics,
// paddings, animation timing, easing names and colour palettes.
//
// Themes are plain TOML documents. Anything left out of a file keeps the
// value from Default(), so a theme file only needs the keys it overrides.
package theme

import "time"

// Margins are per-edge insets in pixels.
type Margins struct {
	Left   int `toml:"left"`
	Top    int `toml:"top"`
	Right  int `toml:"right"`
	Bottom int `toml:"bottom"`
}

// Horizontal returns Left + Right.
func (m Margins) Horizontal() int { return m.Left + m.Right }

// Vertical returns Top + Bottom.
func (m Margins) Vertical() int { return m.Top + m.Bottom }

// Item describes a single chip.
type Item struct {
	// Height of the pill. The leading circle (avatar / delete zone) is Height x Height.
	Height int `toml:"height"`

	// Padding around the label. Left is measured from the end of the leading circle.
	Padding Margins `toml:"padding"`

	// MaxWidth clamps the chip width regardless of label length.
	MaxWidth int `toml:"max_width"`

	// DurationMS drives slides, show/hide, hover and height animations.
	DurationMS int `toml:"duration_ms"`

	// MinScale is the scale of a chip at zero visibility and of the delete
	// glyph at zero hover.
	MinScale float64 `toml:"min_scale"`

	// DeleteLeft is the inset of the delete glyph inside the leading circle.
	DeleteLeft int `toml:"delete_left"`

	// DeleteStroke is the stroke width of the delete glyph.
	DeleteStroke float64 `toml:"delete_stroke"`

	// SlideEasing names the curve used when chips glide between positions.
	SlideEasing string `toml:"slide_easing"`
}

// Duration returns DurationMS as a time.Duration.
func (i Item) Duration() time.Duration {
	return time.Duration(i.DurationMS) * time.Millisecond
}

// Palette holds colour strings (#RGB, #RRGGBB or #RRGGBBAA).
// Empty entries in a dark palette inherit from the light one.
type Palette struct {
	WindowBg     string `toml:"window_bg"`
	TextBg       string `toml:"text_bg"`
	TextActiveBg string `toml:"text_active_bg"`
	TextFg       string `toml:"text_fg"`
	TextActiveFg string `toml:"text_active_fg"`
	DeleteFg     string `toml:"delete_fg"`
	IconFg       string `toml:"icon_fg"`
}

// Theme is the complete style of a tag input.
type Theme struct {
	Item Item `toml:"item"`

	// ItemSkip is the gap between chips, horizontally and between rows.
	ItemSkip int `toml:"item_skip"`

	// Padding surrounds the whole flow.
	Padding Margins `toml:"padding"`

	// Field placement.
	FieldMinWidth   int `toml:"field_min_width"`
	FieldCancelSkip int `toml:"field_cancel_skip"`
	FieldIconSkip   int `toml:"field_icon_skip"`
	FieldHeight     int `toml:"field_height"`

	// MaxHeight caps the visible height; taller content scrolls.
	MaxHeight int `toml:"max_height"`

	FontSize     float64 `toml:"font_size"`
	HeightEasing string  `toml:"height_easing"`

	Colors Palette `toml:"colors"`
	Dark   Palette `toml:"dark"`
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Item: Item{
			Height:       32,
			Padding:      Margins{Left: 6, Top: 7, Right: 12, Bottom: 7},
			MaxWidth:     128,
			DurationMS:   150,
			MinScale:     0.3,
			DeleteLeft:   10,
			DeleteStroke: 2,
			SlideEasing:  "linear",
		},
		ItemSkip:        8,
		Padding:         Margins{Left: 16, Top: 8, Right: 16, Bottom: 8},
		FieldMinWidth:   42,
		FieldCancelSkip: 40,
		FieldIconSkip:   44,
		FieldHeight:     32,
		MaxHeight:       104,
		FontSize:        13,
		HeightEasing:    "linear",
		Colors: Palette{
			WindowBg:     "#ffffff",
			TextBg:       "#f7f7f7",
			TextActiveBg: "#4294d2",
			TextFg:       "#000000",
			TextActiveFg: "#ffffff",
			DeleteFg:     "#ffffff",
			IconFg:       "#a8a8a8",
		},
	}
}
