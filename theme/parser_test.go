package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	th, err := Parse([]byte(`
item_skip = 4

[item]
height = 28
slide_easing = "cubic"

[colors]
text_bg = "#eee"
`))
	require.NoError(t, err)

	assert.Equal(t, 4, th.ItemSkip)
	assert.Equal(t, 28, th.Item.Height)
	assert.Equal(t, "cubic", th.Item.SlideEasing)
	assert.Equal(t, "#eee", th.Colors.TextBg)

	// Untouched keys keep their defaults.
	def := Default()
	assert.Equal(t, def.Item.MaxWidth, th.Item.MaxWidth)
	assert.Equal(t, def.Padding, th.Padding)
	assert.Equal(t, def.Colors.TextActiveBg, th.Colors.TextActiveBg)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"zero height", "[item]\nheight = 0"},
		{"negative duration", "[item]\nduration_ms = -5"},
		{"max width below height", "[item]\nmax_width = 10"},
		{"min scale above one", "[item]\nmin_scale = 1.5"},
		{"unknown easing", `height_easing = "wobble"`},
		{"bad colour", "[colors]\ntext_fg = \"black\""},
		{"bad dark colour", "[dark]\ntext_fg = \"#12\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTheme)
		})
	}
}

func TestParseAcceptsEveryEasing(t *testing.T) {
	for name := range knownEasings {
		th, err := Parse([]byte("height_easing = \"" + name + "\""))
		require.NoError(t, err, name)
		assert.Equal(t, name, th.HeightEasing)
	}
}

func TestParseMalformedTOML(t *testing.T) {
	_, err := Parse([]byte("item = ["))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTheme)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	th, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), th)
}

func TestLoadRoundTrip(t *testing.T) {
	src := Default()
	src.Item.Height = 40
	src.Dark.TextBg = "#222222"

	data, err := Marshal(src)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.RGBA
	}{
		{"#fff", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"#4294d2", color.RGBA{0x42, 0x94, 0xd2, 0xff}},
		{" #000000 ", color.RGBA{0, 0, 0, 0xff}},
		{"#ff000080", color.RGBA{0x80, 0, 0, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "#4294d2", FormatColor(color.RGBA{0x42, 0x94, 0xd2, 0xff}))
	assert.Equal(t, "#ff000080", FormatColor(color.NRGBA{0xff, 0, 0, 0x80}))
}

func TestResolveDarkInheritsEmptyEntries(t *testing.T) {
	th := Default()
	th.Dark = Palette{TextBg: "#202020", TextFg: "#fafafa"}

	light, err := th.Resolve(false)
	require.NoError(t, err)
	dark, err := th.Resolve(true)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{0x20, 0x20, 0x20, 0xff}, dark.TextBg)
	assert.Equal(t, color.RGBA{0xfa, 0xfa, 0xfa, 0xff}, dark.TextFg)
	assert.Equal(t, light.TextActiveBg, dark.TextActiveBg)
	assert.Equal(t, light.DeleteFg, dark.DeleteFg)
}
