package tagflow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/tagflow/render/cells"
	"github.com/agiangrant/tagflow/retained"
	"github.com/agiangrant/tagflow/theme"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_height = 200\n[item]\nheight = 24\n"), 0o644))

	c, err := New(cells.NewRenderer(), path, true)
	require.NoError(t, err)
	c.Resize(320)
	require.NoError(t, c.AddChip(1, "Ada", Visual{}, false))
	assert.Equal(t, 24, c.Chips().At(0).Rect().Height)

	c, err = New(cells.NewRenderer(), filepath.Join(dir, "missing.toml"), false)
	require.NoError(t, err)
	assert.NotNil(t, c)

	require.NoError(t, os.WriteFile(path, []byte("[item]\nheight = -1\n"), 0o644))
	_, err = New(cells.NewRenderer(), path, false)
	assert.ErrorIs(t, err, theme.ErrInvalidTheme)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("", true)
	require.NoError(t, err)
	assert.True(t, cfg.Dark)
	assert.Equal(t, theme.Default(), cfg.Theme)
}

func TestPlatform(t *testing.T) {
	tests := []struct {
		goos   string
		want   Platform
		submit Modifiers
		hover  bool
	}{
		{"darwin", PlatformMacOS, retained.ModSuper, true},
		{"ios", PlatformIOS, retained.ModSuper, false},
		{"linux", PlatformLinux, retained.ModCtrl, true},
		{"windows", PlatformWindows, retained.ModCtrl, true},
		{"android", PlatformAndroid, retained.ModCtrl, false},
		{"plan9", PlatformUnknown, retained.ModCtrl, false},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			p := platformFor(tt.goos)
			assert.Equal(t, tt.want, p)
			assert.Equal(t, tt.submit, p.SubmitModifier())
			assert.Equal(t, tt.hover, p.HasPointerHover())
		})
	}
	submit := Notification{Kind: retained.NoteSubmitted, Modifiers: retained.ModSuper}
	assert.True(t, PlatformMacOS.IsSubmitShortcut(submit))
	assert.False(t, PlatformLinux.IsSubmitShortcut(submit))

	mod := CurrentPlatform().SubmitModifier()
	assert.True(t, IsSubmitShortcut(Notification{Kind: retained.NoteSubmitted, Modifiers: mod | retained.ModShift}))
	assert.False(t, IsSubmitShortcut(Notification{Kind: retained.NoteSubmitted}))
	assert.False(t, IsSubmitShortcut(Notification{Kind: retained.NoteQueryChanged, Modifiers: mod}))
}
