package scenario

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/tagflow/render/cells"
	"github.com/agiangrant/tagflow/retained"
)

const script = `
width: 320
steps:
  - add: {id: 1, text: Ada, color: "#c83232"}
  - add: {id: 2, text: Grace}
  - add: {id: 3, text: Linus, animate: true}
  - advance: 150ms
  - frame: start
  - key: left
  - key: backspace
  - advance: 200
  - type: hel
  - submit: ctrl+shift
  - frame: end
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(script))
	require.NoError(t, err)
	assert.Equal(t, 320, s.Width)
	require.Len(t, s.Steps, 11)

	assert.Equal(t, "#c83232", s.Steps[0].Add.Color)
	assert.True(t, s.Steps[2].Add.Animate)
	assert.Equal(t, Duration(150*time.Millisecond), *s.Steps[3].Advance)
	assert.Equal(t, Duration(200*time.Millisecond), *s.Steps[7].Advance)
	assert.Equal(t, "left", s.Steps[5].Key)
	assert.Equal(t, "ctrl+shift", *s.Steps[9].Submit)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no action", "steps:\n  - {}\n"},
		{"two actions", "steps:\n  - {key: left, frame: a}\n"},
		{"unknown key", "steps:\n  - key: tab\n"},
		{"bad modifier", "steps:\n  - submit: hyper\n"},
		{"bad colour", "steps:\n  - add: {id: 1, text: a, color: red}\n"},
		{"negative width", "width: -1\n"},
		{"negative resize", "steps:\n  - resize: -5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidScenario)
		})
	}

	_, err := Parse([]byte("steps:\n  - advance: soon\n"))
	assert.Error(t, err)
}

func TestParseModifiers(t *testing.T) {
	m, err := ParseModifiers("cmd + Shift")
	require.NoError(t, err)
	assert.Equal(t, retained.ModSuper|retained.ModShift, m)

	m, err = ParseModifiers("")
	require.NoError(t, err)
	assert.Zero(t, m)
}

func TestRun(t *testing.T) {
	s, err := Parse([]byte(script))
	require.NoError(t, err)

	var frames []string
	r := &Runner{
		Renderer: cells.NewRenderer(),
		OnFrame: func(name string, c *retained.Container) error {
			frames = append(frames, name)
			return nil
		},
	}
	res, err := r.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, []string{"start", "end"}, frames)
	assert.Equal(t, 2, res.Frames)
	assert.Equal(t, 2, res.Container.Chips().Len())
	assert.Zero(t, res.Container.Chips().RemovingLen())
	assert.Equal(t, -1, res.Container.ActiveIndex())
	assert.Equal(t, "hel", res.Field.Text())
	assert.Equal(t, Epoch.Add(350*time.Millisecond), res.Clock.Now())

	var removed []retained.ChipID
	var query string
	var mods retained.Modifiers
	for _, n := range res.Notes {
		switch n.Kind {
		case retained.NoteChipRemoved:
			removed = append(removed, n.ChipID)
		case retained.NoteQueryChanged:
			query = n.Query
		case retained.NoteSubmitted:
			mods = n.Modifiers
		}
	}
	assert.Equal(t, []retained.ChipID{3}, removed)
	assert.Equal(t, "hel", query)
	assert.Equal(t, retained.ModCtrl|retained.ModShift, mods)
}

func TestRunStopsAtFailingStep(t *testing.T) {
	s, err := Parse([]byte("steps:\n  - add: {id: 1, text: a}\n  - add: {id: 1, text: b}\n"))
	require.NoError(t, err)

	r := &Runner{Renderer: cells.NewRenderer()}
	res, err := r.Run(context.Background(), s)
	assert.ErrorIs(t, err, retained.ErrDuplicateChip)
	assert.ErrorContains(t, err, "step 2")
	assert.Equal(t, 1, res.Container.Chips().Len())
}

func TestRunCancelled(t *testing.T) {
	s, err := Parse([]byte(script))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Runner{Renderer: cells.NewRenderer()}
	_, err = r.Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadResolvesTheme(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dark.toml"),
		[]byte("[colors]\nwindow_bg = \"#101010\"\n"), 0o644))
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 200\ntheme: dark.toml\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	res, err := (&Runner{Renderer: cells.NewRenderer()}).Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x10, 0x10, 0x10, 0xff}, res.Container.Colors().WindowBg)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
