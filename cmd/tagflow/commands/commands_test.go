package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/tagflow"
	"github.com/agiangrant/tagflow/retained"
	"github.com/agiangrant/tagflow/theme"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := Root("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const demoScenario = `
width: 320
steps:
  - add: {id: 1, text: Ada}
  - frame: one chip
  - add: {id: 2, text: Grace, animate: true}
  - advance: 300ms
  - frame: two/chips
`

func TestThemePrint(t *testing.T) {
	out, err := execute(t, "theme", "print")
	require.NoError(t, err)
	assert.Contains(t, out, "duration_ms = 150")

	parsed, err := theme.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, theme.Default(), parsed)
}

func TestThemeCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.toml", "[dark]\nwindow_bg = \"#000\"\n")
	bad := writeFile(t, dir, "bad.toml", "[item]\nheight = 0\n")

	out, err := execute(t, "theme", "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	_, err = execute(t, "theme", "check", bad)
	assert.ErrorIs(t, err, theme.ErrInvalidTheme)
}

func TestRenderCells(t *testing.T) {
	path := writeFile(t, t.TempDir(), "scene.yaml", demoScenario)

	out, err := execute(t, "render", "--cells", path)
	require.NoError(t, err)
	assert.Contains(t, out, "── one chip")
	assert.Contains(t, out, "── two/chips")
	assert.Contains(t, out, "Grace")
}

func TestRenderPNG(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scene.yaml", demoScenario)
	outDir := filepath.Join(dir, "frames")

	out, err := execute(t, "render", "-o", outDir, "--scale", "1", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 frames written")
	assert.FileExists(t, filepath.Join(outDir, "001-one-chip.png"))
	assert.FileExists(t, filepath.Join(outDir, "002-two-chips.png"))

	_, err = execute(t, "render", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDemoModel(t *testing.T) {
	clock := retained.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m, err := newDemoModel(theme.Default(), false, clock, discardLogger(), tagflow.PlatformLinux)
	require.NoError(t, err)
	assert.Empty(t, m.View())

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	assert.Equal(t, 320, m.c.Width())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Ada")})
	assert.Equal(t, "Ada", m.c.Query())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd, "frame tick scheduled while the chip appears")
	assert.Equal(t, 1, m.c.Chips().Len())
	assert.Empty(t, m.field.Text())

	clock.Advance(time.Second)
	m.Update(frameMsg(clock.Now()))
	assert.Contains(t, m.View(), "Ada")

	m.Update(pasteMsg{lines: []string{"Grace", " ", "Linus"}})
	assert.Equal(t, 3, m.c.Chips().Len())

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, 2, m.c.ActiveIndex())
	m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, 2, m.c.Chips().Len())
	assert.Equal(t, "removed chip 3", m.status)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestDemoModelSubmitShortcut(t *testing.T) {
	clock := retained.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m, err := newDemoModel(theme.Default(), false, clock, discardLogger(), tagflow.PlatformMacOS)
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m.Update(pasteMsg{lines: []string{"Ada", "Grace"}})

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "submitted", m.status)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlJ})
	assert.Equal(t, "submitted with 2 chips", m.status)
}

func TestDemoModelHoverFollowsPlatform(t *testing.T) {
	clock := retained.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	motion := tea.MouseMsg{X: 6, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}

	m, err := newDemoModel(theme.Default(), false, clock, discardLogger(), tagflow.PlatformLinux)
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m.Update(pasteMsg{lines: []string{"Ada"}})
	assert.True(t, m.hover)
	m.Update(motion)
	assert.Equal(t, 0, m.c.HoveredIndex())

	m, err = newDemoModel(theme.Default(), false, clock, discardLogger(), tagflow.PlatformAndroid)
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m.Update(pasteMsg{lines: []string{"Ada"}})
	assert.False(t, m.hover)
	m.Update(motion)
	assert.Equal(t, -1, m.c.HoveredIndex(), "motion without a press is ignored")
}
