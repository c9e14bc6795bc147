package cells

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/tagflow/retained"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func TestRendererMetrics(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, 24, r.TextWidth("Ada"))
	assert.Zero(t, r.TextWidth(""))

	b := r.Offscreen(81, 32, 3, func(retained.Canvas) {})
	g, ok := b.Image.(*Grid)
	require.True(t, ok)
	cols, rows := g.Size()
	assert.Equal(t, 11, cols)
	assert.Equal(t, 2, rows)
}

func TestFillRoundedRectCorners(t *testing.T) {
	g := NewGrid(6, 3)
	cv := NewCanvas(g)
	cv.FillRoundedRect(retained.RectF{Width: 48, Height: 60}, 24, red)

	assert.False(t, g.Cell(0, 0).Filled, "corner outside the radius")
	assert.True(t, g.Cell(2, 1).Filled)
	assert.Equal(t, red, g.Cell(3, 1).Bg)
}

func TestFillEllipseAndClip(t *testing.T) {
	g := NewGrid(4, 2)
	cv := NewCanvas(g)
	cv.Save()
	cv.ClipRect(retained.RectF{X: 16, Width: 16, Height: 40})
	cv.FillEllipse(retained.RectF{Width: 32, Height: 40}, blue)
	cv.Restore()

	assert.False(t, g.Cell(1, 0).Filled, "clipped away")
	assert.True(t, g.Cell(2, 0).Filled)
	assert.True(t, g.Cell(2, 1).Filled)
}

func TestFillPathTinyMarksCentre(t *testing.T) {
	g := NewGrid(4, 2)
	cv := NewCanvas(g)
	cv.Translate(8, 0)
	cv.FillPath([]retained.PointF{{X: 1, Y: 26}, {X: 3, Y: 26}, {X: 2, Y: 28}}, red)

	c := g.Cell(1, 1)
	assert.Equal(t, '×', c.Rune)
	assert.Equal(t, red, c.Fg)
	assert.False(t, c.Filled)
}

func TestFillPathPolygon(t *testing.T) {
	g := NewGrid(4, 2)
	cv := NewCanvas(g)
	cv.FillPath([]retained.PointF{{X: 0, Y: 0}, {X: 32, Y: 0}, {X: 0, Y: 40}}, red)

	assert.True(t, g.Cell(0, 0).Filled)
	assert.False(t, g.Cell(3, 1).Filled)
}

func TestDrawTextElided(t *testing.T) {
	g := NewGrid(10, 2)
	cv := NewCanvas(g)
	cv.DrawTextElided("Grace Hopper", 4, 12, 40, red)

	assert.Equal(t, strings.Repeat(" ", 10)+"\n Grac…    ", g.Text())

	cv.Save()
	cv.SetOpacity(0.25)
	cv.DrawTextElided("x", 0, 0, 80, red)
	cv.Restore()
	assert.Zero(t, g.Cell(0, 0).Rune, "faint text is skipped")
}

func TestElide(t *testing.T) {
	assert.Equal(t, "Ada", Elide("Ada", 3))
	assert.Equal(t, "A…", Elide("Ada", 2))
	assert.Equal(t, "…", Elide("Ada", 1))
	assert.Empty(t, Elide("Ada", 0))
}

func TestDrawBitmapOpacity(t *testing.T) {
	r := NewRenderer()
	snap := r.Offscreen(16, 20, 1, func(cv retained.Canvas) {
		cv.FillRoundedRect(retained.RectF{Width: 16, Height: 20}, 0, red)
		cv.DrawTextElided("ok", 0, 0, 16, blue)
	})

	g := NewGrid(2, 1)
	g.Fill(color.RGBA{0, 0, 0, 255})
	cv := NewCanvas(g)
	cv.DrawBitmap(snap, retained.RectF{Width: 16, Height: 20})
	assert.Equal(t, "ok", g.Text())
	assert.Equal(t, red, g.Cell(0, 0).Bg)

	g = NewGrid(2, 1)
	g.Fill(color.RGBA{0, 0, 0, 255})
	cv = NewCanvas(g)
	cv.SetOpacity(0.25)
	cv.DrawBitmap(snap, retained.RectF{Width: 16, Height: 20})
	assert.Equal(t, "  ", g.Text())
	assert.Equal(t, color.RGBA{64, 0, 0, 255}, g.Cell(1, 0).Bg)
}

func TestFrame(t *testing.T) {
	r := NewRenderer()
	field := retained.NewTextField("Add people")
	c, err := retained.NewContainer(r, retained.DefaultConfig(),
		retained.WithClock(retained.NewManualClock(time.Unix(0, 0))),
		retained.WithField(field))
	require.NoError(t, err)
	c.Resize(320)

	g := r.Frame(c)
	cols, rows := g.Size()
	assert.Equal(t, 40, cols)
	assert.Equal(t, 3, rows)
	assert.Contains(t, g.Text(), "Add people")
	assert.Equal(t, c.Colors().WindowBg, g.Cell(0, 0).Bg)

	require.NoError(t, c.AddChip(1, "Ada", retained.Visual{Color: red}, false))
	g = r.Frame(c)
	assert.Contains(t, g.Text(), "Ada")
	assert.NotContains(t, g.Text(), "Add people")
	assert.Contains(t, g.String(), "Ada")
}
