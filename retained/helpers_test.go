package retained

import (
	"fmt"
	"image"
	"image/color"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/agiangrant/tagflow/theme"
)

// glyphWidth is the advance of every rune under fakeRenderer.
const glyphWidth = 8

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// fakeRenderer measures text at a fixed advance and records snapshots.
type fakeRenderer struct {
	offscreens int
	last       *recordingCanvas
}

func (r *fakeRenderer) TextWidth(text string) int {
	return glyphWidth * utf8.RuneCountInString(text)
}

func (r *fakeRenderer) Offscreen(w, h int, scale float64, paint func(Canvas)) Bitmap {
	r.offscreens++
	r.last = &recordingCanvas{}
	paint(r.last)
	img := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	return Bitmap{Image: img, Scale: scale}
}

// recordingCanvas captures draw commands as short strings.
type recordingCanvas struct {
	ops     []string
	bitmaps []RectF
	texts   []string
}

func (c *recordingCanvas) Save()                    { c.ops = append(c.ops, "save") }
func (c *recordingCanvas) Restore()                 { c.ops = append(c.ops, "restore") }
func (c *recordingCanvas) Translate(dx, dy float64) { c.ops = append(c.ops, fmt.Sprintf("translate %g %g", dx, dy)) }
func (c *recordingCanvas) SetOpacity(o float64)     { c.ops = append(c.ops, fmt.Sprintf("opacity %.2f", o)) }
func (c *recordingCanvas) ClipRect(r RectF)         { c.ops = append(c.ops, "clip") }

func (c *recordingCanvas) FillRoundedRect(r RectF, radius float64, col color.Color) {
	c.ops = append(c.ops, fmt.Sprintf("pill %g %g", r.X, r.Y))
}

func (c *recordingCanvas) FillEllipse(r RectF, col color.Color) {
	c.ops = append(c.ops, "ellipse")
}

func (c *recordingCanvas) FillPath(points []PointF, col color.Color) {
	c.ops = append(c.ops, fmt.Sprintf("path %d", len(points)))
}

func (c *recordingCanvas) DrawTextElided(text string, x, y, maxWidth float64, col color.Color) {
	c.ops = append(c.ops, "text")
	c.texts = append(c.texts, text)
}

func (c *recordingCanvas) DrawBitmap(b Bitmap, dst RectF) {
	c.ops = append(c.ops, "bitmap")
	c.bitmaps = append(c.bitmaps, dst)
}

func (c *recordingCanvas) count(op string) int {
	n := 0
	for _, o := range c.ops {
		if o == op {
			n++
		}
	}
	return n
}

func testStyle(t *testing.T) *style {
	t.Helper()
	st, err := compileStyle(theme.Default(), false)
	require.NoError(t, err)
	return st
}

type testHarness struct {
	c     *Container
	clock *ManualClock
	r     *fakeRenderer
	field *TextField
}

func newHarness(t *testing.T, width int) *testHarness {
	t.Helper()
	h := &testHarness{
		clock: NewManualClock(epoch),
		r:     &fakeRenderer{},
		field: NewTextField("Add people"),
	}
	c, err := NewContainer(h.r, DefaultConfig(), WithClock(h.clock), WithField(h.field))
	require.NoError(t, err)
	h.c = c
	if width > 0 {
		c.Resize(width)
	}
	c.Drain()
	return h
}

// settle runs the clock past every animation.
func (h *testHarness) settle() {
	h.clock.Advance(time.Second)
	h.c.Tick()
}

func (h *testHarness) add(t *testing.T, id ChipID, text string, animate bool) {
	t.Helper()
	require.NoError(t, h.c.AddChip(id, text, Visual{}, animate))
}

func kinds(notes []Notification) []NotificationKind {
	out := make([]NotificationKind, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Kind)
	}
	return out
}

func find(notes []Notification, kind NotificationKind) (Notification, bool) {
	for _, n := range notes {
		if n.Kind == kind {
			return n, true
		}
	}
	return Notification{}, false
}
