package retained

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/agiangrant/tagflow/theme"
)

// Config selects the theme a container is built with.
type Config struct {
	Theme theme.Theme
	Dark  bool
}

// DefaultConfig returns the built-in light theme.
func DefaultConfig() Config {
	return Config{Theme: theme.Default()}
}

// Option customizes a Container at construction.
type Option func(*Container)

// WithLogger routes debug records to l. The default discards them.
func WithLogger(l *slog.Logger) Option {
	return func(c *Container) {
		if l != nil {
			c.log = l
		}
	}
}

// WithClock replaces the system clock, typically with a ManualClock.
func WithClock(clock Clock) Option {
	return func(c *Container) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithField supplies the text field. The default is a TextField.
func WithField(f Field) Option {
	return func(c *Container) {
		if f != nil {
			c.field = f
		}
	}
}

// WithScrollHost attaches the outer scroll view. Without one the container
// manages a Viewport of its own.
func WithScrollHost(s ScrollHost) Option {
	return func(c *Container) {
		if s != nil {
			c.scroll = s
			c.viewport = nil
		}
	}
}

// WithIcon sets the painter of the empty-state field icon.
func WithIcon(p IconPainter) Option {
	return func(c *Container) { c.icon = p }
}

// Container is the tag input: it owns the chips, lays them out in a wrapping
// flow ending in the text field, routes pointer and keyboard input, and
// animates its own height. It is single-threaded; the host calls it from
// one event loop and drains notifications after each call.
type Container struct {
	st       *style
	log      *slog.Logger
	clock    Clock
	renderer Renderer
	field    Field
	scroll   ScrollHost
	viewport *Viewport
	icon     IconPainter

	chips  *Collection
	sel    Selection
	layout FlowLayout
	width  int
	placed bool

	height *HeightAnimator

	hasAny    bool
	iconTween Tween
	cursor    CursorKind
	focused   bool

	pointer       Point
	pointerInside bool

	query string

	notes       []Notification
	repaintSent bool
}

// NewContainer builds an empty container drawing through r.
func NewContainer(r Renderer, cfg Config, opts ...Option) (*Container, error) {
	if r == nil {
		return nil, fmt.Errorf("failed to create container: nil renderer")
	}
	st, err := compileStyle(cfg.Theme, cfg.Dark)
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}
	vp := &Viewport{}
	c := &Container{
		st:       st,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:    SystemClock{},
		renderer: r,
		field:    NewTextField(""),
		scroll:   vp,
		viewport: vp,
		chips:    NewCollection(),
		sel:      newSelection(),
		cursor:   CursorText,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.height = NewHeightAnimator(st.duration, st.heightEasing)
	return c, nil
}

// ============================================================================
// Accessors
// ============================================================================

// Chips returns the chip collection. Callers must not retain chips across
// removals.
func (c *Container) Chips() *Collection { return c.chips }

// Selection returns the current active and hover state.
func (c *Container) Selection() Selection { return c.sel }

// ActiveIndex returns the active chip index or -1.
func (c *Container) ActiveIndex() int { return c.sel.active }

// HoveredIndex returns the hovered chip index or -1.
func (c *Container) HoveredIndex() int { return c.sel.hovered }

// Layout returns the latest flow layout.
func (c *Container) Layout() FlowLayout { return c.layout }

// Height returns the animated content height.
func (c *Container) Height() int { return c.height.Current() }

// TargetHeight returns the content height of the latest layout.
func (c *Container) TargetHeight() int { return c.height.Target() }

// VisibleHeight returns the height of the outer frame: the animated content
// height capped at the theme's max height.
func (c *Container) VisibleHeight() int {
	return min(c.height.Current(), c.st.maxHeight)
}

// Width returns the width of the latest Resize.
func (c *Container) Width() int { return c.width }

// Field returns the text field.
func (c *Container) Field() Field { return c.field }

// ScrollHost returns the scroll view in use.
func (c *Container) ScrollHost() ScrollHost { return c.scroll }

// Colors returns the resolved palette, for hosts painting around the chips.
func (c *Container) Colors() theme.Colors { return c.st.colors }

// Cursor returns the pointer shape the host should show.
func (c *Container) Cursor() CursorKind { return c.cursor }

// Focused reports whether the container, rather than the field, holds
// keyboard focus.
func (c *Container) Focused() bool { return c.focused }

// Query returns the trimmed field text.
func (c *Container) Query() string { return strings.TrimSpace(c.field.Text()) }

// IconOpacity returns the empty-state icon opacity.
func (c *Container) IconOpacity() float64 {
	def := 1.0
	if c.hasAny {
		def = 0
	}
	return c.iconTween.Current(c.clock.Now(), def)
}

// ============================================================================
// Mutations
// ============================================================================

// AddChip appends a chip. With animate it pops in and the height glides;
// otherwise it appears at once and any pending height animation finishes.
func (c *Container) AddChip(id ChipID, text string, visual Visual, animate bool) error {
	now := c.clock.Now()
	ch := newChip(c.st, id, text, visual, c.renderer)
	if err := c.chips.append(ch); err != nil {
		return fmt.Errorf("failed to add chip %d: %w", id, err)
	}
	c.log.Debug("chip added", "id", id, "text", text, "animate", animate)

	c.updateItemsGeometry(now)
	if animate {
		ch.showAnimated(now, c.renderer)
	} else {
		c.height.Finish()
	}
	c.updateHasAnyItems(now)
	c.step(now)
	c.rehover()
	return nil
}

// RemoveChip hides the chip with id and reflows the rest. An unknown id
// changes nothing but is still reported. Either way focus ends on the
// active chip or the field.
func (c *Container) RemoveChip(id ChipID) {
	c.removeChip(id, true)
}

// RemoveChipInstant removes the chip with id without a hide animation.
func (c *Container) RemoveChipInstant(id ChipID) {
	c.removeChip(id, false)
}

func (c *Container) removeChip(id ChipID, animate bool) {
	if i := c.chips.Index(id); i >= 0 {
		c.detachChip(i, animate)
	} else {
		c.log.Debug("remove of unknown chip", "id", id)
	}
	c.emit(Notification{Kind: NoteChipRemoved, ChipID: id})
	c.setInnerFocus()
}

func (c *Container) detachChip(i int, animate bool) {
	now := c.clock.Now()
	c.clearHover()
	switch {
	case c.sel.active == i:
		c.SetActive(-1, ChangeActiveSkipSetFocus)
	case c.sel.active > i:
		c.sel.active--
	}

	ch := c.chips.detach(i, animate)
	if animate {
		ch.hideAnimated(now, c.renderer)
	} else {
		ch.hideNow()
	}
	c.log.Debug("chip removed", "id", ch.ID(), "animate", animate)

	c.updateItemsGeometry(now)
	if !animate {
		c.height.Finish()
	}
	c.updateHasAnyItems(now)
	c.step(now)
	c.rehover()
}

// SetChipText relabels a chip and reflows.
func (c *Container) SetChipText(id ChipID, text string) error {
	ch, ok := c.chips.Get(id)
	if !ok {
		return fmt.Errorf("failed to set text of chip %d: %w", id, ErrUnknownChip)
	}
	now := c.clock.Now()
	if ch.strategy == PaintCached {
		ch.visibility.Finish()
		ch.syncVisibility(now)
	}
	ch.setText(text, c.renderer)
	c.updateItemsGeometry(now)
	c.step(now)
	c.rehover()
	return nil
}

// Resize lays the chips out for a new width and returns the visible height
// the host should give the widget. The first layout sets the height at
// once; later ones animate.
func (c *Container) Resize(width int) int {
	now := c.clock.Now()
	first := !c.placed
	c.width = width
	c.updateItemsGeometry(now)
	if first && c.placed {
		c.height.Finish()
	}
	c.step(now)
	return min(c.height.Target(), c.st.maxHeight)
}

// ============================================================================
// Field
// ============================================================================

// FieldChanged is called by the host after the field text changed. It
// emits the trimmed query when it differs from the last one.
func (c *Container) FieldChanged() {
	q := c.Query()
	c.updateFieldGeometry()
	if q == c.query {
		return
	}
	c.query = q
	c.emit(Notification{Kind: NoteQueryChanged, Query: q})
	c.scrollToBottom()
	c.requestRepaint()
}

// FieldSubmitted reports Enter in the field with the modifiers held.
func (c *Container) FieldSubmitted(mods Modifiers) {
	c.emit(Notification{Kind: NoteSubmitted, Modifiers: mods})
}

// FieldFocused is called by the host when the field gains focus; it drops
// chip selection without bouncing focus back.
func (c *Container) FieldFocused() {
	c.focused = false
	c.SetActive(-1, ChangeActiveSkipSetFocus)
}

// ClearQuery empties the field.
func (c *Container) ClearQuery() {
	c.field.SetText("")
	c.FieldChanged()
}

// Focus gives the widget keyboard focus; it lands on the active chip or
// the field.
func (c *Container) Focus() {
	c.setInnerFocus()
}

// setInnerFocus moves focus to the container while a chip is active and to
// the field otherwise. A field newly focused scrolls to the bottom.
func (c *Container) setInnerFocus() {
	if c.sel.active >= 0 {
		c.field.SetFocus(false)
		if !c.focused {
			c.focused = true
			c.emit(Notification{Kind: NoteFocusContainer})
		}
		return
	}
	c.focused = false
	if !c.field.HasFocus() {
		c.field.SetFocus(true)
		c.scrollToBottom()
	}
}

// ============================================================================
// Geometry
// ============================================================================

// updateItemsGeometry recomputes the flow, moves every live chip to its
// slot, places the field and retargets the height. Nothing is laid out
// until the first non-zero width.
func (c *Container) updateItemsGeometry(now time.Time) {
	if c.width <= 0 {
		return
	}
	n := c.chips.Len()
	ws := acquireWidths(n)
	c.layout = ComputeFlow(c.chips.widths(ws), c.st.flowParams(c.width))
	releaseWidths(ws)
	c.placed = true

	mvp := c.st.maxVisiblePadding()
	for i, ch := range c.chips.Live() {
		p := c.layout.Positions[i]
		ch.setPosition(now, p.X, p.Y, c.layout.InnerWidth, mvp)
	}
	c.updateFieldGeometry()

	if c.height.Retarget(now, c.layout.ContentHeight) {
		c.log.Debug("layout", "chips", n, "rows", c.layout.RowCount(),
			"width", c.width, "height", c.layout.ContentHeight)
	}
	c.requestRepaint()
}

func (c *Container) updateFieldGeometry() {
	if !c.placed {
		return
	}
	f := c.layout.Field
	w := f.Width
	if c.Query() != "" {
		w -= c.st.fieldCancelSkip
	}
	c.field.SetGeometry(c.st.padding.Left+f.X, c.st.padding.Top+f.Y, max(0, w))
}

// updateHasAnyItems toggles the placeholder and fades the empty-state icon
// when the list becomes empty or non-empty.
func (c *Container) updateHasAnyItems(now time.Time) {
	has := c.chips.Len() > 0
	if has != c.hasAny {
		from := c.IconOpacity()
		c.hasAny = has
		c.field.SetPlaceholderHidden(has)
		to := 1.0
		if has {
			to = 0
		}
		c.iconTween.Start(now, from, to, c.st.duration, EaseLinear)
	}
	c.updateCursor()
}

// rehover re-runs hit-testing at the last pointer position after a reflow.
func (c *Container) rehover() {
	if c.pointerInside {
		c.updateHover(c.pointer.Sub(Point{c.st.padding.Left, c.st.padding.Top}))
	}
}

// ============================================================================
// Animation
// ============================================================================

// step applies the height animation. An integer height change is reported
// and, when the content grew, the scroll follows it down.
func (c *Container) step(now time.Time) {
	delta := c.height.Step(now)
	if delta == 0 {
		return
	}
	h := c.height.Current()
	if c.viewport != nil {
		c.viewport.resize(c.VisibleHeight(), h)
	}
	c.emit(Notification{Kind: NoteHeightChanged, HeightDelta: delta, Height: h})
	if delta > 0 {
		c.scroll.ScrollTo(c.scroll.ScrollTop() + delta)
	}
	c.requestRepaint()
}

// reap forgets chips whose hide animation has finished.
func (c *Container) reap(now time.Time) {
	for _, id := range c.chips.reap(now) {
		c.log.Debug("chip reaped", "id", id)
		c.requestRepaint()
	}
}

// Tick advances timer-driven state outside of paint. It reports whether
// anything is still animating, so the host knows to keep its timer running.
func (c *Container) Tick() bool {
	now := c.clock.Now()
	c.step(now)
	c.reap(now)
	animating := c.animating(now)
	if animating {
		c.requestRepaint()
	}
	return animating
}

// Animating reports whether any tween is in flight.
func (c *Container) Animating() bool {
	return c.animating(c.clock.Now())
}

func (c *Container) animating(now time.Time) bool {
	return c.height.Animating(now) ||
		c.iconTween.Animating(now) ||
		c.chips.RemovingLen() > 0 ||
		c.chips.animating(now)
}

// ============================================================================
// Paint
// ============================================================================

// Paint draws the widget into cv, restricted to clip (widget coordinates).
// Layout is already resolved; paint only samples animations over it.
func (c *Container) Paint(cv Canvas, clip Rect) {
	now := c.clock.Now()
	c.step(now)

	pad := c.st.padding
	if c.icon != nil {
		if op := c.IconOpacity(); op > 0 {
			cv.Save()
			cv.SetOpacity(op)
			c.icon(cv, pad.Left, pad.Top)
			cv.Restore()
		}
	}

	cv.Save()
	cv.Translate(float64(pad.Left), float64(pad.Top))
	inner := clip.Translate(Point{-pad.Left, -pad.Top})
	ml, mt, mr, mb := c.st.itemPaintMargins()
	iw := c.layout.InnerWidth

	for ch := range c.chips.Removing() {
		if ch.PaintArea(iw).Grow(ml, mt, mr, mb).Intersects(inner) {
			ch.Paint(cv, iw, now)
		}
	}
	for _, ch := range c.chips.Live() {
		area := ch.PaintArea(iw).Grow(ml, mt, mr, mb)
		if area.Y >= inner.Bottom() {
			break
		}
		if area.Intersects(inner) {
			ch.Paint(cv, iw, now)
		}
	}
	cv.Restore()

	c.reap(now)
}

// ============================================================================
// Notifications
// ============================================================================

func (c *Container) emit(n Notification) {
	c.notes = append(c.notes, n)
}

// requestRepaint queues one repaint notification until the next Drain.
func (c *Container) requestRepaint() {
	if c.repaintSent {
		return
	}
	c.repaintSent = true
	c.emit(Notification{Kind: NoteRepaint})
}

// Drain returns and clears the queued notifications, oldest first.
func (c *Container) Drain() []Notification {
	out := c.notes
	c.notes = nil
	c.repaintSent = false
	return out
}
