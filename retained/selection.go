package retained

// Selection tracks the keyboard-active chip and the pointer-hovered chip.
// Both are live indexes or -1, and need not coincide.
type Selection struct {
	active     int
	hovered    int
	overDelete bool
}

func newSelection() Selection {
	return Selection{active: -1, hovered: -1}
}

// Active returns the active index or -1.
func (s Selection) Active() int { return s.active }

// Hovered returns the hovered index or -1.
func (s Selection) Hovered() int { return s.hovered }

// OverDelete reports whether the pointer is over the hovered chip's delete zone.
func (s Selection) OverDelete() bool { return s.overDelete }

// next is the index after active, or -1 (the field) past the end.
func (s Selection) next(count int) int {
	if s.active >= 0 && s.active+1 < count {
		return s.active + 1
	}
	return -1
}

// previous is the index before active, saturating at 0; from the field it
// is the last chip.
func (s Selection) previous(count int) int {
	if s.active > 0 {
		return s.active - 1
	}
	if s.active < 0 && count > 0 {
		return count - 1
	}
	return s.active
}

// hitTest finds the live chip under p (inner coordinates). Rows only grow
// downward, so the scan stops at the first chip starting below p.
func hitTest(chips *Collection, p Point) (index int, local Point) {
	for i, ch := range chips.Live() {
		r := ch.Rect()
		if r.Y > p.Y {
			break
		}
		if r.Contains(p) {
			return i, p.Sub(r.TopLeft())
		}
	}
	return -1, Point{}
}

// ============================================================================
// Container selection handling
// ============================================================================

// ChangeActiveWay controls whether an active change moves focus.
type ChangeActiveWay uint8

const (
	ChangeActiveDefault ChangeActiveWay = iota
	ChangeActiveSkipSetFocus
)

// SetActive makes index the active chip (-1 for none). Focus moves to the
// widget when a chip becomes active and to the field otherwise, unless
// way skips it; the active chip (or field) is scrolled into view.
func (c *Container) SetActive(index int, way ChangeActiveWay) {
	if c.sel.active == index {
		return
	}
	n := c.chips.Len()
	if c.sel.active >= 0 {
		invariant(c.sel.active < n, "active index out of range")
		if c.sel.active < n {
			c.chips.At(c.sel.active).setActive(false)
		}
	}
	if index >= n {
		invariant(false, "active index out of range")
		index = -1
	}
	c.sel.active = index

	var id ChipID
	if index >= 0 {
		ch := c.chips.At(index)
		ch.setActive(true)
		id = ch.id
	}
	c.log.Debug("active changed", "index", index, "id", id)
	c.emit(Notification{Kind: NoteActiveChanged, Index: index, ChipID: id})

	if way != ChangeActiveSkipSetFocus {
		c.setInnerFocus()
	}

	var r Rect
	if index >= 0 {
		r = c.chips.At(index).Rect()
	} else {
		r = c.layout.Field
	}
	c.ensureVisible(r.Y, r.Bottom()+c.st.padding.Top+c.st.padding.Bottom)
	c.requestRepaint()
}

// SetActiveNext moves to the next chip, or to the field past the end.
func (c *Container) SetActiveNext() {
	c.SetActive(c.sel.next(c.chips.Len()), ChangeActiveDefault)
}

// SetActivePrevious moves to the previous chip, or to the last one from the field.
func (c *Container) SetActivePrevious() {
	c.SetActive(c.sel.previous(c.chips.Len()), ChangeActiveDefault)
}

// PointerMove updates hover from a pointer at widget coordinates.
func (c *Container) PointerMove(p Point) {
	c.pointer = p
	c.pointerInside = true
	c.updateHover(p.Sub(Point{c.st.padding.Left, c.st.padding.Top}))
}

// PointerLeave clears hover when the pointer leaves the widget.
func (c *Container) PointerLeave() {
	c.pointerInside = false
	c.clearHover()
}

// PointerPress removes the hovered chip when pressed on its delete zone,
// activates the hovered chip otherwise, and focuses the field when no chip
// is under the pointer.
func (c *Container) PointerPress(p Point) {
	c.PointerMove(p)
	switch {
	case c.sel.overDelete:
		invariant(c.sel.hovered >= 0 && c.sel.hovered < c.chips.Len(), "delete zone without hovered chip")
		if c.sel.hovered >= 0 && c.sel.hovered < c.chips.Len() {
			c.RemoveChip(c.chips.At(c.sel.hovered).id)
		}
	case c.sel.hovered >= 0:
		c.SetActive(c.sel.hovered, ChangeActiveDefault)
	default:
		c.SetActive(-1, ChangeActiveSkipSetFocus)
		c.setInnerFocus()
	}
}

// KeyPress handles a key delivered to the widget. It reports whether the
// key was consumed.
func (c *Container) KeyPress(key Key) bool {
	if c.sel.active >= 0 {
		invariant(c.sel.active < c.chips.Len(), "active index out of range")
		switch key {
		case KeyDelete, KeyBackspace:
			id := c.chips.At(c.sel.active).id
			c.SetActiveNext()
			c.RemoveChip(id)
		case KeyLeft:
			c.SetActivePrevious()
		case KeyRight:
			c.SetActiveNext()
		case KeyEscape:
			c.SetActive(-1, ChangeActiveDefault)
		default:
			return false
		}
		return true
	}
	if (key == KeyLeft || key == KeyBackspace) && c.field.Text() == "" {
		c.SetActivePrevious()
		return true
	}
	return false
}

// updateHover hit-tests p (inner coordinates) and moves hover accordingly.
func (c *Container) updateHover(p Point) {
	now := c.clock.Now()
	index, local := hitTest(c.chips, p)
	if c.sel.hovered != index {
		if c.sel.hovered >= 0 && c.sel.hovered < c.chips.Len() {
			c.chips.At(c.sel.hovered).pointerLeave(now)
		}
		c.sel.hovered = index
		c.requestRepaint()
	}
	overDelete := false
	if index >= 0 {
		ch := c.chips.At(index)
		ch.pointerMove(now, local)
		overDelete = ch.OverDelete()
	}
	if c.sel.overDelete != overDelete {
		c.sel.overDelete = overDelete
		c.updateCursor()
	}
}

// clearHover drops hover without hit-testing.
func (c *Container) clearHover() {
	if c.sel.hovered >= 0 && c.sel.hovered < c.chips.Len() {
		c.chips.At(c.sel.hovered).pointerLeave(c.clock.Now())
		c.requestRepaint()
	}
	c.sel.hovered = -1
	if c.sel.overDelete {
		c.sel.overDelete = false
		c.updateCursor()
	}
}

func (c *Container) updateCursor() {
	cursor := CursorDefault
	switch {
	case c.chips.Len() == 0:
		cursor = CursorText
	case c.sel.overDelete:
		cursor = CursorPointer
	}
	if cursor != c.cursor {
		c.cursor = cursor
		c.emit(Notification{Kind: NoteCursorChanged, Cursor: cursor})
	}
}
