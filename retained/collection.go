package retained

import (
	"errors"
	"iter"
	"slices"
	"time"
)

var (
	// ErrDuplicateChip is returned when adding an id that is already live.
	ErrDuplicateChip = errors.New("chip already present")

	// ErrUnknownChip is returned when addressing an id that is not live.
	ErrUnknownChip = errors.New("unknown chip")
)

// Collection owns every chip in an arena keyed by id. live is the ordered
// flow (and paint order); removing holds chips finishing their hide
// animation. An id is in at most one of the two.
type Collection struct {
	arena    map[ChipID]*Chip
	live     []ChipID
	removing []ChipID
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{arena: make(map[ChipID]*Chip)}
}

// Len returns the number of live chips.
func (c *Collection) Len() int { return len(c.live) }

// At returns the live chip at index i.
func (c *Collection) At(i int) *Chip {
	invariant(i >= 0 && i < len(c.live), "live index out of range")
	return c.arena[c.live[i]]
}

// Index returns the live index of id, or -1.
func (c *Collection) Index(id ChipID) int {
	return slices.Index(c.live, id)
}

// Get returns the live chip with id.
func (c *Collection) Get(id ChipID) (*Chip, bool) {
	if c.Index(id) < 0 {
		return nil, false
	}
	return c.arena[id], true
}

// Live iterates live chips in flow order.
func (c *Collection) Live() iter.Seq2[int, *Chip] {
	return func(yield func(int, *Chip) bool) {
		for i, id := range c.live {
			if !yield(i, c.arena[id]) {
				return
			}
		}
	}
}

// Removing iterates chips that are hiding, oldest first.
func (c *Collection) Removing() iter.Seq[*Chip] {
	return func(yield func(*Chip) bool) {
		for _, id := range c.removing {
			if !yield(c.arena[id]) {
				return
			}
		}
	}
}

// RemovingLen returns the number of hiding chips.
func (c *Collection) RemovingLen() int { return len(c.removing) }

// append adds a chip at the end of the flow. A hiding chip with the same id
// is dropped first.
func (c *Collection) append(ch *Chip) error {
	if c.Index(ch.id) >= 0 {
		return ErrDuplicateChip
	}
	if i := slices.Index(c.removing, ch.id); i >= 0 {
		c.arena[ch.id].hideNow()
		c.removing = slices.Delete(c.removing, i, i+1)
	}
	c.arena[ch.id] = ch
	c.live = append(c.live, ch.id)
	return nil
}

// detach takes the chip at live index i out of the flow. With keep it moves
// to the removing set, otherwise it leaves the arena.
func (c *Collection) detach(i int, keep bool) *Chip {
	id := c.live[i]
	ch := c.arena[id]
	c.live = slices.Delete(c.live, i, i+1)
	if keep {
		c.removing = append(c.removing, id)
	} else {
		delete(c.arena, id)
	}
	return ch
}

// reap drops hiding chips whose animation has finished and returns their ids.
func (c *Collection) reap(now time.Time) []ChipID {
	var done []ChipID
	c.removing = slices.DeleteFunc(c.removing, func(id ChipID) bool {
		ch := c.arena[id]
		if !ch.HideFinished(now) {
			return false
		}
		ch.hideNow()
		delete(c.arena, id)
		done = append(done, id)
		return true
	})
	return done
}

// widths fills dst with live chip widths.
func (c *Collection) widths(dst []int) []int {
	for i, id := range c.live {
		dst[i] = c.arena[id].width
	}
	return dst
}

// animating reports whether any chip, live or hiding, is animating.
func (c *Collection) animating(now time.Time) bool {
	for _, ch := range c.arena {
		if ch.Animating(now) {
			return true
		}
	}
	return false
}
