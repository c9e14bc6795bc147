package retained

import (
	"slices"
	"strings"
	"sync"
)

// Field is the single-line text input trailing the chips. The container
// positions it, moves focus to and from it and reads its text; the host
// forwards its edits through FieldChanged and FieldSubmitted.
type Field interface {
	// Text returns the raw, untrimmed text.
	Text() string
	SetText(text string)

	HasFocus() bool
	SetFocus(focused bool)

	// SetGeometry places the field in widget coordinates.
	SetGeometry(x, y, width int)
	SetPlaceholderHidden(hidden bool)
}

// TextField is an in-memory Field: a rune buffer with a cursor, a
// placeholder shown while empty, and the geometry the container assigned.
type TextField struct {
	mu sync.RWMutex

	content []rune
	cursor  int

	placeholder       string
	placeholderHidden bool
	focused           bool

	x, y, width int

	onChange func(text string)
}

// NewTextField creates an empty field with a placeholder.
func NewTextField(placeholder string) *TextField {
	return &TextField{
		content:     make([]rune, 0, 32),
		placeholder: placeholder,
	}
}

// Text returns the current text content.
func (f *TextField) Text() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return string(f.content)
}

// SetText replaces all text content and moves the cursor to the end.
func (f *TextField) SetText(text string) {
	f.mu.Lock()
	f.content = []rune(text)
	f.cursor = len(f.content)
	f.mu.Unlock()
	f.notifyChange()
}

// Cursor returns the cursor position in runes.
func (f *TextField) Cursor() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.cursor
}

// Insert types text at the cursor. Newlines are dropped.
func (f *TextField) Insert(text string) {
	text = strings.NewReplacer("\n", "", "\r", "").Replace(text)
	if text == "" {
		return
	}
	f.mu.Lock()
	f.content = slices.Insert(f.content, f.cursor, []rune(text)...)
	f.cursor += len([]rune(text))
	f.mu.Unlock()
	f.notifyChange()
}

// Backspace deletes the rune before the cursor. It reports false at the
// start of the text, where the key belongs to the container.
func (f *TextField) Backspace() bool {
	f.mu.Lock()
	if f.cursor == 0 {
		f.mu.Unlock()
		return false
	}
	f.content = slices.Delete(f.content, f.cursor-1, f.cursor)
	f.cursor--
	f.mu.Unlock()
	f.notifyChange()
	return true
}

// MoveCursor moves the cursor by delta runes. It reports false when the
// cursor was already at the edge in that direction.
func (f *TextField) MoveCursor(delta int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	pos := max(0, min(f.cursor+delta, len(f.content)))
	if pos == f.cursor {
		return false
	}
	f.cursor = pos
	return true
}

// HasFocus reports keyboard focus.
func (f *TextField) HasFocus() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.focused
}

// SetFocus gives or takes keyboard focus.
func (f *TextField) SetFocus(focused bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.focused = focused
}

// SetGeometry records the placement assigned by the container.
func (f *TextField) SetGeometry(x, y, width int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.x, f.y, f.width = x, y, width
}

// Geometry returns the last assigned placement.
func (f *TextField) Geometry() (x, y, width int) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.x, f.y, f.width
}

// SetPlaceholderHidden hides the placeholder once chips are present.
func (f *TextField) SetPlaceholderHidden(hidden bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.placeholderHidden = hidden
}

// DisplayText returns what the field shows: its text, or the placeholder
// while empty and not hidden.
func (f *TextField) DisplayText() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if len(f.content) == 0 && !f.placeholderHidden {
		return f.placeholder
	}
	return string(f.content)
}

// OnChange sets a callback run synchronously after every edit.
func (f *TextField) OnChange(fn func(text string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onChange = fn
}

func (f *TextField) notifyChange() {
	f.mu.RLock()
	fn := f.onChange
	text := string(f.content)
	f.mu.RUnlock()
	if fn != nil {
		fn(text)
	}
}
