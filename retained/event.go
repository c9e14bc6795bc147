package retained

// ============================================================================
// Input
// ============================================================================

// Key identifies the keys the tag input reacts to.
type Key uint8

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyEnter
)

// KeyByName maps host key names ("left", "backspace", ...) to a Key.
func KeyByName(name string) Key {
	switch name {
	case "left":
		return KeyLeft
	case "right":
		return KeyRight
	case "backspace":
		return KeyBackspace
	case "delete":
		return KeyDelete
	case "esc", "escape":
		return KeyEscape
	case "enter":
		return KeyEnter
	default:
		return KeyOther
	}
}

// Modifiers is a bitset of modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper // Cmd on Mac, Win on Windows
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// CursorKind is the pointer shape the host should show over the widget.
type CursorKind uint8

const (
	CursorDefault CursorKind = iota
	CursorText
	CursorPointer
)

func (k CursorKind) String() string {
	switch k {
	case CursorText:
		return "text"
	case CursorPointer:
		return "pointer"
	default:
		return "default"
	}
}

// ============================================================================
// Notifications
// ============================================================================

// NotificationKind identifies a message emitted for the host.
type NotificationKind uint8

const (
	// NoteRepaint asks the host to repaint; coalesced to one per drain.
	NoteRepaint NotificationKind = iota + 1

	// NoteHeightChanged carries the integer delta of the animated content height.
	NoteHeightChanged

	// NoteQueryChanged carries the trimmed field text.
	NoteQueryChanged

	// NoteSubmitted carries the modifiers held when the field was submitted.
	NoteSubmitted

	// NoteChipRemoved carries the id passed to a removal, known or not.
	NoteChipRemoved

	// NoteFocusContainer asks the host to move keyboard focus to the widget.
	NoteFocusContainer

	// NoteCursorChanged carries the new pointer shape.
	NoteCursorChanged

	// NoteActiveChanged carries the newly active chip (Index -1 for none).
	NoteActiveChanged
)

func (k NotificationKind) String() string {
	switch k {
	case NoteRepaint:
		return "repaint"
	case NoteHeightChanged:
		return "height-changed"
	case NoteQueryChanged:
		return "query-changed"
	case NoteSubmitted:
		return "submitted"
	case NoteChipRemoved:
		return "chip-removed"
	case NoteFocusContainer:
		return "focus-container"
	case NoteCursorChanged:
		return "cursor-changed"
	case NoteActiveChanged:
		return "active-changed"
	default:
		return "unknown"
	}
}

// Notification is a message from the engine to its host. Only the fields
// relevant to Kind are set.
type Notification struct {
	Kind NotificationKind

	HeightDelta int
	Height      int

	Query     string
	Modifiers Modifiers

	ChipID ChipID
	Index  int

	Cursor CursorKind
}
