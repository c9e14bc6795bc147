package commands

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/agiangrant/tagflow"
	"github.com/agiangrant/tagflow/render/cells"
	"github.com/agiangrant/tagflow/retained"
	"github.com/agiangrant/tagflow/theme"
)

const frameInterval = time.Second / 60

// chipColors cycles through the avatar colours of new chips.
var chipColors = []color.RGBA{
	{0xc8, 0x32, 0x32, 0xff},
	{0x32, 0x8c, 0xc8, 0xff},
	{0x3c, 0xa0, 0x50, 0xff},
	{0xd2, 0x8c, 0x1e, 0xff},
	{0x8c, 0x46, 0xbe, 0xff},
}

func demoCmd(g *globals) *cobra.Command {
	var logPath string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Try the chip input in the terminal",
		Long:  "Type a name and press Enter to add a chip, or Ctrl+J to submit with the platform shortcut. Left/Backspace on an empty field selects chips, Delete removes the selected one, clicking a chip's circle removes it, Ctrl+V adds one chip per clipboard line.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			th, err := g.loadTheme()
			if err != nil {
				return err
			}
			log, closeLog, err := openLog(logPath, g.verbose)
			if err != nil {
				return fmt.Errorf("failed to open log: %w", err)
			}
			defer closeLog()

			m, err := newDemoModel(th, g.dark, retained.SystemClock{}, log, tagflow.CurrentPlatform())
			if err != nil {
				return err
			}
			mouse := tea.WithMouseCellMotion()
			if m.hover {
				mouse = tea.WithMouseAllMotion()
			}
			p := tea.NewProgram(m, tea.WithAltScreen(), mouse)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("tui error: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&logPath, "log", "", "append log records to this file")
	return cmd
}

type frameMsg time.Time

type pasteMsg struct {
	lines []string
	err   error
}

// demoModel hosts a Container in a bubbletea program, painting it through
// the cell renderer.
type demoModel struct {
	c      *retained.Container
	field  *retained.TextField
	r      *cells.Renderer
	log    *slog.Logger
	colors theme.Colors

	platform tagflow.Platform
	// hover is set when pointer motion without a press reaches the chips.
	hover bool

	nextID  retained.ChipID
	status  string
	ticking bool
	width   int
}

func newDemoModel(th theme.Theme, dark bool, clock retained.Clock, log *slog.Logger, platform tagflow.Platform) (*demoModel, error) {
	colors, err := th.Resolve(dark)
	if err != nil {
		return nil, err
	}
	r := cells.NewRenderer()
	field := retained.NewTextField("Type a name, Enter to add")
	c, err := retained.NewContainer(r, retained.Config{Theme: th, Dark: dark},
		retained.WithClock(clock),
		retained.WithField(field),
		retained.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	field.SetFocus(true)
	return &demoModel{
		c:        c,
		field:    field,
		r:        r,
		log:      log,
		colors:   colors,
		platform: platform,
		hover:    platform.HasPointerHover(),
		nextID:   1,
	}, nil
}

func (m *demoModel) Init() tea.Cmd { return nil }

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.c.Resize(msg.Width * cells.CellWidth)

	case frameMsg:
		m.ticking = false
		m.c.Tick()

	case pasteMsg:
		if msg.err != nil {
			m.status = "clipboard: " + msg.err.Error()
			break
		}
		for _, line := range msg.lines {
			m.addChip(line)
		}

	case tea.MouseMsg:
		p := m.pointer(msg.X, msg.Y)
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.c.PointerPress(p)
		case msg.Action == tea.MouseActionMotion && (m.hover || msg.Button != tea.MouseButtonNone):
			m.c.PointerMove(p)
		}

	case tea.KeyMsg:
		if cmd, quit := m.key(msg); quit || cmd != nil {
			return m, cmd
		}
	}
	return m, m.drain()
}

// key handles a key press. It returns a command to run, and quit when the
// program should stop.
func (m *demoModel) key(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit, true
	case tea.KeyCtrlV:
		return readClipboard, false
	case tea.KeyEnter, tea.KeyCtrlJ:
		// Terminals report Ctrl+Enter as Ctrl+J.
		mods := retained.Modifiers(0)
		if msg.Type == tea.KeyCtrlJ {
			mods |= m.platform.SubmitModifier()
		}
		if msg.Alt {
			mods |= retained.ModAlt
		}
		m.c.FieldSubmitted(mods)
		if q := m.c.Query(); q != "" {
			m.addChip(q)
			m.c.ClearQuery()
		}
	case tea.KeyRunes, tea.KeySpace:
		if m.c.ActiveIndex() >= 0 {
			m.c.FieldFocused()
		}
		text := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			text = " "
		}
		m.field.Insert(text)
		m.c.FieldChanged()
	default:
		key := retained.KeyByName(msg.String())
		if key == retained.KeyOther || m.c.KeyPress(key) {
			break
		}
		switch key {
		case retained.KeyBackspace:
			if m.field.Backspace() {
				m.c.FieldChanged()
			}
		case retained.KeyLeft:
			m.field.MoveCursor(-1)
		case retained.KeyRight:
			m.field.MoveCursor(1)
		case retained.KeyEscape:
			m.c.ClearQuery()
		}
	}
	return nil, false
}

func (m *demoModel) addChip(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	id := m.nextID
	m.nextID++
	visual := retained.Visual{Color: chipColors[int(id-1)%len(chipColors)]}
	if err := m.c.AddChip(id, text, visual, true); err != nil {
		m.status = err.Error()
		return
	}
	m.log.Info("chip added", "id", id, "text", text)
}

// pointer converts a terminal cell to the centre of its logical block.
func (m *demoModel) pointer(col, row int) retained.Point {
	return retained.Point{
		X: col*cells.CellWidth + cells.CellWidth/2,
		Y: row*cells.CellHeight + cells.CellHeight/2 + m.c.ScrollHost().ScrollTop(),
	}
}

// drain consumes the container's notifications and schedules the next
// frame while anything animates.
func (m *demoModel) drain() tea.Cmd {
	for _, n := range m.c.Drain() {
		switch n.Kind {
		case retained.NoteChipRemoved:
			m.status = fmt.Sprintf("removed chip %d", n.ChipID)
		case retained.NoteSubmitted:
			m.status = "submitted"
			if m.platform.IsSubmitShortcut(n) {
				m.status = fmt.Sprintf("submitted with %d chips", m.c.Chips().Len())
			}
		case retained.NoteActiveChanged:
			if n.Index >= 0 {
				m.status = fmt.Sprintf("selected chip %d", n.ChipID)
			} else {
				m.status = ""
			}
		}
	}
	if m.ticking || !m.c.Animating() {
		return nil
	}
	m.ticking = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *demoModel) View() string {
	if m.width == 0 {
		return ""
	}
	status := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FormatColor(m.colors.IconFg))).
		Width(m.width)
	return m.r.Frame(m.c).String() + "\n" + status.Render(m.statusLine())
}

func (m *demoModel) statusLine() string {
	parts := []string{fmt.Sprintf("%d chips", m.c.Chips().Len()), "cursor " + m.c.Cursor().String()}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return strings.Join(parts, " · ") + " · ctrl+c quits"
}

func readClipboard() tea.Msg {
	text, err := clipboard.ReadAll()
	if err != nil {
		return pasteMsg{err: err}
	}
	return pasteMsg{lines: strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")}
}
