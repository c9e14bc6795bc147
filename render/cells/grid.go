// Package cells draws the tag input onto a grid of terminal cells. Each
// cell stands for CellWidth x CellHeight logical pixels; shapes fill the
// cells whose centre they cover and text lands one rune per cell.
package cells

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/tagflow/theme"
)

const (
	// CellWidth is the logical width of one terminal column.
	CellWidth = 8
	// CellHeight is the logical height of one terminal row.
	CellHeight = 20
)

// Cell is one terminal position. A cell without Filled shows the terminal
// background.
type Cell struct {
	Rune   rune
	Fg, Bg color.RGBA
	Filled bool
}

// Grid is a rectangle of cells. It implements image.Image, one pixel per
// cell, so it can travel as a chip snapshot.
type Grid struct {
	cols, rows int
	cells      []Cell
}

// NewGrid returns an empty grid.
func NewGrid(cols, rows int) *Grid {
	cols, rows = max(0, cols), max(0, rows)
	return &Grid{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (cols, rows int) { return g.cols, g.rows }

// Cell returns the cell at (col, row); out of range cells are empty.
func (g *Grid) Cell(col, row int) Cell {
	if !g.in(col, row) {
		return Cell{}
	}
	return g.cells[row*g.cols+col]
}

func (g *Grid) in(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

func (g *Grid) at(col, row int) *Cell {
	return &g.cells[row*g.cols+col]
}

// Fill paints every cell's background.
func (g *Grid) Fill(bg color.RGBA) {
	for i := range g.cells {
		g.cells[i].Bg = bg
		g.cells[i].Filled = true
	}
}

// ColorModel implements image.Image.
func (g *Grid) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.cols, g.rows) }

// At implements image.Image with the cell background.
func (g *Grid) At(x, y int) color.Color {
	c := g.Cell(x, y)
	if !c.Filled {
		return color.RGBA{}
	}
	return c.Bg
}

// Text returns the runes of the grid without styling, trailing spaces kept.
func (g *Grid) Text() string {
	var b strings.Builder
	for row := range g.rows {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := range g.cols {
			r := g.Cell(col, row).Rune
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// String renders the grid with lipgloss, one style per run of equal colours.
func (g *Grid) String() string {
	var b strings.Builder
	for row := range g.rows {
		if row > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for col := 1; col <= g.cols; col++ {
			if col < g.cols && sameStyle(g.Cell(col, row), g.Cell(start, row)) {
				continue
			}
			b.WriteString(g.renderRun(row, start, col))
			start = col
		}
	}
	return b.String()
}

func (g *Grid) renderRun(row, from, to int) string {
	var text strings.Builder
	for col := from; col < to; col++ {
		r := g.Cell(col, row).Rune
		if r == 0 {
			r = ' '
		}
		text.WriteRune(r)
	}
	first := g.Cell(from, row)
	style := lipgloss.NewStyle()
	if first.Filled {
		style = style.Background(lipgloss.Color(theme.FormatColor(first.Bg)))
	}
	if first.Rune != 0 {
		style = style.Foreground(lipgloss.Color(theme.FormatColor(first.Fg)))
	}
	return style.Render(text.String())
}

func sameStyle(a, b Cell) bool {
	if a.Filled != b.Filled || (a.Filled && a.Bg != b.Bg) {
		return false
	}
	if (a.Rune != 0) != (b.Rune != 0) {
		return false
	}
	return a.Rune == 0 || a.Fg == b.Fg
}

// blend mixes src over dst by opacity.
func blend(dst, src color.RGBA, opacity float64) color.RGBA {
	if opacity >= 1 {
		return src
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*opacity + 0.5)
	}
	return color.RGBA{mix(dst.R, src.R), mix(dst.G, src.G), mix(dst.B, src.B), 0xff}
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
