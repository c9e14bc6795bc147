package cells

import (
	"image/color"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/tagflow/retained"
)

// deleteRune marks a path too thin to cover any cell centre, such as the
// delete glyph.
const deleteRune = '×'

type state struct {
	dx, dy  float64
	clip    retained.RectF
	clipped bool
	opacity float64
}

// Canvas implements retained.Canvas on a Grid.
type Canvas struct {
	g     *Grid
	cur   state
	stack []state
}

// NewCanvas draws into g.
func NewCanvas(g *Grid) *Canvas {
	return &Canvas{g: g, cur: state{opacity: 1}}
}

func (c *Canvas) Save() { c.stack = append(c.stack, c.cur) }

func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.cur = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *Canvas) Translate(dx, dy float64) {
	c.cur.dx += dx
	c.cur.dy += dy
}

func (c *Canvas) SetOpacity(opacity float64) {
	base := 1.0
	if n := len(c.stack); n > 0 {
		base = c.stack[n-1].opacity
	}
	c.cur.opacity = base * max(0, min(1, opacity))
}

func (c *Canvas) ClipRect(r retained.RectF) {
	r.X += c.cur.dx
	r.Y += c.cur.dy
	if c.cur.clipped {
		r = intersect(c.cur.clip, r)
	}
	c.cur.clip = r
	c.cur.clipped = true
}

func (c *Canvas) FillRoundedRect(r retained.RectF, radius float64, col color.Color) {
	c.fill(r, col, func(x, y float64) bool {
		if x < r.X || x >= r.X+r.Width || y < r.Y || y >= r.Y+r.Height {
			return false
		}
		rad := min(radius, r.Width/2, r.Height/2)
		cx := max(r.X+rad, min(x, r.X+r.Width-rad))
		cy := max(r.Y+rad, min(y, r.Y+r.Height-rad))
		return (x-cx)*(x-cx)+(y-cy)*(y-cy) <= rad*rad
	})
}

func (c *Canvas) FillEllipse(r retained.RectF, col color.Color) {
	rx, ry := r.Width/2, r.Height/2
	if rx <= 0 || ry <= 0 {
		return
	}
	cx, cy := r.X+rx, r.Y+ry
	c.fill(r, col, func(x, y float64) bool {
		nx, ny := (x-cx)/rx, (y-cy)/ry
		return nx*nx+ny*ny <= 1
	})
}

func (c *Canvas) FillPath(points []retained.PointF, col color.Color) {
	if len(points) < 3 {
		return
	}
	bounds := pathBounds(points)
	if c.fill(bounds, col, func(x, y float64) bool { return insidePolygon(points, x, y) }) > 0 {
		return
	}
	if c.cur.opacity < 0.5 {
		return
	}
	cx, cy := bounds.X+bounds.Width/2+c.cur.dx, bounds.Y+bounds.Height/2+c.cur.dy
	col0, row0 := int(cx/CellWidth), int(cy/CellHeight)
	if c.g.in(col0, row0) && c.visible(cx, cy) {
		cell := c.g.at(col0, row0)
		cell.Rune = deleteRune
		cell.Fg = toRGBA(col)
	}
}

// fill paints the background of cells whose centre satisfies inside, in
// untranslated coordinates, within bounds. It returns the number of cells
// painted.
func (c *Canvas) fill(bounds retained.RectF, col color.Color, inside func(x, y float64) bool) int {
	src := toRGBA(col)
	n := 0
	c.eachCell(bounds, func(cell *Cell, x, y float64) {
		if !inside(x, y) {
			return
		}
		under := cell.Bg
		if !cell.Filled {
			under = src
		}
		cell.Bg = blend(under, src, c.cur.opacity)
		cell.Filled = true
		n++
	})
	return n
}

// eachCell visits cells whose centre lies within bounds and the clip.
func (c *Canvas) eachCell(bounds retained.RectF, fn func(cell *Cell, x, y float64)) {
	gx0, gy0 := bounds.X+c.cur.dx, bounds.Y+c.cur.dy
	col0 := max(0, int(math.Floor(gx0/CellWidth)))
	row0 := max(0, int(math.Floor(gy0/CellHeight)))
	col1 := min(c.g.cols, int(math.Ceil((gx0+bounds.Width)/CellWidth)))
	row1 := min(c.g.rows, int(math.Ceil((gy0+bounds.Height)/CellHeight)))
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			gx := float64(col)*CellWidth + CellWidth/2
			gy := float64(row)*CellHeight + CellHeight/2
			if !c.visible(gx, gy) {
				continue
			}
			fn(c.g.at(col, row), gx-c.cur.dx, gy-c.cur.dy)
		}
	}
}

func (c *Canvas) visible(gx, gy float64) bool {
	if !c.cur.clipped {
		return true
	}
	r := c.cur.clip
	return gx >= r.X && gx < r.X+r.Width && gy >= r.Y && gy < r.Y+r.Height
}

// DrawTextElided writes one rune per column starting at the first column
// at or after x, on the row holding the line's vertical middle.
func (c *Canvas) DrawTextElided(text string, x, y, maxWidth float64, col color.Color) {
	if c.cur.opacity < 0.5 {
		return
	}
	gx, gy := x+c.cur.dx, y+c.cur.dy
	row := int(math.Floor((gy + CellHeight/2) / CellHeight))
	first := int(math.Ceil(gx / CellWidth))
	cols := int(maxWidth / CellWidth)
	fg := toRGBA(col)
	for i, r := range []rune(Elide(text, cols)) {
		cx := first + i
		if !c.g.in(cx, row) || !c.visible(float64(cx)*CellWidth+CellWidth/2, float64(row)*CellHeight+CellHeight/2) {
			continue
		}
		cell := c.g.at(cx, row)
		cell.Rune = r
		cell.Fg = fg
	}
}

// DrawBitmap samples b at each covered cell centre. Grids keep their runes
// while the opacity is at least one half; other images only tint.
func (c *Canvas) DrawBitmap(b retained.Bitmap, dst retained.RectF) {
	if !b.Valid() || dst.Width <= 0 || dst.Height <= 0 {
		return
	}
	src := b.Image
	sb := src.Bounds()
	grid, _ := src.(*Grid)
	c.eachCell(dst, func(cell *Cell, x, y float64) {
		sx := sb.Min.X + int((x-dst.X)/dst.Width*float64(sb.Dx()))
		sy := sb.Min.Y + int((y-dst.Y)/dst.Height*float64(sb.Dy()))
		var sc Cell
		if grid != nil {
			sc = grid.Cell(sx, sy)
		} else if rgba := toRGBA(src.At(sx, sy)); rgba.A > 0 {
			sc = Cell{Bg: rgba, Filled: true}
		}
		if sc.Filled {
			under := cell.Bg
			if !cell.Filled {
				under = sc.Bg
			}
			cell.Bg = blend(under, sc.Bg, c.cur.opacity)
			cell.Filled = true
		}
		if sc.Rune != 0 && c.cur.opacity >= 0.5 {
			cell.Rune = sc.Rune
			cell.Fg = sc.Fg
		}
	})
}

// Elide cuts text to cols display columns, ending it with an ellipsis when
// cut.
func Elide(text string, cols int) string {
	if cols <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= cols {
		return text
	}
	runes := []rune(text)
	for n := min(len(runes), cols-1); n > 0; n-- {
		s := string(runes[:n]) + "…"
		if lipgloss.Width(s) <= cols {
			return s
		}
	}
	return "…"
}

func intersect(a, b retained.RectF) retained.RectF {
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1, y1 := min(a.X+a.Width, b.X+b.Width), min(a.Y+a.Height, b.Y+b.Height)
	return retained.RectF{X: x0, Y: y0, Width: max(0, x1-x0), Height: max(0, y1-y0)}
}

func pathBounds(points []retained.PointF) retained.RectF {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return retained.RectF{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// insidePolygon is the even-odd ray casting test.
func insidePolygon(points []retained.PointF, x, y float64) bool {
	in := false
	j := len(points) - 1
	for i, p := range points {
		q := points[j]
		if (p.Y > y) != (q.Y > y) && x < (q.X-p.X)*(y-p.Y)/(q.Y-p.Y)+p.X {
			in = !in
		}
		j = i
	}
	return in
}

var _ retained.Canvas = (*Canvas)(nil)
