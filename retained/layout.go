package retained

// FlowParams are the inputs of a flow computation besides chip widths.
type FlowParams struct {
	// Width is the full container width; Padding is removed from it.
	Width   int
	Padding Margins

	ItemHeight int
	ItemSkip   int

	FieldMinWidth   int
	FieldCancelSkip int
	FieldIconSkip   int
	FieldHeight     int
}

// Margins are per-edge insets.
type Margins struct {
	Left, Top, Right, Bottom int
}

// FlowLayout is the result of packing chips into rows. Positions and Field
// are in inner coordinates (origin at the padding corner).
type FlowLayout struct {
	InnerWidth int

	// Positions holds one entry per chip, in input order.
	Positions []Point

	// Field is where the text field goes; it spans to the inner right edge.
	Field Rect

	// ContentHeight is the full container height including padding.
	ContentHeight int
}

// ComputeFlow packs chips greedily left to right, wrapping when a chip does
// not fit the remaining row width, then places the field inline when its
// minimum width fits and on a new row otherwise. Chips wider than the inner
// width are a precondition violation.
func ComputeFlow(widths []int, p FlowParams) FlowLayout {
	inner := p.Width - p.Padding.Left - p.Padding.Right
	out := FlowLayout{
		InnerWidth: inner,
		Positions:  make([]Point, len(widths)),
	}

	left, top := 0, 0
	widthLeft := inner
	for i, w := range widths {
		invariant(w <= inner, "chip wider than container")
		if w > widthLeft {
			left = 0
			top += p.ItemHeight + p.ItemSkip
			widthLeft = inner
		}
		out.Positions[i] = Point{left, top}
		left += w + p.ItemSkip
		widthLeft -= w + p.ItemSkip
	}

	fieldMinWidth := p.FieldMinWidth + p.FieldCancelSkip
	invariant(fieldMinWidth <= inner, "field wider than container")
	var fieldLeft, fieldTop int
	if fieldMinWidth > widthLeft {
		fieldLeft = 0
		fieldTop = top + p.ItemHeight + p.ItemSkip
	} else {
		fieldLeft = left
		if len(widths) == 0 {
			fieldLeft += p.FieldIconSkip
		}
		fieldTop = top
	}
	out.Field = Rect{fieldLeft, fieldTop, inner - fieldLeft, p.FieldHeight}
	out.ContentHeight = p.Padding.Top + fieldTop + p.FieldHeight + p.Padding.Bottom
	return out
}

// RowCount returns the number of distinct chip rows.
func (l FlowLayout) RowCount() int {
	rows := 0
	last := -1
	for _, p := range l.Positions {
		if rows == 0 || p.Y != last {
			rows++
			last = p.Y
		}
	}
	return rows
}

// flowParams derives layout parameters from the style.
func (st *style) flowParams(width int) FlowParams {
	return FlowParams{
		Width: width,
		Padding: Margins{
			Left:   st.padding.Left,
			Top:    st.padding.Top,
			Right:  st.padding.Right,
			Bottom: st.padding.Bottom,
		},
		ItemHeight:      st.item.Height,
		ItemSkip:        st.itemSkip,
		FieldMinWidth:   st.fieldMinWidth,
		FieldCancelSkip: st.fieldCancelSkip,
		FieldIconSkip:   st.fieldIconSkip,
		FieldHeight:     st.fieldHeight,
	}
}
