package retained

import (
	"fmt"
	"time"

	"github.com/agiangrant/tagflow/theme"
)

// style is a theme compiled for the engine: durations and easings resolved,
// colours parsed. Shared read-only by the container and its chips.
type style struct {
	item     theme.Item
	itemSkip int
	padding  theme.Margins

	fieldMinWidth   int
	fieldCancelSkip int
	fieldIconSkip   int
	fieldHeight     int
	maxHeight       int

	duration     time.Duration
	slideEasing  EasingFunc
	heightEasing EasingFunc

	colors theme.Colors
}

func compileStyle(t theme.Theme, dark bool) (*style, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	colors, err := t.Resolve(dark)
	if err != nil {
		return nil, err
	}
	st := &style{
		item:            t.Item,
		itemSkip:        t.ItemSkip,
		padding:         t.Padding,
		fieldMinWidth:   t.FieldMinWidth,
		fieldCancelSkip: t.FieldCancelSkip,
		fieldIconSkip:   t.FieldIconSkip,
		fieldHeight:     t.FieldHeight,
		maxHeight:       t.MaxHeight,
		duration:        t.Item.Duration(),
		slideEasing:     easingOrLinear(t.Item.SlideEasing),
		heightEasing:    easingOrLinear(t.HeightEasing),
		colors:          colors,
	}
	if st.slideEasing == nil || st.heightEasing == nil {
		return nil, fmt.Errorf("%w: unknown easing", theme.ErrInvalidTheme)
	}
	return st, nil
}

func easingOrLinear(name string) EasingFunc {
	if name == "" {
		return EaseLinear
	}
	return EasingByName(name)
}

// itemPaintMargins is how far a chip's paint may spill outside its paint
// area: overshooting show animations and row-change slides into the padding.
func (st *style) itemPaintMargins() (left, top, right, bottom int) {
	return max(st.itemSkip, st.padding.Left), st.itemSkip,
		max(st.itemSkip, st.padding.Right), st.itemSkip
}

// maxVisiblePadding is how far outside the inner width a chip must be to be
// completely hidden behind the container edge.
func (st *style) maxVisiblePadding() int {
	return max(st.padding.Left, st.padding.Right)
}
