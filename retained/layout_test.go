package retained

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainParams(width int) FlowParams {
	return FlowParams{
		Width:         width,
		ItemHeight:    32,
		ItemSkip:      8,
		FieldMinWidth: 10,
		FieldHeight:   32,
	}
}

func TestComputeFlowWrapsAtWidth(t *testing.T) {
	l := ComputeFlow([]int{80, 80, 80}, plainParams(300))
	assert.Equal(t, []Point{{0, 0}, {88, 0}, {176, 0}}, l.Positions)
	assert.Equal(t, Rect{264, 0, 36, 32}, l.Field)
	assert.Equal(t, 1, l.RowCount())

	l = ComputeFlow([]int{80, 80, 80, 80}, plainParams(300))
	assert.Equal(t, []Point{{0, 0}, {88, 0}, {176, 0}, {0, 40}}, l.Positions)
	assert.Equal(t, Rect{88, 40, 212, 32}, l.Field)
	assert.Equal(t, 72, l.ContentHeight)
	assert.Equal(t, 2, l.RowCount())
}

func TestComputeFlowFieldPlacement(t *testing.T) {
	tests := []struct {
		name   string
		widths []int
		params func(*FlowParams)
		field  Rect
		height int
	}{
		{
			name:   "empty reserves icon skip",
			params: func(p *FlowParams) { p.FieldIconSkip = 44 },
			field:  Rect{44, 0, 256, 32},
			height: 32,
		},
		{
			name:   "inline after chips",
			widths: []int{100},
			field:  Rect{108, 0, 192, 32},
			height: 32,
		},
		{
			name:   "own row when min width does not fit",
			widths: []int{100, 100},
			params: func(p *FlowParams) { p.FieldMinWidth = 60; p.FieldCancelSkip = 40 },
			field:  Rect{0, 40, 300, 32},
			height: 72,
		},
		{
			name:   "padding",
			widths: []int{100},
			params: func(p *FlowParams) { p.Padding = Margins{16, 8, 16, 8} },
			field:  Rect{108, 0, 160, 32},
			height: 48,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := plainParams(300)
			if tt.params != nil {
				tt.params(&p)
			}
			l := ComputeFlow(tt.widths, p)
			assert.Equal(t, tt.field, l.Field)
			assert.Equal(t, tt.height, l.ContentHeight)
		})
	}
}

func TestComputeFlowPacking(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 200 {
		width := 120 + rng.Intn(400)
		p := plainParams(width)
		widths := make([]int, rng.Intn(12))
		for i := range widths {
			widths[i] = 20 + rng.Intn(width-20)
		}

		l := ComputeFlow(widths, p)
		require.Len(t, l.Positions, len(widths))
		for i, pos := range l.Positions {
			assert.LessOrEqual(t, pos.X+widths[i], width, "chip %d overflows", i)
			if i == 0 {
				assert.Equal(t, Point{0, 0}, pos)
				continue
			}
			prev := l.Positions[i-1]
			if pos.Y == prev.Y {
				assert.Equal(t, prev.X+widths[i-1]+p.ItemSkip, pos.X, "gap between %d and %d", i-1, i)
			} else {
				assert.Equal(t, prev.Y+p.ItemHeight+p.ItemSkip, pos.Y)
				assert.Zero(t, pos.X)
				assert.Greater(t, prev.X+widths[i-1]+p.ItemSkip+widths[i], width, "wrapped although it fit")
			}
		}
		assert.Equal(t, l, ComputeFlow(widths, p), "deterministic")
	}
}

func TestStyleFlowParams(t *testing.T) {
	st := testStyle(t)
	p := st.flowParams(400)
	assert.Equal(t, Margins{16, 8, 16, 8}, p.Padding)
	assert.Equal(t, 32, p.ItemHeight)
	assert.Equal(t, 8, p.ItemSkip)
	assert.Equal(t, 44, p.FieldIconSkip)
}
