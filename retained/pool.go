package retained

import "sync"

// ============================================================================
// Placement Slice Pooling
// ============================================================================
//
// Every paint pass collects the positions each chip is drawn at. Pooling
// the slices keeps animation frames allocation-free.
//
// Usage:
//   pts := acquirePlacements()
//   pts = chip.placements(now, pts)
//   ... use pts ...
//   releasePlacements(pts)

var placementPool = sync.Pool{
	New: func() any {
		// One authoritative position plus maxSlides covers every chip.
		s := make([]Point, 0, maxSlides+1)
		return &s
	},
}

// acquirePlacements returns an empty slice from the pool.
func acquirePlacements() []Point {
	return (*placementPool.Get().(*[]Point))[:0]
}

// releasePlacements returns a slice to the pool.
func releasePlacements(s []Point) {
	if s == nil || cap(s) > 64 {
		return
	}
	s = s[:0]
	placementPool.Put(&s)
}

// ============================================================================
// Width Slice Pooling
// ============================================================================

var widthPool = sync.Pool{
	New: func() any {
		s := make([]int, 0, 32)
		return &s
	},
}

// acquireWidths returns a slice of length n from the pool.
func acquireWidths(n int) []int {
	s := *widthPool.Get().(*[]int)
	if cap(s) < n {
		widthPool.Put(&s)
		return make([]int, n, n*2)
	}
	return s[:n]
}

// releaseWidths returns a slice to the pool.
func releaseWidths(s []int) {
	if s == nil || cap(s) > 1024 {
		return
	}
	s = s[:0]
	widthPool.Put(&s)
}
