package retained

import "time"

// maxSlides bounds the concurrent position transitions of one chip. Two is
// the steady state (a row change); repeated reflows inside one animation
// duration can stack a few more before the oldest finish.
const maxSlides = 4

// slide is one position transition: x glides between fromX and toX on a
// fixed row y.
type slide struct {
	x          Tween
	fromX, toX int
	y          int
}

func (s *slide) start(now time.Time, fromX, toX, y int, st *style) {
	s.fromX, s.toX, s.y = fromX, toX, y
	s.x.Start(now, float64(fromX), float64(toX), st.duration, st.slideEasing)
}

// restart keeps the row and glides from the current value to toX.
func (s *slide) restart(now time.Time, toX int, st *style) {
	s.start(now, s.current(now), toX, s.y, st)
}

func (s *slide) current(now time.Time) int {
	return roundInt(s.x.Value(now))
}

func (s *slide) animating(now time.Time) bool {
	return s.x.Animating(now)
}

// slideList is a fixed-capacity ordered list of slides.
type slideList struct {
	items [maxSlides]slide
	n     int
}

func (l *slideList) len() int { return l.n }

func (l *slideList) at(i int) *slide { return &l.items[i] }

// push appends s. When full the oldest slide is evicted; it is always an
// exit already heading off-screen.
func (l *slideList) push(s slide) {
	if l.n == maxSlides {
		copy(l.items[:], l.items[1:])
		l.n--
	}
	l.items[l.n] = s
	l.n++
}

// prune drops finished slides, keeping order.
func (l *slideList) prune(now time.Time) {
	kept := 0
	for i := 0; i < l.n; i++ {
		if l.items[i].animating(now) {
			l.items[kept] = l.items[i]
			kept++
		}
	}
	for i := kept; i < l.n; i++ {
		l.items[i] = slide{}
	}
	l.n = kept
}

func (l *slideList) anyAnimating(now time.Time) bool {
	for i := 0; i < l.n; i++ {
		if l.items[i].animating(now) {
			return true
		}
	}
	return false
}

// rowSpan returns the lowest and highest row any slide runs on.
func (l *slideList) rowSpan() (minY, maxY int) {
	for i := 0; i < l.n; i++ {
		y := l.items[i].y
		if i == 0 || y < minY {
			minY = y
		}
		if i == 0 || y > maxY {
			maxY = y
		}
	}
	return minY, maxY
}
