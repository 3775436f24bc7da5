package entities

// TrailPoint is one remembered position, used only for rendering.
type TrailPoint struct {
	X, Y float64
}

// Trail is a bounded ring of recent positions. Pushing past the limit
// evicts the oldest point.
type Trail struct {
	buf   []TrailPoint
	head  int // index of the oldest point
	n     int
	limit int
}

func NewTrail(limit int) *Trail {
	if limit < 1 {
		limit = 1
	}
	return &Trail{buf: make([]TrailPoint, limit), limit: limit}
}

func (t *Trail) Len() int   { return t.n }
func (t *Trail) Limit() int { return t.limit }

func (t *Trail) Push(x, y float64) {
	if t.n == t.limit {
		t.head = (t.head + 1) % len(t.buf)
		t.n--
	}
	t.buf[(t.head+t.n)%len(t.buf)] = TrailPoint{X: x, Y: y}
	t.n++
}

func (t *Trail) Clear() {
	t.head = 0
	t.n = 0
}

// SetLimit changes how many points are kept, dropping the oldest ones if
// the trail is now over the limit.
func (t *Trail) SetLimit(limit int) {
	if limit < 1 {
		limit = 1
	}
	if limit == t.limit {
		return
	}
	for t.n > limit {
		t.head = (t.head + 1) % len(t.buf)
		t.n--
	}
	if limit > len(t.buf) {
		pts := t.Points()
		t.buf = make([]TrailPoint, limit)
		copy(t.buf, pts)
		t.head = 0
	}
	t.limit = limit
}

// Points returns the trail from oldest to newest.
func (t *Trail) Points() []TrailPoint {
	out := make([]TrailPoint, t.n)
	for i := 0; i < t.n; i++ {
		out[i] = t.buf[(t.head+i)%len(t.buf)]
	}
	return out
}
