// Package particles holds the cosmetic bursts spawned by gameplay events.
// Nothing in the simulation reads particle state back.
package particles

import "math"

// Color tags a particle; the renderer maps tags to concrete colors.
type Color uint8

const (
	ColorDot Color = iota
	ColorSpeed
	ColorPhase
	ColorGhost
)

const (
	DefaultCapacity = 256
	burstCount      = 8
	burstLife       = 0.5
)

type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Color   Color
}

// Alpha is the remaining life as a fade factor in [0,1].
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, p.Life/p.MaxLife))
}

// System is a fixed-capacity particle pool. When full, new particles
// overwrite the oldest slots in a circular fashion.
type System struct {
	max    int
	p      []Particle
	ovrIdx int
}

func NewSystem(capacity int) *System {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &System{max: capacity, p: make([]Particle, 0, capacity)}
}

func (s *System) Add(p Particle) {
	if len(s.p) < s.max {
		s.p = append(s.p, p)
		return
	}
	if s.ovrIdx >= s.max {
		s.ovrIdx = 0
	}
	s.p[s.ovrIdx] = p
	s.ovrIdx++
}

// Burst emits a ring of particles at x,y. jitter supplies values in [0,1)
// that vary each particle's speed.
func (s *System) Burst(x, y float64, c Color, jitter func() float64) {
	for i := 0; i < burstCount; i++ {
		angle := math.Pi * 2 * float64(i) / burstCount
		speed := 2 + jitter()
		s.Add(Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    burstLife,
			MaxLife: burstLife,
			Color:   c,
		})
	}
}

// Update advances every particle by dt and drops the expired ones.
func (s *System) Update(dt float64) {
	live := s.p[:0]
	for _, p := range s.p {
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= dt
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	s.p = live
	if s.ovrIdx > len(s.p) {
		s.ovrIdx = 0
	}
}

func (s *System) Clear() {
	s.p = s.p[:0]
	s.ovrIdx = 0
}

func (s *System) Len() int { return len(s.p) }

// Particles returns the live particles. The slice is only valid until the
// next Update, Add or Clear.
func (s *System) Particles() []Particle {
	return s.p
}
