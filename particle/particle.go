// Package particle simulates confetti bursts in normalized play-area space
// Coordinates run 0..1 on both axes with Y growing downward; angles are in
// degrees with 90 pointing straight up
package particle

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/gift-gate/constants"
)

// Point is a normalized play-area position
type Point struct {
	X, Y float64
}

// Burst describes one emission
type Burst struct {
	Count    int
	Angle    float64 // Center of the cone, degrees
	Spread   float64 // Full cone width, degrees
	Origin   Point
	Colors   []color.RGBA // Falls back to the party palette when empty
	Velocity float64      // Falls back to ParticleStartVelocity when zero
}

// Particle is one live confetti piece
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  color.RGBA
	Age    time.Duration
	Life   time.Duration
}

// Fade returns remaining life in [0, 1]
func (p *Particle) Fade() float64 {
	if p.Life <= 0 {
		return 0
	}
	return max(0, 1-float64(p.Age)/float64(p.Life))
}

// System owns every live particle
type System struct {
	rng       *rand.Rand
	particles []Particle
	limit     int
	emitted   int
}

// NewSystem creates an empty system; nil rng seeds from the clock
func NewSystem(rng *rand.Rand) *System {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &System{
		rng:   rng,
		limit: constants.ParticleCap,
	}
}

// SetLimit changes the live particle cap
func (s *System) SetLimit(n int) {
	s.limit = max(n, 1)
	s.trim()
}

// Burst emits b.Count particles and returns how many were spawned
func (s *System) Burst(b Burst) int {
	if b.Count <= 0 {
		return 0
	}
	colors := b.Colors
	if len(colors) == 0 {
		colors = constants.PartyPalette
	}
	speed := b.Velocity
	if speed <= 0 {
		speed = constants.ParticleStartVelocity
	}

	for i := 0; i < b.Count; i++ {
		deg := b.Angle + (s.rng.Float64()-0.5)*b.Spread
		rad := deg * math.Pi / 180
		v := speed * (0.5 + 0.5*s.rng.Float64())
		life := time.Duration(float64(constants.ParticleLifetime) * (0.6 + 0.4*s.rng.Float64()))

		s.particles = append(s.particles, Particle{
			X:     b.Origin.X,
			Y:     b.Origin.Y,
			VX:    math.Cos(rad) * v,
			VY:    -math.Sin(rad) * v,
			Color: colors[s.rng.Intn(len(colors))],
			Life:  life,
		})
	}
	s.emitted += b.Count
	s.trim()
	return b.Count
}

// Update integrates motion: v = v + a*dt; p = p + v*dt, then ages out dead pieces
func (s *System) Update(dt time.Duration) {
	if dt <= 0 || len(s.particles) == 0 {
		return
	}
	sec := dt.Seconds()
	drag := math.Pow(constants.ParticleDrag, sec*60)

	live := s.particles[:0]
	for _, p := range s.particles {
		p.VY += constants.ParticleGravity * sec
		p.VX *= drag
		p.VY *= drag
		p.X += p.VX * sec
		p.Y += p.VY * sec
		p.Age += dt

		if p.Age >= p.Life || p.Y > 1.2 || p.X < -0.2 || p.X > 1.2 {
			continue
		}
		live = append(live, p)
	}
	// Release references held past the new length
	clear(s.particles[len(live):])
	s.particles = live
}

// Each visits live particles in emission order
func (s *System) Each(fn func(p *Particle)) {
	for i := range s.particles {
		fn(&s.particles[i])
	}
}

// Len returns the live particle count
func (s *System) Len() int {
	return len(s.particles)
}

// Emitted returns the lifetime emission count
func (s *System) Emitted() int {
	return s.emitted
}

// Clear drops every live particle
func (s *System) Clear() {
	clear(s.particles)
	s.particles = s.particles[:0]
}

// trim drops the oldest particles above the cap
func (s *System) trim() {
	if over := len(s.particles) - s.limit; over > 0 {
		s.particles = append(s.particles[:0], s.particles[over:]...)
	}
}
