package particle

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/gift-gate/constants"
)

// Mark is one sparkle left behind by the pointer
type Mark struct {
	X, Y float64 // Play-area units
	Born time.Time
}

// Trail keeps short-lived sparkles along the pointer path
type Trail struct {
	rng   *rand.Rand
	marks []Mark
	life  time.Duration
}

// NewTrail creates an empty trail; nil rng seeds from the clock
func NewTrail(rng *rand.Rand) *Trail {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Trail{rng: rng, life: constants.TrailLifetime}
}

// Move records a pointer position, leaving a sparkle on a fraction of moves
func (t *Trail) Move(x, y float64, now time.Time) bool {
	if t.rng.Float64() >= constants.TrailChance {
		return false
	}
	t.marks = append(t.marks, Mark{X: x, Y: y, Born: now})
	if over := len(t.marks) - constants.TrailCap; over > 0 {
		t.marks = append(t.marks[:0], t.marks[over:]...)
	}
	return true
}

// Update drops sparkles older than their lifetime
func (t *Trail) Update(now time.Time) {
	live := t.marks[:0]
	for _, m := range t.marks {
		if now.Sub(m.Born) < t.life {
			live = append(live, m)
		}
	}
	t.marks = live
}

// Marks returns live sparkles oldest first
func (t *Trail) Marks() []Mark {
	return t.marks
}

// Clear drops every sparkle
func (t *Trail) Clear() {
	t.marks = t.marks[:0]
}
