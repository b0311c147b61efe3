package stage

import (
	"time"

	"github.com/lixenwraith/gift-gate/constants"
)

// RuntimeState is the mutable progress of the gate
// Owned by Engine; callers receive copies
type RuntimeState struct {
	Index int // 1-based active stage
	Score int
}

// Stats counts engine outcomes across the session
type Stats struct {
	Activations int // Scoring activations
	Misses      int // Wrong-order taps
	Expiries    int // Rush items that timed out
	Completions int // Stage completions
	Starts      int // Stage starts
}

// Pacing holds the deliberate delays and rush timing
type Pacing struct {
	AdvanceDelay    time.Duration
	FinishDelay     time.Duration
	ResolveLinger   time.Duration
	ShakeDuration   time.Duration
	RushConcurrent  int
	RushStagger     time.Duration
	RushLifetimeMin time.Duration
	RushLifetimeMax time.Duration
	RushExpiryGrace time.Duration
}

// DefaultPacing returns the reference timing
func DefaultPacing() Pacing {
	return Pacing{
		AdvanceDelay:    constants.StageAdvanceDelay,
		FinishDelay:     constants.GateFinishDelay,
		ResolveLinger:   constants.ResolveLinger,
		ShakeDuration:   constants.ShakeDuration,
		RushConcurrent:  constants.RushConcurrentItems,
		RushStagger:     constants.RushStagger,
		RushLifetimeMin: constants.RushLifetimeMin,
		RushLifetimeMax: constants.RushLifetimeMax,
		RushExpiryGrace: constants.RushExpiryGrace,
	}
}
