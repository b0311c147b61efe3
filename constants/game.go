package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the particle integration step after a stall
	MaxFrameDelta = 60 * time.Millisecond
)

// Stage Pacing Constants
const (
	// StageAdvanceDelay is the pause between a stage completion and the next stage start
	StageAdvanceDelay = 800 * time.Millisecond

	// GateFinishDelay is the pause between the last stage completion and the success view
	GateFinishDelay = 1000 * time.Millisecond

	// ResolveLinger keeps a completed ordered board on screen before completion fires
	ResolveLinger = 500 * time.Millisecond

	// ShakeDuration is the wrong-tap failure animation length
	ShakeDuration = 300 * time.Millisecond
)

// Timed-Rush Constants
const (
	// RushConcurrentItems is the number of items live at once
	RushConcurrentItems = 3

	// RushStagger separates the initial item launches
	RushStagger = 300 * time.Millisecond

	// RushLifetimeMin and RushLifetimeMax bound the randomized item lifetime
	RushLifetimeMin = 400 * time.Millisecond
	RushLifetimeMax = 1000 * time.Millisecond

	// RushExpiryGrace delays expiry past the end of the drift animation
	RushExpiryGrace = 100 * time.Millisecond
)

// Cursor Trail Constants
const (
	// TrailChance is the probability a pointer move leaves a sparkle
	TrailChance = 0.15

	// TrailLifetime is how long a sparkle stays visible
	TrailLifetime = 800 * time.Millisecond

	// TrailCap bounds live sparkles
	TrailCap = 64
)
