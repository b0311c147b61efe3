package constants

import (
	"image/color"
	"time"
)

// Particle Physics (fractions of play-area height per second)
const (
	ParticleStartVelocity = 1.6
	ParticleGravity       = 1.1
	ParticleDrag          = 0.9 // Velocity retained per 1/60s step
	ParticleLifetime      = 2 * time.Second
	ParticleCap           = 2000
)

// Burst Shapes
const (
	TapBurstCount  = 12
	TapBurstSpread = 360.0

	ResolveBurstCount   = 100
	ResolveBurstSpread  = 70.0
	ResolveBurstOriginY = 0.6

	DecorBurstCount   = 50
	DecorBurstSpread  = 60.0
	DecorBurstOriginY = 0.7

	CelebrationBurstCount  = 5
	CelebrationBurstSpread = 55.0
	CelebrationLeftAngle   = 60.0
	CelebrationRightAngle  = 120.0
)

// CelebrationDuration bounds the sustained final-view emission
const CelebrationDuration = 15 * time.Second

// PartyPalette colors the celebration confetti
var PartyPalette = []color.RGBA{
	{255, 133, 162, 255},
	{157, 80, 187, 255},
	{110, 127, 243, 255},
	{255, 207, 51, 255},
	{255, 255, 255, 255},
}
