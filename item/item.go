// Package item models the clickable targets a stage spawns and the play area they live on
package item

import (
	"time"

	"github.com/google/uuid"
)

// Kind selects an item's look and hit box
type Kind uint8

const (
	KindGift   Kind = iota // Catch-style target
	KindSymbol             // Ordered-sequence tile carrying a payload
	KindStar               // Timed-rush target
	KindDecor              // Decorative element outside any stage
)

func (k Kind) String() string {
	switch k {
	case KindGift:
		return "gift"
	case KindSymbol:
		return "symbol"
	case KindStar:
		return "star"
	case KindDecor:
		return "decor"
	default:
		return "unknown"
	}
}

// Symbol is the payload compared by order-sensitive stages, empty when unused
type Symbol string

// Point is a play-area coordinate, origin top-left
type Point struct {
	X, Y float64
}

// Item is a single interactive on-screen target
// Owned by the stage that spawned it; detached from its board on activation, expiry or stage exit
type Item struct {
	ID       uuid.UUID // Opaque rendering handle
	Kind     Kind
	Payload  Symbol
	X, Y     float64 // Top-left corner
	W, H     float64
	Deadline time.Time // Zero when the item never expires
	Resolved bool      // Ordered-sequence tile already matched

	shakeUntil time.Time

	// Drift animation
	from      Point
	to        Point
	moveStart time.Time
	moveDur   time.Duration

	onActivate func(*Item)
	board      *Board
}

// Glyph returns the text drawn for the item
func (it *Item) Glyph() string {
	switch it.Kind {
	case KindGift:
		return "🎁"
	case KindStar:
		return "⭐"
	default:
		return string(it.Payload)
	}
}

// Center returns the midpoint of the item's box
func (it *Item) Center() Point {
	return Point{X: it.X + it.W/2, Y: it.Y + it.H/2}
}

// Contains reports whether the point falls inside the item's box
func (it *Item) Contains(x, y float64) bool {
	return x >= it.X && x < it.X+it.W && y >= it.Y && y < it.Y+it.H
}

// Attached reports whether the item is still on a board
func (it *Item) Attached() bool {
	return it.board != nil
}

// Activate runs the activation handler, returns false for detached items
func (it *Item) Activate() bool {
	if it.board == nil || it.onActivate == nil {
		return false
	}
	it.onActivate(it)
	return true
}

// Resolve marks an ordered tile as matched; it stays on the board
func (it *Item) Resolve() {
	it.Resolved = true
}

// Shake starts (or restarts) the failure animation
func (it *Item) Shake(now time.Time, d time.Duration) {
	it.shakeUntil = now.Add(d)
}

// Shaking reports whether the failure animation is running
func (it *Item) Shaking(now time.Time) bool {
	return now.Before(it.shakeUntil)
}

// MoveTo starts a linear drift from the current position to p over d
func (it *Item) MoveTo(p Point, start time.Time, d time.Duration) {
	it.from = Point{X: it.X, Y: it.Y}
	it.to = p
	it.moveStart = start
	it.moveDur = d
}

// step advances the drift animation to now
func (it *Item) step(now time.Time) {
	if it.moveDur <= 0 {
		return
	}
	progress := float64(now.Sub(it.moveStart)) / float64(it.moveDur)
	if progress < 0 {
		return
	}
	if progress >= 1 {
		it.X, it.Y = it.to.X, it.to.Y
		it.moveDur = 0
		return
	}
	// Ease-out matches the decelerating drift of the stars
	eased := 1 - (1-progress)*(1-progress)
	it.X = it.from.X + (it.to.X-it.from.X)*eased
	it.Y = it.from.Y + (it.to.Y-it.from.Y)*eased
}
