package item

import (
	"math/rand"

	"github.com/google/uuid"
)

// placementAttempts bounds the search for a spot that does not cover a live item
const placementAttempts = 8

// gridCapacity is the slot count at or below which placement snaps to the grid
// Above it, four live boxes block at most sixteen slots, so the grid scan always finds one
const gridCapacity = 16

// Size is an item's box in play-area units
type Size struct {
	W, H float64
}

// Factory creates items at random positions fully inside the board
type Factory struct {
	board *Board
	rng   *rand.Rand
	sizes map[Kind]Size
}

// NewFactory creates a factory placing items on board, sizes keyed by kind
// Kinds missing from sizes get a 1x1 box
func NewFactory(board *Board, rng *rand.Rand, sizes map[Kind]Size) *Factory {
	return &Factory{
		board: board,
		rng:   rng,
		sizes: sizes,
	}
}

// Board returns the surface items are placed on
func (f *Factory) Board() *Board {
	return f.board
}

// SizeOf returns the box used for a kind
func (f *Factory) SizeOf(kind Kind) Size {
	if s, ok := f.sizes[kind]; ok {
		return s
	}
	return Size{W: 1, H: 1}
}

// Create builds an item, places it on the board and registers its activation handler
func (f *Factory) Create(kind Kind, payload Symbol, onActivate func(*Item)) *Item {
	size := f.SizeOf(kind)
	pos := f.freePosition(size)
	it := &Item{
		ID:         uuid.New(),
		Kind:       kind,
		Payload:    payload,
		X:          pos.X,
		Y:          pos.Y,
		W:          size.W,
		H:          size.H,
		onActivate: onActivate,
	}
	f.board.Add(it)
	return it
}

// Place builds an item at a fixed top-left corner, clamped inside the board
func (f *Factory) Place(kind Kind, payload Symbol, pos Point, onActivate func(*Item)) *Item {
	size := f.SizeOf(kind)
	width, height := f.board.Bounds()
	it := &Item{
		ID:         uuid.New(),
		Kind:       kind,
		Payload:    payload,
		X:          clampOrigin(pos.X, size.W, width),
		Y:          clampOrigin(pos.Y, size.H, height),
		W:          size.W,
		H:          size.H,
		onActivate: onActivate,
	}
	f.board.Add(it)
	return it
}

// RandomPosition returns a uniform top-left corner keeping the box inside the board
// Boards smaller than the box pin that axis to zero
func (f *Factory) RandomPosition(size Size) Point {
	width, height := f.board.Bounds()
	return Point{
		X: f.rng.Float64() * max(width-size.W, 0),
		Y: f.rng.Float64() * max(height-size.H, 0),
	}
}

// Capacity returns how many boxes of kind tile the board without overlapping
func (f *Factory) Capacity(kind Kind) int {
	return f.capacity(f.SizeOf(kind))
}

func (f *Factory) capacity(size Size) int {
	width, height := f.board.Bounds()
	if size.W <= 0 || size.H <= 0 || size.W > width || size.H > height {
		return 0
	}
	return int(width/size.W) * int(height/size.H)
}

// freePosition picks a spot overlapping no live item when one can be found
// Tight boards place on a grid of box-sized slots so every free slot stays usable;
// roomy boards sample uniformly and fall back to the grid scan, then to the last candidate
// A crowded board still gets its item; the newest item is on top and stays clickable
func (f *Factory) freePosition(size Size) Point {
	if f.capacity(size) <= gridCapacity {
		if slot, ok := f.gridPosition(size); ok {
			return slot
		}
		return f.RandomPosition(size)
	}

	var pos Point
	for attempt := 0; attempt < placementAttempts; attempt++ {
		pos = f.RandomPosition(size)
		if !f.overlapsLive(pos, size) {
			return pos
		}
	}
	if slot, ok := f.gridPosition(size); ok {
		return slot
	}
	return pos
}

// gridPosition returns a random box-sized slot overlapping no live item
func (f *Factory) gridPosition(size Size) (Point, bool) {
	if f.capacity(size) == 0 {
		return Point{}, false
	}
	width, height := f.board.Bounds()
	var free []Point
	for y := 0.0; y+size.H <= height; y += size.H {
		for x := 0.0; x+size.W <= width; x += size.W {
			if p := (Point{X: x, Y: y}); !f.overlapsLive(p, size) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[f.rng.Intn(len(free))], true
}

func (f *Factory) overlapsLive(pos Point, size Size) bool {
	for _, it := range f.board.items {
		if pos.X < it.X+it.W && it.X < pos.X+size.W && pos.Y < it.Y+it.H && it.Y < pos.Y+size.H {
			return true
		}
	}
	return false
}
