package item

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Board is the play area: the live item set, its measured bounds and hit testing
// Later items are drawn on top and win hit tests
type Board struct {
	width, height float64
	items         []*Item
	index         map[uuid.UUID]*Item
}

// NewBoard creates an empty board with the given bounds
func NewBoard(width, height float64) *Board {
	b := &Board{
		index: make(map[uuid.UUID]*Item),
	}
	b.Resize(width, height)
	return b
}

// Bounds returns the current play area size
func (b *Board) Bounds() (width, height float64) {
	return b.width, b.height
}

// Resize updates the bounds and pulls live items back inside
func (b *Board) Resize(width, height float64) {
	b.width = max(width, 0)
	b.height = max(height, 0)
	for _, it := range b.items {
		it.X = clampOrigin(it.X, it.W, b.width)
		it.Y = clampOrigin(it.Y, it.H, b.height)
		it.to.X = clampOrigin(it.to.X, it.W, b.width)
		it.to.Y = clampOrigin(it.to.Y, it.H, b.height)
	}
}

// Add attaches an item to the board
func (b *Board) Add(it *Item) {
	if it.board == b {
		return
	}
	it.board = b
	b.items = append(b.items, it)
	b.index[it.ID] = it
}

// Remove detaches the item, returns false when it was not on the board
func (b *Board) Remove(id uuid.UUID) bool {
	it, ok := b.index[id]
	if !ok {
		return false
	}
	delete(b.index, id)
	for i, candidate := range b.items {
		if candidate == it {
			b.items = slices.Delete(b.items, i, i+1)
			break
		}
	}
	it.board = nil
	return true
}

// Contains reports whether the item is still on the board
func (b *Board) Contains(id uuid.UUID) bool {
	_, ok := b.index[id]
	return ok
}

// Get returns a live item by handle
func (b *Board) Get(id uuid.UUID) (*Item, bool) {
	it, ok := b.index[id]
	return it, ok
}

// Clear detaches every item and returns how many were removed
func (b *Board) Clear() int {
	n := len(b.items)
	for _, it := range b.items {
		it.board = nil
	}
	// Release detached items and their handlers
	clear(b.items)
	b.items = b.items[:0]
	clear(b.index)
	return n
}

// Len returns the number of live items
func (b *Board) Len() int {
	return len(b.items)
}

// Items returns a snapshot of live items in draw order
func (b *Board) Items() []*Item {
	out := make([]*Item, len(b.items))
	copy(out, b.items)
	return out
}

// ItemAt returns the topmost item under the point
func (b *Board) ItemAt(x, y float64) (*Item, bool) {
	for i := len(b.items) - 1; i >= 0; i-- {
		if b.items[i].Contains(x, y) {
			return b.items[i], true
		}
	}
	return nil, false
}

// Click activates the topmost item under the point
func (b *Board) Click(x, y float64) (*Item, bool) {
	it, ok := b.ItemAt(x, y)
	if !ok {
		return nil, false
	}
	return it, it.Activate()
}

// Update advances item animations to now
func (b *Board) Update(now time.Time) {
	for _, it := range b.items {
		it.step(now)
	}
}

// clampOrigin keeps [origin, origin+size) inside [0, limit), zero when size exceeds limit
func clampOrigin(origin, size, limit float64) float64 {
	maxOrigin := limit - size
	if maxOrigin < 0 {
		return 0
	}
	if origin > maxOrigin {
		return maxOrigin
	}
	if origin < 0 {
		return 0
	}
	return origin
}
