package item

import (
	"math/rand"
	"testing"
	"time"
)

func newTestFactory(width, height float64) *Factory {
	sizes := map[Kind]Size{
		KindGift:   {W: 6, H: 3},
		KindSymbol: {W: 4, H: 2},
	}
	return NewFactory(NewBoard(width, height), rand.New(rand.NewSource(1)), sizes)
}

// TestCreateStaysInBounds verifies the full box never leaves the play area
func TestCreateStaysInBounds(t *testing.T) {
	f := newTestFactory(40, 12)
	for i := 0; i < 500; i++ {
		it := f.Create(KindGift, "", nil)
		if it.X < 0 || it.Y < 0 || it.X+it.W > 40 || it.Y+it.H > 12 {
			t.Fatalf("item %d out of bounds: (%.2f,%.2f %vx%v)", i, it.X, it.Y, it.W, it.H)
		}
	}
	if f.Board().Len() != 500 {
		t.Errorf("board Len() = %d, want 500", f.Board().Len())
	}
}

// TestCreateSmallBoardClampsToZero verifies undersized play areas pin items at the origin
func TestCreateSmallBoardClampsToZero(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantX, wantY  bool // true when the axis must be pinned to zero
	}{
		{"both axes too small", 3, 1, true, true},
		{"narrow", 2, 50, true, false},
		{"short", 50, 2, false, true},
		{"empty", 0, 0, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFactory(tt.width, tt.height)
			for i := 0; i < 50; i++ {
				it := f.Create(KindGift, "", nil)
				if it.X < 0 || it.Y < 0 {
					t.Fatalf("negative offset (%.2f,%.2f)", it.X, it.Y)
				}
				if tt.wantX && it.X != 0 {
					t.Fatalf("X = %.2f, want 0", it.X)
				}
				if tt.wantY && it.Y != 0 {
					t.Fatalf("Y = %.2f, want 0", it.Y)
				}
			}
		})
	}
}

func TestCreateAttachesPayloadAndHandler(t *testing.T) {
	f := newTestFactory(40, 12)
	var got Symbol
	it := f.Create(KindSymbol, "🦆", func(i *Item) { got = i.Payload })

	if it.Kind != KindSymbol || it.Payload != "🦆" {
		t.Fatalf("item = %v/%q, want symbol/🦆", it.Kind, it.Payload)
	}
	if it.W != 4 || it.H != 2 {
		t.Errorf("size = %vx%v, want 4x2", it.W, it.H)
	}
	if !it.Activate() {
		t.Fatal("Activate() = false for attached item")
	}
	if got != "🦆" {
		t.Errorf("handler saw payload %q", got)
	}
	if it.Glyph() != "🦆" {
		t.Errorf("Glyph() = %q", it.Glyph())
	}
}

func TestUnknownKindDefaultsToUnitBox(t *testing.T) {
	f := newTestFactory(10, 10)
	it := f.Create(KindStar, "", nil)
	if it.W != 1 || it.H != 1 {
		t.Errorf("size = %vx%v, want 1x1", it.W, it.H)
	}
	if it.Glyph() != "⭐" {
		t.Errorf("Glyph() = %q", it.Glyph())
	}
}

// TestDetachedItemIgnoresActivation verifies removed items never call back
func TestDetachedItemIgnoresActivation(t *testing.T) {
	f := newTestFactory(40, 12)
	calls := 0
	it := f.Create(KindGift, "", func(*Item) { calls++ })

	if !f.Board().Remove(it.ID) {
		t.Fatal("Remove() = false for live item")
	}
	if f.Board().Remove(it.ID) {
		t.Error("second Remove() = true")
	}
	if it.Activate() {
		t.Error("Activate() = true after removal")
	}
	if it.Attached() {
		t.Error("Attached() = true after removal")
	}
	if calls != 0 {
		t.Errorf("handler called %d times", calls)
	}
}

func TestBoardClickTopmost(t *testing.T) {
	b := NewBoard(20, 20)
	var hits []string
	bottom := &Item{Kind: KindGift, X: 0, Y: 0, W: 10, H: 10, onActivate: func(*Item) { hits = append(hits, "bottom") }}
	top := &Item{Kind: KindStar, X: 5, Y: 5, W: 10, H: 10, onActivate: func(*Item) { hits = append(hits, "top") }}
	bottom.ID[0], top.ID[0] = 1, 2
	b.Add(bottom)
	b.Add(top)

	if _, ok := b.Click(7, 7); !ok {
		t.Fatal("overlap click missed")
	}
	if _, ok := b.Click(1, 1); !ok {
		t.Fatal("bottom click missed")
	}
	if _, ok := b.Click(19, 19); ok {
		t.Error("empty click activated something")
	}
	if len(hits) != 2 || hits[0] != "top" || hits[1] != "bottom" {
		t.Errorf("hits = %v, want [top bottom]", hits)
	}
}

func TestBoardClearDetachesAll(t *testing.T) {
	f := newTestFactory(40, 12)
	a := f.Create(KindGift, "", nil)
	b := f.Create(KindGift, "", nil)

	if n := f.Board().Clear(); n != 2 {
		t.Errorf("Clear() = %d, want 2", n)
	}
	if a.Attached() || b.Attached() {
		t.Error("items still attached after Clear")
	}
	if f.Board().Contains(a.ID) {
		t.Error("Contains() = true after Clear")
	}
	if _, ok := f.Board().Get(b.ID); ok {
		t.Error("Get() found an item after Clear")
	}
	// Backing array must not pin detached items and their handlers
	for i, it := range f.Board().items[:2] {
		if it != nil {
			t.Errorf("backing slot %d still references an item", i)
		}
	}
}

func TestBoardGetAndRemoveReleasesSlot(t *testing.T) {
	f := newTestFactory(40, 12)
	a := f.Create(KindGift, "", nil)
	b := f.Create(KindGift, "", nil)

	if got, ok := f.Board().Get(a.ID); !ok || got != a {
		t.Fatalf("Get() = %v, %v; want the live item", got, ok)
	}
	f.Board().Remove(a.ID)
	if got, ok := f.Board().Get(b.ID); !ok || got != b {
		t.Errorf("Get() lost the remaining item")
	}
	if tail := f.Board().items[:2][1]; tail != nil {
		t.Error("vacated backing slot still references an item")
	}
}

func TestCapacity(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		kind          Kind
		want          int
	}{
		{"roomy", 40, 12, KindSymbol, 60},
		{"exact grid", 8, 4, KindSymbol, 4},
		{"too narrow", 3, 12, KindSymbol, 0},
		{"too short", 40, 1, KindSymbol, 0},
		{"unit box", 4, 1, KindStar, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFactory(tt.width, tt.height)
			if got := f.Capacity(tt.kind); got != tt.want {
				t.Errorf("Capacity() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestCreateFillsGridWhenTight verifies a board with exactly enough room never stacks tiles
func TestCreateFillsGridWhenTight(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		f := NewFactory(NewBoard(8, 4), rand.New(rand.NewSource(seed)), map[Kind]Size{KindSymbol: {W: 4, H: 2}})
		items := make([]*Item, 0, 4)
		for i := 0; i < 4; i++ {
			items = append(items, f.Create(KindSymbol, Symbol(rune('A'+i)), nil))
		}
		for i := range items {
			for j := i + 1; j < len(items); j++ {
				a, b := items[i], items[j]
				if a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H {
					t.Fatalf("seed %d: items %d and %d overlap at (%.2f,%.2f) and (%.2f,%.2f)", seed, i, j, a.X, a.Y, b.X, b.Y)
				}
			}
		}
		// Every tile is reachable by a click at its center
		for i, it := range items {
			c := it.Center()
			if got, ok := f.Board().ItemAt(c.X, c.Y); !ok || got != it {
				t.Errorf("seed %d: item %d hidden under another", seed, i)
			}
		}
	}
}

func TestDriftAndShake(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := NewBoard(100, 100)
	it := &Item{X: 0, Y: 0, W: 2, H: 2}
	b.Add(it)

	it.MoveTo(Point{X: 40, Y: 20}, start, time.Second)
	b.Update(start.Add(500 * time.Millisecond))
	if it.X <= 0 || it.X >= 40 {
		t.Errorf("mid-drift X = %.2f, want strictly between 0 and 40", it.X)
	}
	b.Update(start.Add(2 * time.Second))
	if it.X != 40 || it.Y != 20 {
		t.Errorf("final position (%.2f,%.2f), want (40,20)", it.X, it.Y)
	}

	it.Shake(start, 300*time.Millisecond)
	if !it.Shaking(start.Add(100 * time.Millisecond)) {
		t.Error("Shaking() = false during animation")
	}
	if it.Shaking(start.Add(300 * time.Millisecond)) {
		t.Error("Shaking() = true after animation")
	}
}

func TestBoardResizeClampsItems(t *testing.T) {
	b := NewBoard(100, 100)
	it := &Item{X: 90, Y: 90, W: 10, H: 10}
	b.Add(it)

	b.Resize(50, 5)
	if it.X != 40 || it.Y != 0 {
		t.Errorf("after resize (%.2f,%.2f), want (40,0)", it.X, it.Y)
	}
	if w, h := b.Bounds(); w != 50 || h != 5 {
		t.Errorf("Bounds() = %vx%v", w, h)
	}
}

// TestCreateAvoidsOverlapWhenRoomy verifies tiles spread out when the board has room
func TestCreateAvoidsOverlapWhenRoomy(t *testing.T) {
	f := newTestFactory(400, 200)
	items := make([]*Item, 0, 4)
	for i := 0; i < 4; i++ {
		items = append(items, f.Create(KindSymbol, Symbol(rune('A'+i)), nil))
	}
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			if a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H {
				t.Errorf("items %d and %d overlap", i, j)
			}
		}
	}
}

// TestPlaceClampsFixedPosition verifies decor placement keeps the box on the board
func TestPlaceClampsFixedPosition(t *testing.T) {
	f := newTestFactory(100, 50)
	clicks := 0
	it := f.Place(KindDecor, "🎈", Point{X: 100, Y: -3}, func(*Item) { clicks++ })

	size := f.SizeOf(KindDecor)
	if it.X != 100-size.W || it.Y != 0 {
		t.Errorf("Place clamped to (%.2f,%.2f), want (%.2f,0)", it.X, it.Y, 100-size.W)
	}
	if it.Glyph() != "🎈" || it.Kind.String() != "decor" {
		t.Errorf("unexpected decor item %q %s", it.Glyph(), it.Kind)
	}
	if _, ok := f.Board().Click(it.X, it.Y); !ok || clicks != 1 {
		t.Errorf("decor click not delivered, clicks=%d", clicks)
	}
	if !it.Attached() {
		t.Error("decor should stay on the board after a click")
	}
}
