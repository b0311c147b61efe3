package game

import (
	"testing"
	"time"

	"github.com/lixenwraith/gift-gate/audio"
	"github.com/lixenwraith/gift-gate/config"
	"github.com/lixenwraith/gift-gate/engine"
	"github.com/lixenwraith/gift-gate/item"
	"github.com/lixenwraith/gift-gate/screen"
)

type recordingSounder struct {
	played map[audio.SoundType]int
}

func (r *recordingSounder) Play(p audio.Pattern) {
	r.played[p.Sound]++
}

type harness struct {
	t     *testing.T
	clock *engine.MockTimeProvider
	sound *recordingSounder
	game  *Game
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 42
	cfg.Celebration = 2 * time.Second

	h := &harness{
		t:     t,
		clock: engine.NewMockTimeProvider(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		sound: &recordingSounder{played: make(map[audio.SoundType]int)},
	}
	h.game = New(Options{
		Config: cfg,
		Width:  80,
		Height: 20,
		Sizes: map[item.Kind]item.Size{
			item.KindGift:   {W: 4, H: 2},
			item.KindSymbol: {W: 4, H: 2},
			item.KindStar:   {W: 2, H: 1},
			item.KindDecor:  {W: 2, H: 1},
		},
		Clock:   h.clock,
		Sounder: h.sound,
	})
	return h
}

// run advances d in 16ms frames
func (h *harness) run(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += 16 * time.Millisecond {
		h.clock.Advance(16 * time.Millisecond)
		h.game.Tick()
	}
}

func (h *harness) clickItem(it *item.Item) bool {
	c := it.Center()
	return h.game.Click(c.X, c.Y)
}

func (h *harness) find(kind item.Kind, payload item.Symbol) *item.Item {
	for _, it := range h.game.Board().Items() {
		if it.Kind == kind && (payload == "" || it.Payload == payload) {
			return it
		}
	}
	return nil
}

func TestWelcomeShowsDecor(t *testing.T) {
	h := newHarness(t)

	if h.game.View() != screen.ViewWelcome {
		t.Fatalf("Expected welcome view, got %v", h.game.View())
	}
	decor := h.find(item.KindDecor, "")
	if decor == nil {
		t.Fatal("Expected decor on the welcome view")
	}

	if !h.clickItem(decor) {
		t.Fatal("Expected decor to accept a click")
	}
	h.run(16 * time.Millisecond)

	if h.sound.played[audio.SoundTap] != 1 {
		t.Errorf("Expected decor tap tone, got %v", h.sound.played)
	}
	if h.game.Particles().Len() == 0 {
		t.Error("Expected decor confetti")
	}
}

func TestClickOnEmptySpace(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	h.game.Board().Clear()
	if h.game.Click(1, 1) {
		t.Error("Expected empty click to be ignored")
	}
}

func TestFullRunThrough(t *testing.T) {
	h := newHarness(t)
	h.game.Start()

	if h.game.View() != screen.ViewGame {
		t.Fatalf("Expected game view, got %v", h.game.View())
	}
	if h.find(item.KindDecor, "") != nil {
		t.Fatal("Expected decor cleared when the game starts")
	}

	// Stage 1: catch the gift three times
	for i := 0; i < 3; i++ {
		gift := h.find(item.KindGift, "")
		if gift == nil {
			t.Fatalf("Catch %d: no gift on board", i+1)
		}
		h.clickItem(gift)
		h.run(16 * time.Millisecond)
	}
	if s := h.game.Stages().State(); s.Score != 3 {
		t.Fatalf("Expected stage 1 score 3, got %+v", s)
	}
	h.run(800 * time.Millisecond)
	if s := h.game.Stages().State(); s.Index != 2 || s.Score != 0 {
		t.Fatalf("Expected stage 2 at score 0, got %+v", s)
	}
	if h.game.HUD().ScoreLabel != "Correct Taps:" {
		t.Errorf("Expected HUD to follow stage 2, got %q", h.game.HUD().ScoreLabel)
	}

	// Stage 2: one wrong tap, then the canonical order
	h.clickItem(h.find(item.KindSymbol, "🦄"))
	if s := h.game.Stages().State(); s.Score != 0 {
		t.Fatalf("Expected wrong tap to leave score 0, got %d", s.Score)
	}
	for _, sym := range []item.Symbol{"🍍", "🦆", "🦄", "🍕"} {
		h.clickItem(h.find(item.KindSymbol, sym))
	}
	h.run(500*time.Millisecond + 800*time.Millisecond)
	if s := h.game.Stages().State(); s.Index != 3 {
		t.Fatalf("Expected stage 3, got %+v", s)
	}

	// Stage 3: catch stars as they appear
	for i := 0; i < 400 && h.game.View() == screen.ViewGame && h.game.Stages().Active(); i++ {
		if star := h.find(item.KindStar, ""); star != nil {
			h.clickItem(star)
		}
		h.run(16 * time.Millisecond)
	}
	if s := h.game.Stages().State(); s.Score != 7 {
		t.Fatalf("Expected 7 stars caught, got %+v", s)
	}

	h.run(time.Second + 32*time.Millisecond)
	if h.game.View() != screen.ViewSuccess {
		t.Fatalf("Expected success view, got %v", h.game.View())
	}
	if h.game.Board().Len() != 0 {
		t.Errorf("Expected empty board on success, got %d items", h.game.Board().Len())
	}

	h.game.Reveal()
	if h.game.View() != screen.ViewFinal {
		t.Fatalf("Expected final view, got %v", h.game.View())
	}
	if h.find(item.KindDecor, "🎂") == nil {
		t.Error("Expected final-view decor")
	}
	h.run(100 * time.Millisecond)
	if !h.game.Emitter().Celebrating() {
		t.Error("Expected celebration running")
	}

	h.run(3 * time.Second)
	if h.game.Emitter().Celebrating() {
		t.Error("Expected celebration to end after its duration")
	}

	stats := h.game.Stages().Stats()
	if stats.Completions != 3 || stats.Misses != 1 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if h.sound.played[audio.SoundResolve] != 3 || h.sound.played[audio.SoundFinish] != 1 {
		t.Errorf("Unexpected cues %v", h.sound.played)
	}
	if h.sound.played[audio.SoundTap] != 14 {
		t.Errorf("Expected 14 scoring taps, got %d", h.sound.played[audio.SoundTap])
	}
}

func TestHoverLeavesTrail(t *testing.T) {
	h := newHarness(t)
	for i := 0; i < 200; i++ {
		h.game.Hover(float64(i%80), 5)
	}
	if len(h.game.Trail().Marks()) == 0 {
		t.Fatal("Expected sparkles from pointer movement")
	}
	h.run(time.Second)
	if len(h.game.Trail().Marks()) != 0 {
		t.Error("Expected sparkles to fade")
	}
}

// TestStartRefusedWhenBoardTooSmall verifies a play area that cannot hold the password tiles never starts
func TestStartRefusedWhenBoardTooSmall(t *testing.T) {
	h := newHarness(t)
	h.game.Resize(4, 1)

	if h.game.Fits() {
		t.Fatal("Expected a 4x1 play area not to fit")
	}
	if h.game.Start() {
		t.Error("Expected Start to be refused")
	}
	if h.game.View() != screen.ViewWelcome {
		t.Errorf("Expected welcome view, got %v", h.game.View())
	}
	if h.game.Stages().Stats().Starts != 0 {
		t.Errorf("Expected no stage started, got %d", h.game.Stages().Stats().Starts)
	}

	h.game.Resize(80, 20)
	if !h.game.Start() || h.game.View() != screen.ViewGame {
		t.Errorf("Expected Start after resizing, got view %v", h.game.View())
	}
}
