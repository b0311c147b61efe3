package screen

import (
	"fmt"

	"github.com/lixenwraith/gift-gate/stage"
)

// HUD is the stage header model renderers draw from
type HUD struct {
	Title       string
	Description string
	ScoreLabel  string
	Score       int
	Target      int
	Stage       int // 1-based active stage, 0 before the first start
	Total       int
}

// ShowStage records the stage text and position
func (h *HUD) ShowStage(def stage.Definition, index, total int) {
	h.Title = def.Title
	h.Description = def.Description
	h.ScoreLabel = def.ScoreLabel
	h.Stage = index
	h.Total = total
}

// ShowScore records the current score against the target
func (h *HUD) ShowScore(score, target int) {
	h.Score = score
	h.Target = target
}

// ScoreText formats the score line
func (h *HUD) ScoreText() string {
	return fmt.Sprintf("%s %d / %d", h.ScoreLabel, h.Score, h.Target)
}

// Dots returns one flag per stage, set only for the active stage
func (h *HUD) Dots() []bool {
	dots := make([]bool, h.Total)
	if h.Stage >= 1 && h.Stage <= h.Total {
		dots[h.Stage-1] = true
	}
	return dots
}
