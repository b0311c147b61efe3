package stage

import (
	"fmt"

	"github.com/lixenwraith/gift-gate/item"
)

// Variant selects the behavior a stage runs with
type Variant uint8

const (
	VariantCatch   Variant = iota // One target at a time, caught N times
	VariantOrdered                // All tiles at once, tapped in canonical order
	VariantRush                   // Several short-lived targets, caught N times
)

func (v Variant) String() string {
	switch v {
	case VariantCatch:
		return "catch"
	case VariantOrdered:
		return "ordered"
	case VariantRush:
		return "rush"
	default:
		return "unknown"
	}
}

// Definition is the immutable description of one stage
type Definition struct {
	ID          int // 1-based ordinal
	Title       string
	Description string
	Target      int
	ScoreLabel  string
	Variant     Variant
	Sequence    []item.Symbol // Canonical order, ordered variant only
}

// DefaultDefinitions returns the reference three-stage gate
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			ID:          1,
			Title:       "The Elusive Box! 🎁",
			Description: "The gift is shy. Catch it 3 times!",
			Target:      3,
			ScoreLabel:  "Catches:",
			Variant:     VariantCatch,
		},
		{
			ID:          2,
			Title:       "Paradox Password! 🧩",
			Description: "Tap the emojis in this EXACT nonsensical order: 🍍 -> 🦆 -> 🦄 -> 🍕",
			Target:      4,
			ScoreLabel:  "Correct Taps:",
			Variant:     VariantOrdered,
			Sequence:    []item.Symbol{"🍍", "🦆", "🦄", "🍕"},
		},
		{
			ID:          3,
			Title:       "The Speed Challenge! ⚡",
			Description: "Catch 7 stars before they vanish! They're moving fast!",
			Target:      7,
			ScoreLabel:  "Stars Caught:",
			Variant:     VariantRush,
		},
	}
}

// validateDefinitions checks the wiring invariants of a stage list
func validateDefinitions(defs []Definition) error {
	if len(defs) == 0 {
		return fmt.Errorf("no stage definitions")
	}
	for i, def := range defs {
		if def.ID != i+1 {
			return fmt.Errorf("stage %d: id %d out of order", i+1, def.ID)
		}
		if def.Target < 1 {
			return fmt.Errorf("stage %d: target %d below 1", def.ID, def.Target)
		}
		if _, ok := strategyTable[def.Variant]; !ok {
			return fmt.Errorf("stage %d: unknown variant %d", def.ID, def.Variant)
		}
		if def.Variant != VariantOrdered {
			continue
		}
		if len(def.Sequence) != def.Target {
			return fmt.Errorf("stage %d: sequence length %d does not match target %d", def.ID, len(def.Sequence), def.Target)
		}
		seen := make(map[item.Symbol]bool, len(def.Sequence))
		for _, sym := range def.Sequence {
			if sym == "" || seen[sym] {
				return fmt.Errorf("stage %d: sequence symbols must be distinct and non-empty", def.ID)
			}
			seen[sym] = true
		}
	}
	return nil
}
