// Package screen sequences the gate's top-level views
package screen

// View is one top-level screen of the gate
type View int

const (
	ViewWelcome View = iota
	ViewGame
	ViewSuccess
	ViewFinal
)

func (v View) String() string {
	switch v {
	case ViewWelcome:
		return "welcome"
	case ViewGame:
		return "game"
	case ViewSuccess:
		return "success"
	case ViewFinal:
		return "final"
	default:
		return "unknown"
	}
}
