package screen

// Copy is the static text of a non-stage view
type Copy struct {
	Title    string
	Subtitle string
	Button   string // Empty when the view has no button
}

var copies = map[View]Copy{
	ViewWelcome: {
		Title:    "Someone left you a present 🎁",
		Subtitle: "Clear three silly challenges to open the gate",
		Button:   "Let's go!",
	},
	ViewSuccess: {
		Title:    "You did it! 🎉",
		Subtitle: "The gate is open",
		Button:   "Reveal the surprise",
	},
	ViewFinal: {
		Title:    "Happy Birthday! 🎂",
		Subtitle: "Tap the decorations for more confetti",
	},
}

// CopyFor returns the static text for v, zero for the game view
func CopyFor(v View) Copy {
	return copies[v]
}
