package constants

// Terminal Layout (cells)
const (
	// HeaderRows is the stage title, description and score block above the play area
	HeaderRows = 5

	// FooterRows holds the progress dots and key hints
	FooterRows = 2

	// Terminal item boxes; emoji occupy two columns
	TermGiftWidth    = 4
	TermGiftHeight   = 2
	TermSymbolWidth  = 4
	TermSymbolHeight = 2
	TermStarWidth    = 2
	TermStarHeight   = 1
	TermDecorWidth   = 2
	TermDecorHeight  = 1
)

// Window Layout (pixels)
const (
	ScreenWidth  = 800
	ScreenHeight = 600

	WindowHeaderHeight = 110
	WindowFooterHeight = 40

	// WindowItemSize matches the 60px items of the reference layout
	WindowItemSize = 60

	// WindowStarSize keeps stars smaller than the other targets
	WindowStarSize = 44

	ButtonWidth  = 200
	ButtonHeight = 48
)
