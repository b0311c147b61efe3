package render

import "github.com/gdamore/tcell/v2"

// Layer draws one slice of a frame
type Layer interface {
	Render(ctx RenderContext, s tcell.Screen)
}

// VisibilityToggle is optionally implemented for per-view enable/disable
type VisibilityToggle interface {
	IsVisible(ctx RenderContext) bool
}
