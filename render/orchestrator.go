package render

import "github.com/gdamore/tcell/v2"

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the layer pipeline
type Orchestrator struct {
	screen   tcell.Screen
	layers   []layerEntry
	regCount int
}

// NewOrchestrator creates an orchestrator drawing to s
func NewOrchestrator(s tcell.Screen) *Orchestrator {
	return &Orchestrator{
		screen: s,
		layers: make([]layerEntry, 0, 8),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Len returns the number of registered layers
func (o *Orchestrator) Len() int {
	return len(o.layers)
}

// RenderFrame executes the pipeline: clear, render visible layers, show
func (o *Orchestrator) RenderFrame(ctx RenderContext) {
	o.screen.Clear()
	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.layer.Render(ctx, o.screen)
	}
	o.screen.Show()
}
