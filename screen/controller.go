package screen

import (
	"log"
)

// Stages is the stage engine surface the controller drives
type Stages interface {
	StartStage(n int)
	Deactivate()
}

// Celebrator runs the final-view emission
type Celebrator interface {
	FinishAll()
	Stop()
}

// Controller owns which view is visible and wires view entry and exit to gameplay
//
// Flow: welcome -Start-> game -StagesCleared-> success -Reveal-> final
// Entering game always restarts at stage 1; leaving it deactivates the stage engine
type Controller struct {
	view       View
	stages     Stages
	celebrator Celebrator
	listeners  []func(from, to View)
	changes    int
}

// NewController creates a controller showing the welcome view
func NewController(stages Stages, celebrator Celebrator) *Controller {
	return &Controller{
		view:       ViewWelcome,
		stages:     stages,
		celebrator: celebrator,
	}
}

// OnChange registers a listener called after every view change
func (c *Controller) OnChange(fn func(from, to View)) {
	c.listeners = append(c.listeners, fn)
}

// View returns the visible view
func (c *Controller) View() View {
	return c.view
}

// Changes returns how many view changes have happened
func (c *Controller) Changes() int {
	return c.changes
}

// Show deactivates the visible view and activates v
func (c *Controller) Show(v View) {
	from := c.view

	switch from {
	case ViewGame:
		c.stages.Deactivate()
	case ViewFinal:
		if c.celebrator != nil {
			c.celebrator.Stop()
		}
	}

	c.view = v
	c.changes++
	log.Printf("View %s -> %s", from, v)

	switch v {
	case ViewGame:
		c.stages.StartStage(1)
	case ViewFinal:
		if c.celebrator != nil {
			c.celebrator.FinishAll()
		}
	}

	for _, fn := range c.listeners {
		fn(from, v)
	}
}

// Start handles the welcome button
func (c *Controller) Start() {
	if c.view != ViewWelcome {
		return
	}
	c.Show(ViewGame)
}

// Reveal handles the success button
func (c *Controller) Reveal() {
	if c.view != ViewSuccess {
		return
	}
	c.Show(ViewFinal)
}

// StagesCleared is called by the stage engine once the last stage has paced out
func (c *Controller) StagesCleared() {
	if c.view != ViewGame {
		return
	}
	c.Show(ViewSuccess)
}
