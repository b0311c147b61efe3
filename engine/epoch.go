package engine

// Epoch is a generation counter separating current deferred work from stale work
// Every stage start or deactivation advances it; callbacks captured under an older
// generation become silent no-ops
type Epoch struct {
	value uint64
}

// Current returns the active generation
func (e *Epoch) Current() uint64 {
	return e.value
}

// Advance invalidates every callback guarded so far and returns the new generation
func (e *Epoch) Advance() uint64 {
	e.value++
	return e.value
}

// Valid reports whether a captured generation is still the active one
func (e *Epoch) Valid(captured uint64) bool {
	return e.value == captured
}

// Guard wraps fn so it only runs while the generation captured now is still active
func (e *Epoch) Guard(fn func()) func() {
	captured := e.value
	return func() {
		if e.value != captured {
			return
		}
		fn()
	}
}
