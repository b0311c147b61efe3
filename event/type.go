package event

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventItemTapped signals a scoring activation
	// Trigger: Stage engine on a successful catch/match | Payload: *ItemPayload
	// Consumer: Feedback emitter (tap tone + small burst)
	EventItemTapped EventType = iota + 1

	// EventItemRejected signals a wrong-order tap
	// Trigger: Ordered-sequence stage on payload mismatch | Payload: *ItemPayload
	EventItemRejected

	// EventItemExpired signals a rush item timed out before activation
	// Trigger: Timed-rush stage expiry | Payload: *ItemPayload
	EventItemExpired

	// EventStageStarted signals a stage became active
	// Trigger: StartStage | Payload: *StagePayload
	EventStageStarted

	// EventStageComplete signals the active stage reached its target
	// Trigger: Stage engine, exactly once per stage activation | Payload: *StagePayload
	// Consumer: Feedback emitter (success tone + large burst)
	EventStageComplete

	// EventDecorTapped signals a click on a decorative element
	// Trigger: Screen controller | Payload: *ItemPayload (position only)
	EventDecorTapped
)

func (t EventType) String() string {
	switch t {
	case EventItemTapped:
		return "ItemTapped"
	case EventItemRejected:
		return "ItemRejected"
	case EventItemExpired:
		return "ItemExpired"
	case EventStageStarted:
		return "StageStarted"
	case EventStageComplete:
		return "StageComplete"
	case EventDecorTapped:
		return "DecorTapped"
	default:
		return "Unknown"
	}
}

// GameEvent is a single queued event
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
