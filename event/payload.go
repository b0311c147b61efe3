package event

// ItemPayload describes the item an event refers to, in play-area units
type ItemPayload struct {
	Kind    string
	Payload string
	X, Y    float64 // Item center
	Score   int     // Stage score after the event
}

// StagePayload describes a stage transition
type StagePayload struct {
	Stage int  // 1-based stage index
	Total int  // Number of stages
	Last  bool // Completing this stage clears the gate
}
