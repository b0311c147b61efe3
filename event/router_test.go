package event

import "testing"

type recordingHandler struct {
	types []EventType
	seen  []EventType
}

func (h *recordingHandler) HandleEvent(ev GameEvent) { h.seen = append(h.seen, ev.Type) }
func (h *recordingHandler) EventTypes() []EventType  { return h.types }

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventItemTapped})
	q.Push(GameEvent{Type: EventStageComplete})

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
	got := q.Consume()
	if len(got) != 2 || got[0].Type != EventItemTapped || got[1].Type != EventStageComplete {
		t.Fatalf("Consume() = %v", got)
	}
	if q.Consume() != nil {
		t.Error("second Consume() returned events")
	}
}

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)
	taps := &recordingHandler{types: []EventType{EventItemTapped}}
	all := &recordingHandler{types: []EventType{EventItemTapped, EventStageComplete}}
	r.Register(taps)
	r.Register(all)

	q.Push(GameEvent{Type: EventItemTapped})
	q.Push(GameEvent{Type: EventItemRejected})
	q.Push(GameEvent{Type: EventStageComplete})

	if n := r.DispatchAll(); n != 3 {
		t.Errorf("DispatchAll() = %d, want 3", n)
	}
	if len(taps.seen) != 1 {
		t.Errorf("tap handler saw %v", taps.seen)
	}
	if len(all.seen) != 2 || all.seen[1] != EventStageComplete {
		t.Errorf("multi handler saw %v", all.seen)
	}
	if r.HandlerCount(EventItemTapped) != 2 || r.HandlerCount(EventItemRejected) != 0 {
		t.Error("unexpected handler counts")
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		t    EventType
		want string
	}{
		{EventItemTapped, "ItemTapped"},
		{EventStageComplete, "StageComplete"},
		{EventType(999), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}
