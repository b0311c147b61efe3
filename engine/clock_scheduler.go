package engine

import (
	"container/heap"
	"time"
)

// Scheduler issues delayed and per-frame callbacks on the game goroutine
// There is no cancellation: callbacks guard themselves (see Epoch)
type Scheduler interface {
	// After runs fn once, on the first tick at or past now+delay
	After(delay time.Duration, fn func())

	// NextFrame runs fn once, on the next tick
	NextFrame(fn func())
}

// scheduledTask is a single fire-once timer entry
type scheduledTask struct {
	deadline time.Time
	seq      uint64
	fn       func()
}

// taskHeap orders timers by deadline, ties broken by insertion order
type taskHeap []*scheduledTask

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(*scheduledTask)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// ClockScheduler drives timers and frame continuations from the frontend's frame loop
//
// Architecture:
//   - Single-threaded: After/NextFrame/Tick are called from the game goroutine only
//   - Each Tick runs every timer due at tick time, then every frame callback queued before the tick
//   - Work scheduled while a tick is running never runs in that same tick
type ClockScheduler struct {
	clock  TimeProvider
	timers taskHeap
	frame  []func()
	seq    uint64
	frames uint64
}

// NewClockScheduler creates a scheduler reading deadlines from the given clock
func NewClockScheduler(clock TimeProvider) *ClockScheduler {
	return &ClockScheduler{
		clock:  clock,
		timers: make(taskHeap, 0, 16),
	}
}

// Clock returns the time provider deadlines are measured against
func (cs *ClockScheduler) Clock() TimeProvider {
	return cs.clock
}

// After schedules fn to run once after delay, negative delays are treated as zero
func (cs *ClockScheduler) After(delay time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	cs.seq++
	heap.Push(&cs.timers, &scheduledTask{
		deadline: cs.clock.Now().Add(delay),
		seq:      cs.seq,
		fn:       fn,
	})
}

// NextFrame schedules fn for the next Tick
func (cs *ClockScheduler) NextFrame(fn func()) {
	if fn == nil {
		return
	}
	cs.frame = append(cs.frame, fn)
}

// Tick executes one frame worth of scheduled work and returns the number of callbacks run
func (cs *ClockScheduler) Tick() int {
	now := cs.clock.Now()
	limit := cs.seq
	frame := cs.frame
	cs.frame = nil
	cs.frames++

	ran := 0
	for cs.timers.Len() > 0 {
		next := cs.timers[0]
		if next.deadline.After(now) || next.seq > limit {
			break
		}
		heap.Pop(&cs.timers)
		next.fn()
		ran++
	}

	for _, fn := range frame {
		fn()
		ran++
	}
	return ran
}

// Pending returns the number of queued timers and frame callbacks
func (cs *ClockScheduler) Pending() int {
	return cs.timers.Len() + len(cs.frame)
}

// Frames returns the number of ticks executed so far
func (cs *ClockScheduler) Frames() uint64 {
	return cs.frames
}
