// internal/sim/event.go

package sim

// EventKind represents the type of simulator event
type EventKind int

const (
	EventEnqueue EventKind = iota // task admitted to the ready set
	EventDispatch                 // task picked to run
	EventFinish                   // task ran to completion
	EventIdle                     // no runnable task, clock about to jump
)

// Event is emitted on every state change of a run.
type Event struct {
	Clock    int64 // simulated time at which the event occurred
	Kind     EventKind
	TaskID   TaskID
	Duration int64 // the task's execution duration; zero for idle events
}

func (k EventKind) String() string {
	switch k {
	case EventEnqueue:
		return "Enqueued"
	case EventDispatch:
		return "Dispatch"
	case EventFinish:
		return "Finish"
	case EventIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}
