package sim

import "fmt"

// TaskID uniquely identifies a task in a workload.
type TaskID uint64

// Task is one immutable unit of work handed to the simulator.
type Task struct {
	ID                TaskID
	QueuedAt          int64 // simulated instant the task becomes runnable
	ExecutionDuration int64 // processor time the task occupies once started
}

// Validate checks the workload invariants the simulator relies on: unique IDs
// and non-negative times. The core assumes these hold; callers reject invalid
// workloads at the boundary before simulating.
func Validate(tasks []Task) error {
	seen := make(map[TaskID]struct{}, len(tasks))
	for _, t := range tasks {
		if t.QueuedAt < 0 {
			return fmt.Errorf("task %d: negative queued_at %d", t.ID, t.QueuedAt)
		}
		if t.ExecutionDuration < 0 {
			return fmt.Errorf("task %d: negative execution_duration %d", t.ID, t.ExecutionDuration)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("task %d: duplicate id", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
