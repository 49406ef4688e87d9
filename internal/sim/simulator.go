// internal/sim/simulator.go

package sim

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Simulator replays one workload on a single non-preemptive processor under a
// shortest-processing-time-first discipline and records the completion order.
// It owns its backlog and ready set exclusively for the duration of one run,
// so no locking is needed and independent runs are safe in parallel.
type Simulator struct {
	backlog []Task             // not yet arrived, sorted by QueuedAt ascending
	ready   *redblacktree.Tree // arrived, ordered by (ExecutionDuration, ID)
	clock   Clock
	order   []TaskID

	observer func(Event)

	// trace-related
	csvFile   *os.File
	csvWriter *csv.Writer
}

// New copies the workload into a fresh Simulator. Tasks may be given in any
// order; the input is assumed valid per Validate.
func New(tasks []Task) *Simulator {
	backlog := make([]Task, len(tasks))
	copy(backlog, tasks)
	sort.SliceStable(backlog, func(i, j int) bool {
		return backlog[i].QueuedAt < backlog[j].QueuedAt
	})

	return &Simulator{
		backlog: backlog,
		ready:   redblacktree.NewWith(cmp),
		order:   make([]TaskID, 0, len(tasks)),
	}
}

// Observe registers fn to receive every event of the run, in emission order.
// Must be called before Run().
func (s *Simulator) Observe(fn func(Event)) { s.observer = fn }

// EnableCSVTrace opens the given file path for CSV logging of events.
// Must be called before Run().
func (s *Simulator) EnableCSVTrace(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)

	// write header
	w.Write([]string{"clock", "event", "task_id", "execution_duration"})
	w.Flush()
	s.csvFile = f
	s.csvWriter = w
	return nil
}

// Run executes the simulation to completion and returns the task IDs in
// completion order. Call it at most once per Simulator.
func (s *Simulator) Run() []TaskID {
	for len(s.backlog) > 0 || !s.ready.Empty() {
		// 1) absorb everything that arrived during the interval just elapsed
		s.admitArrived()

		// 2) idle case: nothing has arrived yet, jump to the next arrival
		node := s.ready.Left()
		if node == nil {
			s.emit(Event{Clock: s.clock.Now(), Kind: EventIdle})
			s.clock.JumpTo(s.backlog[0].QueuedAt)
			continue
		}

		// 3) dispatch the shortest ready task
		key := node.Key.(readyKey)
		t := node.Value.(Task)
		s.ready.Remove(key)
		s.emit(Event{
			Clock:    s.clock.Now(),
			Kind:     EventDispatch,
			TaskID:   t.ID,
			Duration: t.ExecutionDuration,
		})

		// 4) run to completion, no preemption
		s.clock.Advance(t.ExecutionDuration)
		s.order = append(s.order, t.ID)
		s.emit(Event{
			Clock:    s.clock.Now(),
			Kind:     EventFinish,
			TaskID:   t.ID,
			Duration: t.ExecutionDuration,
		})
	}

	if s.csvFile != nil {
		s.csvWriter.Flush()
		s.csvFile.Close()
	}
	return s.order
}

// admitArrived moves every backlog task whose arrival is due into the ready
// set. Arrivals landing exactly on the current clock count as due, so a task
// queued at the instant a run finishes competes in the same selection round.
func (s *Simulator) admitArrived() {
	for len(s.backlog) > 0 && s.backlog[0].QueuedAt <= s.clock.Now() {
		t := s.backlog[0]
		s.backlog = s.backlog[1:]
		s.ready.Put(readyKey{t.ExecutionDuration, t.ID}, t)
		s.emit(Event{
			Clock:    s.clock.Now(),
			Kind:     EventEnqueue,
			TaskID:   t.ID,
			Duration: t.ExecutionDuration,
		})
	}
}

func (s *Simulator) emit(ev Event) {
	if s.observer != nil {
		s.observer(ev)
	}
	if s.csvWriter != nil {
		s.csvWriter.Write([]string{
			strconv.FormatInt(ev.Clock, 10),
			ev.Kind.String(),
			strconv.FormatUint(uint64(ev.TaskID), 10),
			strconv.FormatInt(ev.Duration, 10),
		})
		s.csvWriter.Flush()
	}
}

// ExecutionOrder returns the completion order of the given tasks. It is pure
// given a valid input: no trace, no observer, no shared state.
func ExecutionOrder(tasks []Task) []TaskID {
	return New(tasks).Run()
}

// readyKey orders the ready set: shortest duration first, ties broken by
// ascending ID. Keying on duration alone would conflate two ready tasks
// sharing a duration.
type readyKey struct {
	duration int64
	id       TaskID
}

// cmp implements the comparator for red-black tree ordering.
func cmp(a, b any) int {
	ka, kb := a.(readyKey), b.(readyKey)
	switch {
	case ka.duration < kb.duration:
		return -1
	case ka.duration > kb.duration:
		return 1
	case ka.id < kb.id:
		return -1
	case ka.id > kb.id:
		return 1
	default:
		return 0
	}
}
