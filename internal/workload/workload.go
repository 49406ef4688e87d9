// Package workload loads task sets for the simulator from YAML files.
package workload

import (
	"fmt"
	"os"

	yaml "github.com/goccy/go-yaml"

	"sptsim/internal/sim"
)

// file mirrors a workload YAML document.
type file struct {
	Tasks []record `yaml:"tasks"`
}

type record struct {
	ID                uint64 `yaml:"id"`
	QueuedAt          int64  `yaml:"queued_at"`
	ExecutionDuration int64  `yaml:"execution_duration"`
}

// Load parses and validates the workload at path.
func Load(path string) ([]sim.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload: %w", err)
	}
	return Parse(data)
}

// Parse decodes a workload document and validates it before it reaches the
// simulator. Duplicate IDs and negative times are rejected here; the core
// assumes they never occur.
func Parse(data []byte) ([]sim.Task, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse workload: %w", err)
	}

	tasks := make([]sim.Task, 0, len(f.Tasks))
	for _, r := range f.Tasks {
		tasks = append(tasks, sim.Task{
			ID:                sim.TaskID(r.ID),
			QueuedAt:          r.QueuedAt,
			ExecutionDuration: r.ExecutionDuration,
		})
	}

	if err := sim.Validate(tasks); err != nil {
		return nil, fmt.Errorf("invalid workload: %w", err)
	}
	return tasks, nil
}
