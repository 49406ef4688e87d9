package sim

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml for the sptsim CLI.
type Config struct {
	Workload string `yaml:"workload"`  // workload YAML path ("workload.yml" by default)
	TraceCSV string `yaml:"trace_csv"` // empty = no CSV trace
	Quiet    bool   `yaml:"quiet"`     // suppress the per-event console log
}

// If the config file is not found, we use default values
func defaultConfig() Config {
	return Config{
		Workload: "workload.yml",
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.Workload == "" {
		cfg.Workload = "workload.yml"
	}

	return cfg
}
