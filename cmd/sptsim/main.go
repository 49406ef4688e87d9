package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"sptsim/internal/sim"
	"sptsim/internal/workload"
)

func main() {
	cfgPath := flag.String("config", "config.yml", "path to the config YAML")
	flag.Parse()

	// Read the configuration; a workload argument overrides the config.
	cfg := sim.Load(*cfgPath)
	if flag.NArg() > 0 {
		cfg.Workload = flag.Arg(0)
	}

	tasks, err := workload.Load(cfg.Workload)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s := sim.New(tasks)
	if !cfg.Quiet {
		s.Observe(printEvent)
	}
	if cfg.TraceCSV != "" {
		if err := s.EnableCSVTrace(cfg.TraceCSV); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	order := s.Run()

	fmt.Print("completion order:")
	for _, id := range order {
		fmt.Printf(" %d", id)
	}
	fmt.Println()
}

// printEvent mirrors one simulator event to the console.
func printEvent(ev sim.Event) {
	if ev.Kind == sim.EventIdle {
		fmt.Printf("t=%04d [%s]\n", ev.Clock, center(ev.Kind.String(), 10))
		return
	}
	fmt.Printf("t=%04d [%s] => Task: %04d, duration: %d\n",
		ev.Clock,
		center(ev.Kind.String(), 10),
		ev.TaskID,
		ev.Duration,
	)
}

// center pads str to width with the text centered.
func center(str string, width int) string {
	if len(str) >= width {
		return str
	}
	spaces := (width - len(str)) / 2
	return strings.Repeat(" ", spaces) + str + strings.Repeat(" ", width-(spaces+len(str)))
}
