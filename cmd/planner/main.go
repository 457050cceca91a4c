package main

import (
	"fmt"
	"os"

	"day-planner/internal/cli"
	"day-planner/internal/config"
)

func main() {
	// Load configuration: defaults, then config file, then environment.
	// Flag overrides are applied by the root command before any work runs.
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(cfg)
	defer root.Close()

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
