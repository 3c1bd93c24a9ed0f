// Command simulate is a one-shot CLI runner: load the baseline, run a
// scenario with the given instrument overrides, print the result as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mdruszcz/econ/internal/config"
	"github.com/mdruszcz/econ/internal/engine"
	"github.com/mdruszcz/econ/internal/instruments"
)

type command struct {
	usage       string
	description string
	execute     func(args []string)
}

func printUsage(commands map[string]command) {
	fmt.Println("Usage: simulate <command> [args]")
	fmt.Println()
	for _, cmd := range commands {
		fmt.Printf("  %-30s %s\n", cmd.usage, cmd.description)
	}
}

func runScenario(args []string) {
	cfg := config.Load()
	eng := engine.New(cfg.DataDir, nil)

	name := "Scenario"
	overrides := map[string]float64{}
	for _, arg := range args {
		if strings.HasPrefix(arg, "--name=") {
			name = strings.TrimPrefix(arg, "--name=")
			continue
		}
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			fmt.Fprintf(os.Stderr, "skipping malformed instrument override %q (want KEY=VALUE)\n", arg)
			continue
		}
		val, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", arg, err)
			continue
		}
		overrides[parts[0]] = val
	}

	out, err := eng.Simulate(context.Background(), overrides, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}

func listInstruments(args []string) {
	for _, spec := range instruments.Catalogue {
		fmt.Printf("%-10s %-30s default=%-8g range=[%g, %g]\n", spec.Key, spec.Label, spec.Default, spec.Min, spec.Max)
	}
}

func baselineIndicators(args []string) {
	cfg := config.Load()
	eng := engine.New(cfg.DataDir, nil)
	ind, err := eng.GetBaselineIndicators()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load baseline: %v\n", err)
		os.Exit(1)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(ind)
}

func main() {
	commands := map[string]command{
		"run": {
			usage:       "run [--name=Scenario] KEY=VALUE ...",
			description: "Run a scenario with the given instrument overrides",
			execute:     runScenario,
		},
		"instruments": {
			usage:       "instruments",
			description: "List the instrument catalogue",
			execute:     listInstruments,
		},
		"baseline": {
			usage:       "baseline",
			description: "Print baseline key indicators",
			execute:     baselineIndicators,
		},
	}

	if len(os.Args) < 2 {
		printUsage(commands)
		return
	}

	cmd, args := os.Args[1], os.Args[2:]
	if c, ok := commands[cmd]; ok {
		c.execute(args)
		return
	}
	fmt.Printf("Unknown command: %s\n", cmd)
	printUsage(commands)
}
