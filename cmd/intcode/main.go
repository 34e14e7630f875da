package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"nickandperla.net/advent"
	"nickandperla.net/advent/internal/tool"
)

var (
	noun       = flag.Int("noun", 0, "Noun for part one (overrides [intcode] noun)")
	verb       = flag.Int("verb", 0, "Verb for part one (overrides [intcode] verb)")
	target     = flag.Int("target", 0, "Output the search looks for (overrides [search] target)")
	workers    = flag.Uint("workers", 0, "Search processors (overrides [search] workers)")
	cpuprofile = flag.String("cpuprofile", "", "Write a CPU profile of the run into this directory")
)

func main() {
	toolConfig, persist, inputPath, cleanup := tool.Setup("intcode")
	err := run(toolConfig, persist, inputPath)
	cleanup()
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func run(toolConfig *advent.ToolConfig, persist *advent.Persistence, inputPath string) error {
	if flag.CommandLine.Changed("noun") {
		toolConfig.Intcode.Noun = *noun
	}
	if flag.CommandLine.Changed("verb") {
		toolConfig.Intcode.Verb = *verb
	}
	if flag.CommandLine.Changed("target") {
		toolConfig.Search.Target = *target
	}
	if flag.CommandLine.Changed("workers") && *workers > 0 {
		toolConfig.Search.Workers = *workers
	}
	if err := toolConfig.Validate(); err != nil {
		return err
	}

	if *cpuprofile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuprofile), profile.NoShutdownHook).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	puzzle, err := advent.Lookup(advent.INTCODE_PUZZLE)
	if err != nil {
		return err
	}

	answers, err := advent.SolveFile(ctx, toolConfig, puzzle, inputPath, persist)
	if err != nil {
		return err
	}

	tool.PrintAnswers(answers)
	return nil
}
