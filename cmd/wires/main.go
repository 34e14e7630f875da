package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"nickandperla.net/advent"
	"nickandperla.net/advent/internal/tool"
)

func main() {
	toolConfig, persist, inputPath, cleanup := tool.Setup("wires")
	err := run(toolConfig, persist, inputPath)
	cleanup()
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func run(toolConfig *advent.ToolConfig, persist *advent.Persistence, inputPath string) error {
	puzzle, err := advent.Lookup(advent.WIRES_PUZZLE)
	if err != nil {
		return err
	}

	answers, err := advent.SolveFile(context.Background(), toolConfig, puzzle, inputPath, persist)
	if err != nil {
		return err
	}

	tool.PrintAnswers(answers)
	return nil
}
