// Package tool holds the setup shared by the single-puzzle commands.
package tool

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"nickandperla.net/advent"
)

var (
	ToolConfigPath = flag.StringP("config", "c", "./config.toml", "The config file for advent tools to use")
	Verbose        = flag.BoolP("verbose", "v", false, "Log debug output")
)

// Setup parses flags, loads the tool config and opens persistence if it is
// configured. It exits on any failure. The returned cleanup closes the
// database.
func Setup(name string) (*advent.ToolConfig, *advent.Persistence, string, func()) {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input file>\n", name)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		log.Fatalf("Expected exactly one input file, got [%d] arguments", flag.NArg())
	}

	toolConfig, err := advent.LoadToolConfig(*ToolConfigPath)
	if err != nil {
		log.Fatalf("Unable to load advent config: %v", err)
	}
	toolConfig.ConfigureLogging(*Verbose)

	persist, err := advent.OpenPersistence(toolConfig)
	if err != nil {
		log.Fatalf("Failed to create or initialize Persistence: %v", err)
	}

	cleanup := func() {
		if persist != nil {
			persist.Shutdown()
		}
	}
	return toolConfig, persist, flag.Arg(0), cleanup
}

func PrintAnswers(answers []*advent.Answer) {
	for _, a := range answers {
		fmt.Println(a.Value)
	}
}
