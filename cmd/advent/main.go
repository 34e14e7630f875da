package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nickandperla.net/advent"
)

var (
	toolConfigPath string
	verbose        bool
	historyLimit   int
)

func main() {
	root := &cobra.Command{
		Use:           "advent",
		Short:         "Run the Advent of Code 2019 puzzle solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&toolConfigPath, "config", "c", "./config.toml", "The config file for advent tools to use")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")

	history := &cobra.Command{
		Use:   "history [puzzle]",
		Short: "Show recorded answers, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHistory,
	}
	history.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum answers to show (0 for all)")

	root.AddCommand(
		&cobra.Command{
			Use:   "run <puzzle> <input file>",
			Short: "Solve a puzzle by name or day number",
			Args:  cobra.ExactArgs(2),
			RunE:  runPuzzle,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List the registered puzzles",
			Args:  cobra.NoArgs,
			Run:   listPuzzles,
		},
		history,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

func loadConfig() (*advent.ToolConfig, error) {
	toolConfig, err := advent.LoadToolConfig(toolConfigPath)
	if err != nil {
		return nil, err
	}
	toolConfig.ConfigureLogging(verbose)
	return toolConfig, nil
}

func runPuzzle(cmd *cobra.Command, args []string) error {
	puzzle, err := advent.Lookup(args[0])
	if err != nil {
		return err
	}

	toolConfig, err := loadConfig()
	if err != nil {
		return err
	}

	persist, err := advent.OpenPersistence(toolConfig)
	if err != nil {
		return fmt.Errorf("Failed to create or initialize Persistence: %w", err)
	}
	if persist != nil {
		defer persist.Shutdown()
	}

	answers, err := advent.SolveFile(cmd.Context(), toolConfig, puzzle, args[1], persist)
	if err != nil {
		return err
	}

	for _, a := range answers {
		fmt.Fprintf(cmd.OutOrStdout(), "Day %d part %d: %d\n", a.Day, a.Part, a.Value)
	}
	return nil
}

func listPuzzles(cmd *cobra.Command, _ []string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tNAME\tTITLE")
	for _, p := range advent.Puzzles() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", p.Day, p.Name, p.Title)
	}
	w.Flush()
}

func runHistory(cmd *cobra.Command, args []string) error {
	toolConfig, err := loadConfig()
	if err != nil {
		return err
	}
	if toolConfig.Persistence == nil {
		return fmt.Errorf("No [persistence] section in %s, nothing has been recorded", toolConfigPath)
	}

	var name string
	if len(args) == 1 {
		puzzle, err := advent.Lookup(args[0])
		if err != nil {
			return err
		}
		name = puzzle.Name
	}

	persist, err := advent.NewPersistence(toolConfig.Persistence)
	if err != nil {
		return fmt.Errorf("Failed to create or initialize Persistence: %w", err)
	}
	defer persist.Shutdown()

	answers, err := persist.History(name, historyLimit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tPUZZLE\tPART\tANSWER\tELAPSED\tINPUT")
	for _, a := range answers {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%v\t%.12s\n", a.CreatedAt.Format("2006-01-02 15:04:05"), a.Puzzle, a.Part, a.Value, a.Duration, a.InputDigest)
	}
	return w.Flush()
}
