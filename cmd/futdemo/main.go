// Command futdemo runs the demonstration scenarios for the scheduling core.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwarq/go-poll-runner/core"
	"github.com/mwarq/go-poll-runner/internal/demo"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var quiet bool

	root := &cobra.Command{
		Use:   "futdemo",
		Short: "Demonstrations of the poll-based cooperative scheduling core",
		Long: `futdemo drives the scheduling core through its demonstration scenarios:
immediate tasks, chained tasks, and both scheduler variants.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress scheduler diagnostics")

	logger := func() core.Logger {
		if quiet {
			return core.NewNoOpLogger()
		}
		return core.NewDefaultLogger()
	}

	scenarios := []struct {
		use   string
		short string
		run   func(core.Logger) error
	}{
		{"simple", "Run immediate and chained tasks on the SimpleRunner", demo.RunSimple},
		{"poll", "Run immediate and nested chained tasks on the PollRunner", demo.RunPoll},
		{"sequential", "Run traced tasks and verify execution order", demo.RunSequential},
		{"chained", "Run a traced two-stage chain and verify the final result", demo.RunChained},
	}

	for _, s := range scenarios {
		run := s.run
		root.AddCommand(&cobra.Command{
			Use:   s.use,
			Short: s.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(logger())
			},
		})
	}

	root.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run every demonstration scenario in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range scenarios {
				cmd.Printf("=== %s ===\n", s.use)
				if err := s.run(logger()); err != nil {
					return fmt.Errorf("%s: %w", s.use, err)
				}
			}
			return nil
		},
	})

	return root
}
