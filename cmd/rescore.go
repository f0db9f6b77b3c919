package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openfactual/factbench/internal/config"
	"github.com/openfactual/factbench/internal/registry"
	"github.com/openfactual/factbench/internal/report"
	"github.com/openfactual/factbench/internal/run"
	"github.com/openfactual/factbench/internal/task"
)

func newRescoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rescore <run-file>...",
		Short: "Re-score stored runs with the current scorer",
		Long: "Re-run the scoring pipeline over the raw predictions stored in existing " +
			"run files, then update each file and its registry entry in place. " +
			"Supports scorer upgrades without re-querying any model.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			tasks, err := task.Load(cfg.Tasks)
			if err != nil {
				return err
			}
			byID := task.ByID(tasks)
			pipeline := run.PipelineFromConfig(cfg.Scoring)

			reg, err := registry.Open(cfg.Results.Dir)
			if err != nil {
				return err
			}

			for _, path := range args {
				old, err := run.ReadRun(path)
				if err != nil {
					return err
				}
				rescored := run.Rescore(old, byID, pipeline)
				if err := run.WriteRun(path, rescored); err != nil {
					return err
				}
				if err := reg.Register(run.RegistryEntry(rescored, path)); err != nil {
					return fmt.Errorf("re-registering %s: %w", rescored.RunID, err)
				}

				fmt.Printf("Re-scored %s (%s)\n", rescored.RunID, rescored.ModelID)
				printAccuracyDelta(old, rescored)
				if err := report.RunDetail(rescored, os.Stdout); err != nil {
					return err
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func printAccuracyDelta(old, rescored *run.BenchmarkRun) {
	before, after := old.Summary.Accuracy, rescored.Summary.Accuracy
	if before == nil || after == nil || *before == *after {
		return
	}
	fmt.Printf("Accuracy: %.1f%% -> %.1f%%\n", *before*100, *after*100)
}
