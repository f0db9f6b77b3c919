package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openfactual/factbench/internal/config"
	"github.com/openfactual/factbench/internal/task"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the config and task set without running anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			tasks, err := task.Load(cfg.Tasks)
			if err != nil {
				return err
			}
			fmt.Printf("Config OK: model=%s eval_mode=%s backend=%s\n",
				cfg.Benchmark.ModelID, cfg.Benchmark.EvalMode, cfg.Backend.Kind)
			fmt.Printf("Task set OK: %d tasks (%s)\n", len(tasks), cfg.Tasks)
			return nil
		},
	}
}
