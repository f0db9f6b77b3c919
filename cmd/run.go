package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openfactual/factbench/internal/backend"
	"github.com/openfactual/factbench/internal/config"
	"github.com/openfactual/factbench/internal/registry"
	"github.com/openfactual/factbench/internal/report"
	"github.com/openfactual/factbench/internal/run"
	"github.com/openfactual/factbench/internal/task"
)

var (
	flagDomain   string
	flagTask     string
	flagParallel int
	flagOffline  bool
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate the configured model on the task set",
		RunE:  runBenchmark,
	}
	cmd.Flags().StringVar(&flagDomain, "domain", "", "filter tasks by domain")
	cmd.Flags().StringVar(&flagTask, "task", "", "filter to a single task id")
	cmd.Flags().IntVar(&flagParallel, "parallel", 1, "max concurrent predictions")
	cmd.Flags().BoolVar(&flagOffline, "offline", false, "dry run: use reference answers as predictions")
	return cmd
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	tasks, err := task.Load(cfg.Tasks)
	if err != nil {
		return err
	}
	tasks = filterTasks(tasks, flagTask, flagDomain)
	if len(tasks) == 0 {
		return fmt.Errorf("no tasks match the given filters")
	}

	var gen backend.Generator
	if flagOffline {
		gen = backend.Offline{}
		cfg.Benchmark.ModelID = "offline-sim"
	} else {
		gen, err = backend.FromConfig(cfg)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Evaluating %d tasks ...\n\n", len(tasks))
	fmt.Printf("%-20s %-15s %-3s %s\n", "ID", "DOMAIN", "", "PREDICTION")
	fmt.Println("--------------------------------------------------------------------------------")

	benchRun, err := run.Evaluate(context.Background(), run.EvalOpts{
		Tasks:    tasks,
		Backend:  gen,
		Config:   cfg.Benchmark,
		Pipeline: run.PipelineFromConfig(cfg.Scoring),
		Parallel: flagParallel,
		Progress: os.Stdout,
	})
	if err != nil {
		return err
	}

	runPath := run.RunPath(cfg.Results.Dir, benchRun)
	if err := run.WriteRun(runPath, benchRun); err != nil {
		return err
	}

	reg, err := registry.Open(cfg.Results.Dir)
	if err != nil {
		return err
	}
	if err := reg.Register(run.RegistryEntry(benchRun, runPath)); err != nil {
		return fmt.Errorf("registering run: %w", err)
	}

	fmt.Println()
	if err := report.RunDetail(benchRun, os.Stdout); err != nil {
		return err
	}
	fmt.Printf("\nResults saved to %s\n", runPath)
	return nil
}

func filterTasks(tasks []task.Task, id, domain string) []task.Task {
	if id == "" && domain == "" {
		return tasks
	}
	var filtered []task.Task
	for _, t := range tasks {
		if id != "" && t.ID != id {
			continue
		}
		if domain != "" && string(t.Domain) != domain {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}
