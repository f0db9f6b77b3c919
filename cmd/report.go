package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openfactual/factbench/internal/config"
	"github.com/openfactual/factbench/internal/registry"
	"github.com/openfactual/factbench/internal/report"
	"github.com/openfactual/factbench/internal/run"
)

var (
	flagFormat string
	flagRun    string
	flagOutput string
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the leaderboard from registered runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagRun != "" {
				benchRun, err := run.ReadRun(flagRun)
				if err != nil {
					return err
				}
				return report.RunDetail(benchRun, os.Stdout)
			}

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			reg, err := registry.Open(cfg.Results.Dir)
			if err != nil {
				return err
			}
			entries, err := reg.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return fmt.Errorf("no runs registered in %s", cfg.Results.Dir)
			}

			w := os.Stdout
			if flagOutput != "" {
				f, err := os.Create(flagOutput)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				w = f
			}
			return report.Leaderboard(entries, flagFormat, w)
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json, html)")
	cmd.Flags().StringVar(&flagRun, "run", "", "show the detail view for a single run file instead")
	cmd.Flags().StringVar(&flagOutput, "output", "", "write to a file instead of stdout")
	return cmd
}
