package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "factbench",
		Short: "Factual-QA benchmark scorer and run registry",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "factbench.yaml", "config file path")
	root.AddCommand(newRunCmd())
	root.AddCommand(newRescoreCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newValidateCmd())
	return root
}
