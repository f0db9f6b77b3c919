package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/openfactual/factbench/internal/config"
	"github.com/openfactual/factbench/internal/task"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks in the configured task set",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			tasks, err := task.Load(cfg.Tasks)
			if err != nil {
				return err
			}

			byDomain := map[task.Domain]int{}
			fmt.Println("Tasks:")
			for _, t := range tasks {
				fmt.Printf("  - %s [%s] %s\n", t.ID, t.Domain, truncateQuestion(t.Question))
				byDomain[t.Domain]++
			}

			domains := make([]string, 0, len(byDomain))
			for d := range byDomain {
				domains = append(domains, string(d))
			}
			sort.Strings(domains)
			fmt.Printf("\n%d tasks:", len(tasks))
			for _, d := range domains {
				fmt.Printf(" %s=%d", d, byDomain[task.Domain(d)])
			}
			fmt.Println()
			return nil
		},
	}
}

func truncateQuestion(q string) string {
	runes := []rune(q)
	if len(runes) <= 60 {
		return q
	}
	return string(runes[:57]) + "..."
}
