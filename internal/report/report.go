package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/openfactual/factbench/internal/registry"
	"github.com/openfactual/factbench/internal/run"
	"github.com/openfactual/factbench/internal/task"
)

// Leaderboard renders registry entries ranked by accuracy descending, runs
// without an accuracy last. The registry hands entries over in date order;
// ranking here keeps the stored index reproducible.
func Leaderboard(entries []registry.Entry, format string, w io.Writer) error {
	ranked := make([]registry.Entry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		ai, aj := ranked[i].Accuracy, ranked[j].Accuracy
		switch {
		case ai == nil:
			return false
		case aj == nil:
			return true
		default:
			return *ai > *aj
		}
	})

	switch format {
	case "markdown":
		return writeMarkdown(ranked, w)
	case "json":
		return writeJSON(ranked, w)
	case "html":
		return writeHTML(ranked, w)
	default:
		return writeTable(ranked, w)
	}
}

func accuracyCell(a *float64) string {
	if a == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", *a*100)
}

func writeTable(entries []registry.Entry, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODEL\tHARDWARE\tACCURACY\tHALLUC.\tREFUSED\tDATE\tRUN")
	fmt.Fprintln(tw, strings.Repeat("-", 80))
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			e.ModelID, e.Hardware, accuracyCell(e.Accuracy),
			e.HallucinatedCount, e.RefusedCount,
			e.Date.Format("2006-01-02"), e.RunID)
	}
	return tw.Flush()
}

func writeMarkdown(entries []registry.Entry, w io.Writer) error {
	fmt.Fprintln(w, "| Model | Hardware | Accuracy | Halluc. | Refused | Date | Run |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|---|")
	for _, e := range entries {
		fmt.Fprintf(w, "| %s | %s | %s | %d | %d | %s | %s |\n",
			e.ModelID, e.Hardware, accuracyCell(e.Accuracy),
			e.HallucinatedCount, e.RefusedCount,
			e.Date.Format("2006-01-02"), e.RunID)
	}
	return nil
}

func writeJSON(entries []registry.Entry, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// RunDetail prints the single-run breakdown: overall accuracy, per-domain
// accuracy, and hallucination stress-test stats.
func RunDetail(r *run.BenchmarkRun, w io.Writer) error {
	fmt.Fprintf(w, "Model:    %s\n", r.ModelID)
	fmt.Fprintf(w, "Hardware: %s\n", r.Hardware)
	fmt.Fprintf(w, "Run:      %s (%s)\n\n", r.RunID, r.StartedAt.Format("2006-01-02 15:04"))

	s := r.Summary
	if s.Accuracy != nil {
		fmt.Fprintf(w, "Overall: %.1f%%  (%d/%d auto-graded, %d skipped)\n",
			*s.Accuracy*100, s.CorrectCount, s.GradedCount, s.SkippedCount)
	} else {
		fmt.Fprintf(w, "Overall: n/a  (no gradable tasks, %d skipped)\n", s.SkippedCount)
	}

	if len(s.PerDomainAccuracy) > 0 {
		domains := make([]task.Domain, 0, len(s.PerDomainAccuracy))
		for d := range s.PerDomainAccuracy {
			domains = append(domains, d)
		}
		sort.Slice(domains, func(i, j int) bool { return domains[i] < domains[j] })

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "\nDOMAIN\tACCURACY")
		for _, d := range domains {
			fmt.Fprintf(tw, "%s\t%.1f%%\n", d, s.PerDomainAccuracy[d]*100)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	stress := s.HallucinatedCount + s.RefusedCount + s.UnclearCount
	if stress > 0 {
		fmt.Fprintf(w, "\nHallucination stress-tests (%d tasks):\n", stress)
		fmt.Fprintf(w, "  Hallucinated:       %d\n", s.HallucinatedCount)
		fmt.Fprintf(w, "  Refused/Corrected:  %d\n", s.RefusedCount)
		fmt.Fprintf(w, "  Unclear:            %d\n", s.UnclearCount)
	}
	return nil
}
