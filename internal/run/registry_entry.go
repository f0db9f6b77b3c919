package run

import "github.com/openfactual/factbench/internal/registry"

// RegistryEntry projects a completed run onto its leaderboard row.
func RegistryEntry(r *BenchmarkRun, resultPath string) registry.Entry {
	return registry.Entry{
		RunID:             r.RunID,
		ModelID:           r.ModelID,
		Hardware:          r.Hardware,
		Accuracy:          r.Summary.Accuracy,
		HallucinatedCount: r.Summary.HallucinatedCount,
		RefusedCount:      r.Summary.RefusedCount,
		Date:              r.StartedAt,
		ResultPath:        resultPath,
	}
}
