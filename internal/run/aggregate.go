package run

import (
	"github.com/openfactual/factbench/internal/score"
	"github.com/openfactual/factbench/internal/task"
)

// Aggregate folds a run's ordered results into summary statistics. It is a
// pure function: skipped tasks never enter an accuracy denominator, and
// per-domain entries exist only for domains with at least one graded task.
func Aggregate(results []TaskResult) Aggregates {
	agg := Aggregates{TotalTasks: len(results)}

	type domainAcc struct{ correct, graded int }
	byDomain := make(map[task.Domain]*domainAcc)

	for _, r := range results {
		switch r.Score {
		case ScoreSkipped:
			agg.SkippedCount++
		default:
			agg.GradedCount++
			d, ok := byDomain[r.Domain]
			if !ok {
				d = &domainAcc{}
				byDomain[r.Domain] = d
			}
			d.graded++
			if r.Score == ScoreCorrect {
				agg.CorrectCount++
				d.correct++
			}
		}

		switch r.HallucinationLabel {
		case score.LabelHallucination:
			agg.HallucinatedCount++
		case score.LabelRefusal:
			agg.RefusedCount++
		case score.LabelUnclear:
			agg.UnclearCount++
		}
	}

	if agg.GradedCount > 0 {
		acc := float64(agg.CorrectCount) / float64(agg.GradedCount)
		agg.Accuracy = &acc
	}
	if len(byDomain) > 0 {
		agg.PerDomainAccuracy = make(map[task.Domain]float64, len(byDomain))
		for domain, d := range byDomain {
			agg.PerDomainAccuracy[domain] = float64(d.correct) / float64(d.graded)
		}
	}
	return agg
}
