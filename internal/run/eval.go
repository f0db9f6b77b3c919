package run

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openfactual/factbench/internal/backend"
	"github.com/openfactual/factbench/internal/config"
	"github.com/openfactual/factbench/internal/score"
	"github.com/openfactual/factbench/internal/task"
)

// Pipeline bundles the scoring stages applied to every (task, prediction)
// pair: gate, then normalize+match, plus labeling for stress-tests.
type Pipeline struct {
	Gate    score.GateOptions
	Match   score.MatchOptions
	Labeler score.LabelerOptions
}

// PipelineFromConfig lifts the configured thresholds into scoring options.
func PipelineFromConfig(s config.Scoring) Pipeline {
	return Pipeline{
		Gate:    score.GateOptions{MaxReferenceLen: s.MaxReferenceLen},
		Match:   score.MatchOptions{ShortTokenLen: s.ShortTokenLen},
		Labeler: score.LabelerOptions{MinClaimLen: s.MinClaimLen},
	}
}

// ScoreTask grades one prediction. It never fails: the scoring stages are
// total over arbitrary text.
func (p Pipeline) ScoreTask(t *task.Task, prediction string) TaskResult {
	r := TaskResult{
		TaskID:     t.ID,
		Domain:     t.Domain,
		Prediction: prediction,
	}

	switch {
	case !score.Gradable(t.ReferenceAnswer, p.Gate):
		r.Score = ScoreSkipped
	case score.Match(prediction, t.ReferenceAnswer, p.Match):
		r.Score = ScoreCorrect
	default:
		r.Score = ScoreIncorrect
	}

	if t.StressTest() {
		r.HallucinationLabel = score.Classify(prediction, p.Labeler)
	}
	return r
}

// EvalOpts configures one evaluation run.
type EvalOpts struct {
	Tasks    []task.Task
	Backend  backend.Generator
	Config   config.Benchmark
	Pipeline Pipeline
	Parallel int
	Progress io.Writer // per-task progress lines; nil for silent
}

// NewRunID mints a registry key: timestamp for human ordering plus a short
// random suffix so two runs started in the same second stay distinct.
func NewRunID(now time.Time) string {
	return fmt.Sprintf("run_%s_%s", now.UTC().Format("20060102_150405"), uuid.NewString()[:8])
}

// Evaluate obtains a prediction for every task, scores it, and folds the
// ordered results into a BenchmarkRun. A backend failure on one task records
// an empty prediction (scored Incorrect or labeled unclear) rather than
// aborting the run.
func Evaluate(ctx context.Context, opts EvalOpts) (*BenchmarkRun, error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("no prediction backend")
	}
	if err := task.Validate(opts.Tasks); err != nil {
		return nil, err
	}

	started := time.Now()
	results := make([]TaskResult, len(opts.Tasks))

	errs := forEach(opts.Parallel, len(opts.Tasks), func(i int) error {
		t := &opts.Tasks[i]
		t0 := time.Now()
		pred, err := opts.Backend.Generate(ctx, t)
		if err != nil {
			slog.Warn("prediction failed, scoring empty response",
				"task", t.ID, "error", err)
			pred = ""
		}
		results[i] = opts.Pipeline.ScoreTask(t, pred)
		results[i].LatencyMS = time.Since(t0).Milliseconds()
		if opts.Progress != nil {
			fmt.Fprintf(opts.Progress, "%-20s %-15s %-3s %s\n",
				t.ID, t.Domain, marker(results[i].Score), truncate(pred, 60))
		}
		return err
	})
	if len(errs) > 0 {
		slog.Warn("some predictions failed and were scored as empty", "count", len(errs))
	}

	benchRun := &BenchmarkRun{
		RunID:     NewRunID(started),
		ModelID:   opts.Config.ModelID,
		Hardware:  opts.Config.Hardware,
		Config:    opts.Config,
		StartedAt: started.UTC(),
		DurationS: time.Since(started).Seconds(),
		Results:   results,
	}
	benchRun.Summary = Aggregate(results)
	return benchRun, nil
}

// Rescore re-runs the scoring pipeline over the stored raw predictions of an
// existing run, producing a new run record under the same run_id. Tasks no
// longer present in the set keep their previous result.
func Rescore(old *BenchmarkRun, tasks map[string]*task.Task, p Pipeline) *BenchmarkRun {
	results := make([]TaskResult, len(old.Results))
	for i, r := range old.Results {
		t, ok := tasks[r.TaskID]
		if !ok {
			slog.Warn("task missing from set, keeping previous result", "task", r.TaskID)
			results[i] = r
			continue
		}
		results[i] = p.ScoreTask(t, r.Prediction)
		results[i].LatencyMS = r.LatencyMS
	}

	rescored := &BenchmarkRun{
		RunID:     old.RunID,
		ModelID:   old.ModelID,
		Hardware:  old.Hardware,
		Config:    old.Config,
		StartedAt: old.StartedAt,
		DurationS: old.DurationS,
		Results:   results,
	}
	rescored.Summary = Aggregate(results)
	return rescored
}

func marker(s Score) string {
	switch s {
	case ScoreCorrect:
		return "Y"
	case ScoreIncorrect:
		return "N"
	default:
		return "-"
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
