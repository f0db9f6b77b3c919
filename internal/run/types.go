package run

import (
	"time"

	"github.com/openfactual/factbench/internal/config"
	"github.com/openfactual/factbench/internal/score"
	"github.com/openfactual/factbench/internal/task"
)

// Score is the tri-state outcome of grading one task. Skipped is reserved
// for tasks the gradability gate rejected; it is distinct from Incorrect.
type Score string

const (
	ScoreCorrect   Score = "correct"
	ScoreIncorrect Score = "incorrect"
	ScoreSkipped   Score = "skipped"
)

// TaskResult records the graded outcome for one task. HallucinationLabel is
// set only on stress-test tasks.
type TaskResult struct {
	TaskID             string      `json:"task_id"`
	Domain             task.Domain `json:"domain"`
	Prediction         string      `json:"prediction"`
	Score              Score       `json:"score"`
	HallucinationLabel score.Label `json:"hallucination_label,omitempty"`
	LatencyMS          int64       `json:"latency_ms"`
}

// Aggregates are the computed summary fields of a BenchmarkRun. Accuracy is
// nil, not zero, when no task was gradable.
type Aggregates struct {
	TotalTasks        int                     `json:"total_tasks"`
	GradedCount       int                     `json:"graded_count"`
	CorrectCount      int                     `json:"correct_count"`
	SkippedCount      int                     `json:"skipped_count"`
	Accuracy          *float64                `json:"accuracy"`
	PerDomainAccuracy map[task.Domain]float64 `json:"per_domain_accuracy,omitempty"`
	HallucinatedCount int                     `json:"hallucinated_count"`
	RefusedCount      int                     `json:"refused_count"`
	UnclearCount      int                     `json:"unclear_count"`
}

// BenchmarkRun is the immutable record of one evaluation: config snapshot,
// ordered per-task results, and the aggregates computed from them.
type BenchmarkRun struct {
	RunID     string           `json:"run_id"`
	ModelID   string           `json:"model_id"`
	Hardware  string           `json:"hardware"`
	Config    config.Benchmark `json:"config"`
	StartedAt time.Time        `json:"started_at"`
	DurationS float64          `json:"duration_s"`
	Summary   Aggregates       `json:"summary"`
	Results   []TaskResult     `json:"results"`
}
