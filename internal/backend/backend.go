// Package backend supplies predictions to the evaluation loop. The scoring
// core only ever sees the returned string; model invocation details, retry,
// and timeouts stay behind the Generator interface.
package backend

import (
	"context"
	"fmt"

	"github.com/openfactual/factbench/internal/config"
	"github.com/openfactual/factbench/internal/task"
)

// Generator produces a raw prediction for one task.
type Generator interface {
	Generate(ctx context.Context, t *task.Task) (string, error)
}

// Offline echoes the reference answer back as the prediction. It exists for
// dry runs: every gradable task scores Correct, exercising the full pipeline
// without a model.
type Offline struct{}

func (Offline) Generate(_ context.Context, t *task.Task) (string, error) {
	return t.ReferenceAnswer, nil
}

// FromConfig builds the configured generator.
func FromConfig(cfg *config.Config) (Generator, error) {
	switch cfg.Backend.Kind {
	case "offline":
		return Offline{}, nil
	case "openai":
		return NewOpenAI(cfg.Backend, cfg.Benchmark), nil
	default:
		return nil, fmt.Errorf("unknown backend kind %q", cfg.Backend.Kind)
	}
}
