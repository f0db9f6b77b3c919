package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EvalMode selects the evaluation protocol for a run.
type EvalMode string

const (
	EvalClosedBookQA        EvalMode = "closed_book_qa"
	EvalRetrievalQA         EvalMode = "retrieval_qa"
	EvalHallucinationStress EvalMode = "hallucination_stress"
	EvalCitationCheck       EvalMode = "citation_check"
)

var validEvalModes = map[EvalMode]bool{
	EvalClosedBookQA:        true,
	EvalRetrievalQA:         true,
	EvalHallucinationStress: true,
	EvalCitationCheck:       true,
}

type Config struct {
	Benchmark Benchmark `yaml:"benchmark"`
	Tasks     string    `yaml:"tasks"`
	Backend   Backend   `yaml:"backend"`
	Results   Results   `yaml:"results"`
	Scoring   Scoring   `yaml:"scoring"`
}

// Benchmark is the config snapshot embedded in every run record.
type Benchmark struct {
	ModelID  string   `yaml:"model_id" json:"model_id"`
	Hardware string   `yaml:"hardware" json:"hardware"`
	EvalMode EvalMode `yaml:"eval_mode" json:"eval_mode"`
	Decoding Decoding `yaml:"decoding" json:"decoding"`
}

type Decoding struct {
	MaxNewTokens int     `yaml:"max_new_tokens" json:"max_new_tokens"`
	Temperature  float64 `yaml:"temperature" json:"temperature"`
	Seed         int     `yaml:"seed" json:"seed"`
}

type Backend struct {
	Kind      string `yaml:"kind"`        // "offline" or "openai"
	BaseURL   string `yaml:"base_url"`    // OpenAI-compatible endpoint
	APIKeyEnv string `yaml:"api_key_env"` // env var holding the key
}

type Results struct {
	Dir string `yaml:"dir"`
}

// Scoring exposes the thresholds the scorer would otherwise hard-wire.
type Scoring struct {
	MaxReferenceLen int `yaml:"max_reference_len"`
	ShortTokenLen   int `yaml:"short_token_len"`
	MinClaimLen     int `yaml:"min_claim_len"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Benchmark.ModelID == "" {
		return fmt.Errorf("benchmark: model_id is required")
	}
	if cfg.Benchmark.Hardware == "" {
		cfg.Benchmark.Hardware = "unknown"
	}
	if cfg.Benchmark.EvalMode == "" {
		cfg.Benchmark.EvalMode = EvalClosedBookQA
	}
	if !validEvalModes[cfg.Benchmark.EvalMode] {
		return fmt.Errorf("benchmark: unknown eval_mode %q", cfg.Benchmark.EvalMode)
	}
	if cfg.Benchmark.Decoding.MaxNewTokens <= 0 {
		cfg.Benchmark.Decoding.MaxNewTokens = 64
	}
	if cfg.Tasks == "" {
		return fmt.Errorf("tasks file path is required")
	}
	switch cfg.Backend.Kind {
	case "":
		cfg.Backend.Kind = "offline"
	case "offline":
	case "openai":
		if cfg.Backend.BaseURL == "" {
			return fmt.Errorf("backend: base_url is required for kind openai")
		}
	default:
		return fmt.Errorf("backend: unknown kind %q", cfg.Backend.Kind)
	}
	if cfg.Results.Dir == "" {
		cfg.Results.Dir = "results"
	}
	if cfg.Scoring.MaxReferenceLen == 0 {
		cfg.Scoring.MaxReferenceLen = 80
	}
	if cfg.Scoring.ShortTokenLen == 0 {
		cfg.Scoring.ShortTokenLen = 5
	}
	if cfg.Scoring.MinClaimLen == 0 {
		cfg.Scoring.MinClaimLen = 20
	}
	return nil
}
