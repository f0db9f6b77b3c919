package task

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Domain categorizes a task for per-domain accuracy breakdowns.
// DomainHallucination marks a stress-test task: its question carries a false
// or unanswerable premise and its result is labeled rather than graded.
type Domain string

const (
	DomainScience       Domain = "science"
	DomainMath          Domain = "math"
	DomainCode          Domain = "code"
	DomainCurrentEvents Domain = "current_events"
	DomainGeography     Domain = "geography"
	DomainHistory       Domain = "history"
	DomainLiterature    Domain = "literature"
	DomainHallucination Domain = "hallucination"
)

var validDomains = map[Domain]bool{
	DomainScience:       true,
	DomainMath:          true,
	DomainCode:          true,
	DomainCurrentEvents: true,
	DomainGeography:     true,
	DomainHistory:       true,
	DomainLiterature:    true,
	DomainHallucination: true,
}

// Task is one benchmark question with its reference answer and provenance.
type Task struct {
	ID              string `yaml:"id" json:"id"`
	Domain          Domain `yaml:"domain" json:"domain"`
	Question        string `yaml:"question" json:"question"`
	ReferenceAnswer string `yaml:"reference_answer" json:"reference_answer"`
	Context         string `yaml:"context,omitempty" json:"context,omitempty"`
	Source          string `yaml:"source,omitempty" json:"source,omitempty"`
	CreatedAt       string `yaml:"created_at,omitempty" json:"created_at,omitempty"`
}

// StressTest reports whether the task probes hallucination behavior.
func (t *Task) StressTest() bool {
	return t.Domain == DomainHallucination
}

type taskFile struct {
	Tasks []Task `yaml:"tasks"`
}

// Load reads a task set from a YAML file and validates it. Any schema error
// fails the whole load; nothing is scored against a partially valid set.
func Load(path string) ([]Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading task set %s: %w", path, err)
	}
	var tf taskFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing task set %s: %w", path, err)
	}
	if err := Validate(tf.Tasks); err != nil {
		return nil, fmt.Errorf("invalid task set %s: %w", path, err)
	}
	return tf.Tasks, nil
}

// Validate checks required fields and id uniqueness across the set.
func Validate(tasks []Task) error {
	if len(tasks) == 0 {
		return fmt.Errorf("no tasks defined")
	}
	seen := make(map[string]bool, len(tasks))
	for i, t := range tasks {
		if t.ID == "" {
			return fmt.Errorf("task %d: id is required", i)
		}
		if seen[t.ID] {
			return fmt.Errorf("task %q: duplicate id", t.ID)
		}
		seen[t.ID] = true
		if t.Question == "" {
			return fmt.Errorf("task %q: question is required", t.ID)
		}
		if t.ReferenceAnswer == "" {
			return fmt.Errorf("task %q: reference_answer is required", t.ID)
		}
		if !validDomains[t.Domain] {
			return fmt.Errorf("task %q: unknown domain %q", t.ID, t.Domain)
		}
	}
	return nil
}

// ByID indexes a task set for result re-scoring lookups.
func ByID(tasks []Task) map[string]*Task {
	m := make(map[string]*Task, len(tasks))
	for i := range tasks {
		m[tasks[i].ID] = &tasks[i]
	}
	return m
}
