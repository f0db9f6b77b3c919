package task_test

import (
	"testing"

	"github.com/openfactual/factbench/internal/task"
)

func TestLoadExampleSet(t *testing.T) {
	tasks, err := task.Load("../../testdata/tasks_example.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 11 {
		t.Errorf("expected 11 tasks, got %d", len(tasks))
	}

	byID := task.ByID(tasks)
	h, ok := byID["hallucination_001"]
	if !ok {
		t.Fatal("hallucination_001 missing")
	}
	if !h.StressTest() {
		t.Error("hallucination domain task must be a stress-test")
	}
	if s := byID["science_001"]; s.StressTest() {
		t.Error("science task must not be a stress-test")
	}
	if byID["science_001"].Source != "synthetic_demo_v1" {
		t.Errorf("provenance not loaded: %q", byID["science_001"].Source)
	}
}

func TestValidate(t *testing.T) {
	valid := task.Task{ID: "t1", Domain: task.DomainScience, Question: "q", ReferenceAnswer: "a"}

	tests := []struct {
		name    string
		tasks   []task.Task
		wantErr bool
	}{
		{"valid single", []task.Task{valid}, false},
		{"empty set", nil, true},
		{"missing id", []task.Task{{Domain: task.DomainMath, Question: "q", ReferenceAnswer: "a"}}, true},
		{"missing question", []task.Task{{ID: "t1", Domain: task.DomainMath, ReferenceAnswer: "a"}}, true},
		{"missing reference", []task.Task{{ID: "t1", Domain: task.DomainMath, Question: "q"}}, true},
		{"unknown domain", []task.Task{{ID: "t1", Domain: "astrology", Question: "q", ReferenceAnswer: "a"}}, true},
		{"duplicate ids", []task.Task{valid, valid}, true},
		{"distinct ids", []task.Task{valid, {ID: "t2", Domain: task.DomainCode, Question: "q", ReferenceAnswer: "a"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := task.Validate(tt.tasks)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := task.Load("nonexistent.yaml"); err == nil {
		t.Error("expected error for missing task set")
	}
}
