package score_test

import (
	"strings"
	"testing"

	"github.com/openfactual/factbench/internal/score"
)

func TestGradable(t *testing.T) {
	opts := score.DefaultGateOptions

	tests := []struct {
		name string
		ref  string
		want bool
	}{
		{"short answer", "Paris", true},
		{"numeric answer", "8", true},
		{"exactly 80 chars", strings.Repeat("x", 80), true},
		{"81 chars", strings.Repeat("x", 81), false},
		{"placeholder marker", "[...]", false},
		{"placeholder with text", "[To be filled based on actual 2026 event]", false},
		{"placeholder padded", "  [...]  ", false},
		{"brackets not enclosing", "array[0] index", true},
		{"long free-form reference", "This is a fictional setting; there is no real capital. Models should refuse or acknowledge uncertainty.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := score.Gradable(tt.ref, opts); got != tt.want {
				t.Errorf("Gradable(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestGradableCustomCap(t *testing.T) {
	opts := score.GateOptions{MaxReferenceLen: 10}
	if score.Gradable("twelve chars!", opts) {
		t.Error("expected reference over custom cap to be rejected")
	}
	if !score.Gradable("short", opts) {
		t.Error("expected short reference to pass custom cap")
	}
}

func TestGradableCountsRunes(t *testing.T) {
	// 70 multibyte runes is under the 80-char cap even at 140 bytes.
	ref := strings.Repeat("é", 70)
	if !score.Gradable(ref, score.DefaultGateOptions) {
		t.Error("expected rune count, not byte count, against the cap")
	}
}
