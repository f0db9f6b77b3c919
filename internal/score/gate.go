package score

import (
	"strings"
	"unicode/utf8"
)

// GateOptions configures the gradability gate. The length cap applies to the
// raw reference, before any normalization.
type GateOptions struct {
	MaxReferenceLen int
}

// DefaultGateOptions matches the published benchmark settings.
var DefaultGateOptions = GateOptions{MaxReferenceLen: 80}

// Gradable reports whether a reference answer can be auto-scored. Bracketed
// placeholders ("[...]", "[To be filled ...]") and long free-form references
// are rejected; matching tasks are skipped and excluded from accuracy.
func Gradable(reference string, opts GateOptions) bool {
	if opts.MaxReferenceLen <= 0 {
		opts.MaxReferenceLen = DefaultGateOptions.MaxReferenceLen
	}
	trimmed := strings.TrimSpace(reference)
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") && len(trimmed) >= 2 {
		return false
	}
	return utf8.RuneCountInString(reference) <= opts.MaxReferenceLen
}
