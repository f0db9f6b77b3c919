package score

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Articles are leading tokens stripped once during normalization. The table
// can be swapped for locale-specific articles before any scoring starts.
var Articles = []string{"the", "a", "an"}

// Normalize canonicalizes text for comparison: Unicode compatibility
// decomposition with combining marks removed, lowercased, whitespace runs
// collapsed to single spaces, and a single leading article dropped.
// It is total over arbitrary input; undecodable bytes degrade to a
// best-effort fold rather than an error.
func Normalize(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn))), s)
	if err != nil {
		folded = s
	}
	out := strings.Join(strings.Fields(strings.ToLower(folded)), " ")
	for _, article := range Articles {
		if strings.HasPrefix(out, article+" ") {
			out = out[len(article)+1:]
			break
		}
	}
	return out
}

// firstLine returns the text before the first newline. Line structure is
// taken from the raw prediction since Normalize collapses newlines away.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
