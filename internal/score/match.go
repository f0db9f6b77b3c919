package score

import (
	"strings"
	"unicode/utf8"
)

// MatchOptions configures the match rules. ShortTokenLen is measured on the
// normalized reference.
type MatchOptions struct {
	ShortTokenLen int
}

// DefaultMatchOptions accepts short answers like "8", "Au", or "def" as
// standalone tokens.
var DefaultMatchOptions = MatchOptions{ShortTokenLen: 5}

// Match scores a prediction against a gradable reference. Rules apply in
// order, first hit wins:
//  1. exact match on normalized strings
//  2. for references longer than ShortTokenLen, containment of the
//     normalized reference in the normalized first line
//  3. for short references, an exact standalone-token match within the
//     first line
//
// No number-word conversion is attempted: "eight" does not match "8".
func Match(prediction, reference string, opts MatchOptions) bool {
	if opts.ShortTokenLen <= 0 {
		opts.ShortTokenLen = DefaultMatchOptions.ShortTokenLen
	}

	ref := Normalize(reference)
	if Normalize(prediction) == ref {
		return true
	}
	if ref == "" {
		return false
	}

	line := Normalize(firstLine(prediction))
	if utf8.RuneCountInString(ref) > opts.ShortTokenLen {
		return strings.Contains(line, ref)
	}

	// Short references match only as standalone tokens: plain containment
	// would let "def" hit inside "defensive".
	for _, tok := range tokens(line) {
		if tok == ref {
			return true
		}
	}
	return false
}

// tokens splits a normalized line on whitespace, treating backticks and
// periods as separators so "`def`" and a trailing "system." still match.
func tokens(line string) []string {
	return strings.Fields(strings.Map(func(r rune) rune {
		if r == '`' || r == '.' {
			return ' '
		}
		return r
	}, line))
}
