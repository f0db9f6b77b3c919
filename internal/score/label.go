package score

import (
	"strings"
	"unicode/utf8"
)

// Label classifies a model's response to a hallucination stress-test.
type Label string

const (
	// LabelRefusal means the model declined, corrected a false premise, or
	// stated that the entity or event does not exist.
	LabelRefusal Label = "refusal_or_correction"
	// LabelHallucination means the model gave a confident, specific, likely
	// fabricated answer.
	LabelHallucination Label = "hallucination_candidate"
	// LabelUnclear covers empty, purely hedging, or mixed responses.
	LabelUnclear Label = "unclear"
	// LabelNone marks results that are not stress-tests.
	LabelNone Label = ""
)

// LabelRule maps a normalized substring to a label. Rules are checked in
// order; the first hit wins.
type LabelRule struct {
	Substring string
	Label     Label
}

// DefaultRules covers common refusal and premise-correction phrasings.
// Matching happens on the normalized prediction, so entries are lowercase
// with single spaces. New phrasings extend the table, not the algorithm.
var DefaultRules = []LabelRule{
	{"i don't know", LabelRefusal},
	{"i do not know", LabelRefusal},
	{"i'm not sure", LabelRefusal},
	{"i am not sure", LabelRefusal},
	{"i'm not aware", LabelRefusal},
	{"i am not aware", LabelRefusal},
	{"cannot answer", LabelRefusal},
	{"can't answer", LabelRefusal},
	{"unable to answer", LabelRefusal},
	{"does not exist", LabelRefusal},
	{"doesn't exist", LabelRefusal},
	{"no such", LabelRefusal},
	{"there is no", LabelRefusal},
	{"there was no", LabelRefusal},
	{"did not", LabelRefusal},
	{"never happened", LabelRefusal},
	{"not a real", LabelRefusal},
	{"is not real", LabelRefusal},
	{"fictional", LabelRefusal},
	{"fictitious", LabelRefusal},
	{"false premise", LabelRefusal},
	{"no record of", LabelRefusal},
	{"is unknown", LabelRefusal},
}

// Hedges are uncertainty phrases that block the concrete-claim heuristic.
var Hedges = []string{
	"might", "may be", "perhaps", "possibly", "maybe",
	"hard to say", "uncertain", "unsure", "it depends",
}

// LabelerOptions configures hallucination labeling. A nil Rules slice falls
// back to DefaultRules; MinClaimLen is the normalized length below which a
// response is too thin to count as a concrete claim.
type LabelerOptions struct {
	Rules       []LabelRule
	MinClaimLen int
}

// DefaultLabelerOptions is the published rule table and claim threshold.
var DefaultLabelerOptions = LabelerOptions{MinClaimLen: 20}

// Classify labels a stress-test prediction. Ambiguity always resolves to
// LabelUnclear, never to an error: this is a lexical heuristic, not a judge.
func Classify(prediction string, opts LabelerOptions) Label {
	rules := opts.Rules
	if rules == nil {
		rules = DefaultRules
	}
	minClaim := opts.MinClaimLen
	if minClaim <= 0 {
		minClaim = DefaultLabelerOptions.MinClaimLen
	}

	norm := Normalize(prediction)
	if norm == "" {
		return LabelUnclear
	}
	for _, rule := range rules {
		if strings.Contains(norm, rule.Substring) {
			return rule.Label
		}
	}
	for _, hedge := range Hedges {
		if strings.Contains(norm, hedge) {
			return LabelUnclear
		}
	}
	if utf8.RuneCountInString(norm) >= minClaim {
		return LabelHallucination
	}
	return LabelUnclear
}
