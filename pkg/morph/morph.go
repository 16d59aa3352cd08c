// Package morph provides Estonian tokenization and morphological analysis.
package morph

import (
	"regexp"
	"strings"
)

// Analysis is one morphological reading of a surface form.
type Analysis struct {
	Lemma string
	POS   string
}

// Token represents a single analyzed unit of text. Analyses may be empty
// when the analyzer does not know the form; callers fall back to the
// lower-cased surface in that case.
type Token struct {
	Surface  string
	Analyses []Analysis
}

// Analyzer produces morphological analyses for a text. Implementations must
// preserve input token order.
type Analyzer interface {
	Analyze(text string) ([]Token, error)
}

// reWord matches a single Estonian/Unicode word token, including hyphenated
// compounds like soome-ugri.
var reWord = regexp.MustCompile(`[\p{L}][\p{L}\p{M}]*(?:-[\p{L}][\p{L}\p{M}]*)*`)

// Tokenize splits text into word tokens, in input order.
func Tokenize(text string) []string {
	return reWord.FindAllString(text, -1)
}

// RuleAnalyzer is a small rule-based analyzer: an irregular-form table plus
// stem+ending lemmatization over a known-lemma list. It covers common
// function words and regular nominal/verbal inflection; forms it does not
// recognize come back with no analyses.
type RuleAnalyzer struct {
	irregular map[string]Analysis
	lemmas    map[string]string // lemma -> POS
}

// NewRuleAnalyzer creates an analyzer with the built-in form tables.
func NewRuleAnalyzer() *RuleAnalyzer {
	return &RuleAnalyzer{
		irregular: irregularForms,
		lemmas:    knownLemmas,
	}
}

// Analyze tokenizes text and analyzes each token.
func (a *RuleAnalyzer) Analyze(text string) ([]Token, error) {
	words := Tokenize(text)
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, Token{
			Surface:  w,
			Analyses: a.analyzeForm(strings.ToLower(w)),
		})
	}
	return tokens, nil
}

// endings are candidate inflectional endings, longest first so e.g. -sse is
// stripped before -e.
var endings = []string{
	"desse", "tesse", "dele", "tele",
	"isse", "ile", "ilt", "ist", "iga", "iks", "ini", "ina", "est",
	"sse", "sid", "vad", "nud", "tud",
	"de", "te", "st", "le", "lt", "ga", "ks", "ni", "na", "id", "is", "il", "it", "me",
	"b", "d", "l", "s", "t", "e", "i", "u",
}

func (a *RuleAnalyzer) analyzeForm(form string) []Analysis {
	if an, ok := a.irregular[form]; ok {
		return []Analysis{an}
	}
	if pos, ok := a.lemmas[form]; ok {
		return []Analysis{{Lemma: form, POS: pos}}
	}
	// Stem + ending: strip one ending and check the radical against the
	// lemma list, both as-is (nominals) and with the -ma infinitive
	// restored (verbs).
	for _, end := range endings {
		if !strings.HasSuffix(form, end) {
			continue
		}
		stem := strings.TrimSuffix(form, end)
		if len([]rune(stem)) < 2 {
			continue
		}
		if pos, ok := a.lemmas[stem]; ok {
			return []Analysis{{Lemma: stem, POS: pos}}
		}
		if pos, ok := a.lemmas[stem+"ma"]; ok && pos == "V" {
			return []Analysis{{Lemma: stem + "ma", POS: "V"}}
		}
		if pos, ok := a.lemmas[stem+"a"]; ok {
			return []Analysis{{Lemma: stem + "a", POS: pos}}
		}
	}
	return nil
}
