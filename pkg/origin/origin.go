// Package origin classifies free-text etymology descriptions into a closed
// set of origin tags.
package origin

import (
	"regexp"
	"strings"
)

// Tag is the etymological origin label assigned to a lemma.
type Tag string

// The closed origin taxonomy. Loan tags carry the source language after the
// colon; Unknown marks a lemma no source could resolve.
const (
	NativeFinnic   Tag = "native_finnic"
	LoanLowGerman  Tag = "loan:low_german"
	LoanGerman     Tag = "loan:german"
	LoanSwedish    Tag = "loan:swedish"
	LoanRussian    Tag = "loan:russian"
	LoanLatin      Tag = "loan:latin"
	LoanFrench     Tag = "loan:french"
	LoanEnglish    Tag = "loan:english"
	LoanLatvian    Tag = "loan:latvian"
	LoanLithuanian Tag = "loan:lithuanian"
	LoanBaltic     Tag = "loan:baltic"
	LoanFinnish    Tag = "loan:finnish"
	Unknown        Tag = "unknown"
)

// Rule pairs a language-name pattern with the tag it maps to.
type Rule struct {
	Pattern *regexp.Regexp
	Tag     Tag
}

// reNative recognizes native-origin phrasing when no language rule matched.
var reNative = regexp.MustCompile(`(?i)\b(päris?eesti|omakeelne|algupärane)\b`)

// DefaultRules returns the standard ordered rule table. Order matters:
// earlier rules shadow later ones on overlapping text, e.g. "madalsaksa"
// must hit low_german before the plain "saksa" rule, and "soome" is read
// as Finnic before the trailing finnish rule gets a chance.
func DefaultRules() []Rule {
	return []Rule{
		{regexp.MustCompile(`(?i)\b(soome-?ugri|fennougric|uralic|soome)\b`), NativeFinnic},
		{regexp.MustCompile(`(?i)\b(madal(s|-)?saksa|alamsaksa|low german)\b`), LoanLowGerman},
		{regexp.MustCompile(`(?i)\b(saksa|german)\b`), LoanGerman},
		{regexp.MustCompile(`(?i)\b(rootsi|swedish)\b`), LoanSwedish},
		{regexp.MustCompile(`(?i)\b(vene|russian)\b`), LoanRussian},
		{regexp.MustCompile(`(?i)\b(ladina|latin)\b`), LoanLatin},
		{regexp.MustCompile(`(?i)\b(prantsuse|french)\b`), LoanFrench},
		{regexp.MustCompile(`(?i)\b(inglise|english)\b`), LoanEnglish},
		{regexp.MustCompile(`(?i)\b(läti|latvian)\b`), LoanLatvian},
		{regexp.MustCompile(`(?i)\b(leedu|lithuanian)\b`), LoanLithuanian},
		{regexp.MustCompile(`(?i)\b(balti|baltic)\b`), LoanBaltic},
		{regexp.MustCompile(`(?i)\b(soome|finnish)\b`), LoanFinnish},
	}
}

// Classifier maps an etymology description to an origin tag using an
// ordered rule table. The table is injected at construction so locales can
// swap it out.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier over the given ordered rules.
func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the tag of the first rule matching text, in table order.
// If no rule matches but the text reads as native-origin phrasing, it
// returns NativeFinnic. ok is false when the text yields no classification
// at all (distinct from the Unknown tag used downstream).
func (c *Classifier) Classify(text string) (Tag, bool) {
	if text == "" {
		return "", false
	}
	lowered := strings.ToLower(text)
	for _, r := range c.rules {
		if r.Pattern.MatchString(lowered) {
			return r.Tag, true
		}
	}
	if reNative.MatchString(lowered) {
		return NativeFinnic, true
	}
	return "", false
}
