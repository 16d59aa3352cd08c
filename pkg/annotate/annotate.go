// Package annotate runs the text annotation pipeline: morphological
// analysis, per-lemma origin resolution, and confidence filtering.
package annotate

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/tkasela/origintag/pkg/morph"
	"github.com/tkasela/origintag/pkg/origin"
	"github.com/tkasela/origintag/pkg/resolve"
)

// Evidence is the snippet that justified an origin classification.
type Evidence struct {
	Source string  `json:"source"`
	Text   *string `json:"text"`
}

// Annotation is one emitted token record.
type Annotation struct {
	Token      string     `json:"token"`
	Lemma      string     `json:"lemma"`
	POS        *string    `json:"pos"`
	Origin     origin.Tag `json:"origin"`
	Confidence float64    `json:"confidence"`
	Evidence   Evidence   `json:"evidence"`
	// Components is reserved for compound decomposition and is currently
	// always empty; see Options.AllowCompounds.
	Components []string `json:"components"`
}

// Options control the pipeline.
type Options struct {
	// MinConfidence drops tokens resolving below the threshold.
	MinConfidence float64
	// AllowCompounds is accepted for compatibility but has no effect on
	// output: compound decomposition is declared, not implemented, and
	// Components stays empty either way.
	AllowCompounds bool
}

// Pipeline annotates text with word origins.
type Pipeline struct {
	Analyzer morph.Analyzer
	Resolver *resolve.Resolver
}

// NewPipeline wires a pipeline over the given analyzer and resolver.
func NewPipeline(analyzer morph.Analyzer, resolver *resolve.Resolver) *Pipeline {
	return &Pipeline{Analyzer: analyzer, Resolver: resolver}
}

// Annotate analyzes text and resolves each token's lemma origin. Output
// preserves input token order; tokens below MinConfidence are dropped
// silently. A token without morphological analysis uses its lower-cased
// surface as the lemma and has no POS.
func (p *Pipeline) Annotate(ctx context.Context, text string, opts Options) ([]Annotation, error) {
	tokens, err := p.Analyzer.Analyze(text)
	if err != nil {
		return nil, fmt.Errorf("morphological analysis: %w", err)
	}

	out := make([]Annotation, 0, len(tokens))
	for _, tok := range tokens {
		lemma := strings.ToLower(tok.Surface)
		var pos *string
		if len(tok.Analyses) > 0 {
			primary := tok.Analyses[0]
			lemma = strings.ToLower(primary.Lemma)
			if primary.POS != "" {
				v := primary.POS
				pos = &v
			}
		}

		res := p.Resolver.Resolve(ctx, lemma)
		conf := round2(res.Confidence)
		if conf < opts.MinConfidence {
			continue
		}

		var evidenceText *string
		if res.Evidence != "" {
			t := res.Evidence
			evidenceText = &t
		}
		out = append(out, Annotation{
			Token:      tok.Surface,
			Lemma:      lemma,
			POS:        pos,
			Origin:     res.Origin,
			Confidence: conf,
			Evidence:   Evidence{Source: res.Source, Text: evidenceText},
			Components: []string{},
		})
	}
	return out, nil
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
