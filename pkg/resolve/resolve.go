// Package resolve orchestrates origin resolution: cache, then external
// providers in priority order, then the unknown fallback.
package resolve

import (
	"context"
	"log"

	"github.com/tkasela/origintag/pkg/lexicon"
	"github.com/tkasela/origintag/pkg/origin"
	"github.com/tkasela/origintag/pkg/provider"
)

// Source-derived confidence values.
const (
	ConfidenceCached  = 0.9
	ConfidenceUnknown = 0.2
)

// SourceNone marks a lemma no source could resolve.
const SourceNone = "none"

// Resolution is the outcome of resolving one lemma.
type Resolution struct {
	Origin     origin.Tag
	Source     string
	Evidence   string
	Confidence float64
}

// Resolver resolves lemma origins. Providers are tried in slice order; the
// first usable result wins and is persisted. Failures along the way are
// absorbed, never raised: the worst outcome is the unknown fallback.
type Resolver struct {
	Cache      *lexicon.Store
	Classifier *origin.Classifier
	Providers  []provider.Provider
	Offline    bool
	// Logger receives warnings for absorbed failures. nil means no logging.
	Logger *log.Logger
}

// NewResolver wires a resolver over the given cache, classifier and
// provider chain.
func NewResolver(cache *lexicon.Store, classifier *origin.Classifier, providers []provider.Provider) *Resolver {
	return &Resolver{
		Cache:      cache,
		Classifier: classifier,
		Providers:  providers,
	}
}

// Resolve returns the origin of lemma. Cache entries short-circuit external
// queries and never expire. An unresolved lemma maps to unknown/none/0.2
// and is deliberately not cached, so a later run can retry.
func (r *Resolver) Resolve(ctx context.Context, lemma string) Resolution {
	entry, err := r.Cache.Get(lemma)
	if err != nil {
		r.warnf("cache lookup for %q failed: %v", lemma, err)
	}
	if entry != nil {
		return Resolution{
			Origin:     entry.Origin,
			Source:     entry.Source,
			Evidence:   entry.EvidenceText,
			Confidence: ConfidenceCached,
		}
	}

	if !r.Offline {
		for _, p := range r.Providers {
			text, err := p.Lookup(ctx, lemma)
			if err != nil {
				r.warnf("%s lookup for %q failed: %v", p.Name(), lemma, err)
				continue
			}
			if text == "" {
				continue
			}
			tag, ok := r.Classifier.Classify(text)
			if !ok {
				// Reply present but no recognizable origin pattern:
				// not usable, fall through to the next source.
				continue
			}
			if err := r.Cache.Put(lemma, tag, p.Name(), text); err != nil {
				r.warnf("cache write for %q failed: %v", lemma, err)
			}
			return Resolution{
				Origin:     tag,
				Source:     p.Name(),
				Evidence:   text,
				Confidence: p.Confidence(),
			}
		}
	}

	return Resolution{
		Origin:     origin.Unknown,
		Source:     SourceNone,
		Confidence: ConfidenceUnknown,
	}
}

func (r *Resolver) warnf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Printf("Warning: "+format, args...)
	}
}
