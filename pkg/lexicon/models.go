package lexicon

import (
	"time"

	"github.com/tkasela/origintag/pkg/origin"
)

// Entry is a cached origin resolution for a single lemma.
type Entry struct {
	Lemma        string
	Origin       origin.Tag
	Source       string
	EvidenceText string
	UpdatedAt    time.Time
}
