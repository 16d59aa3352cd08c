package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tkasela/origintag/pkg/origin"
)

// SeedEntry is one record of a seed-lexicon JSON file. Source defaults to
// "manual" when absent, matching hand-curated reference data.
type SeedEntry struct {
	Lemma        string `json:"lemma"`
	Origin       string `json:"origin"`
	Source       string `json:"source"`
	EvidenceText string `json:"evidence_text"`
}

// LoadSeedFile reads a seed lexicon. The file is either a bare array of
// entries or an object wrapper { "entries": [...] }.
func LoadSeedFile(path string) ([]SeedEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var wrapper struct {
		Entries []SeedEntry `json:"entries"`
	}
	dec := json.NewDecoder(f)
	if err := dec.Decode(&wrapper); err == nil && len(wrapper.Entries) > 0 {
		return wrapper.Entries, nil
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	var entries []SeedEntry
	dec = json.NewDecoder(f)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse seed lexicon as object or array: %w", err)
	}
	return entries, nil
}

// Importer bulk-loads seed entries into the cache.
type Importer struct {
	store   *Store
	entries []SeedEntry
}

// NewImporter creates an importer over the given entries.
func NewImporter(store *Store, entries []SeedEntry) *Importer {
	return &Importer{store: store, entries: entries}
}

// Apply upserts every entry and returns the number imported. Entries with
// an empty lemma or origin are skipped, not fatal.
func (im *Importer) Apply() (int, error) {
	count := 0
	for _, e := range im.entries {
		lemma := strings.ToLower(strings.TrimSpace(e.Lemma))
		if lemma == "" || e.Origin == "" {
			continue
		}
		source := e.Source
		if source == "" {
			source = "manual"
		}
		if err := im.store.Put(lemma, origin.Tag(e.Origin), source, e.EvidenceText); err != nil {
			return count, fmt.Errorf("import %q: %w", lemma, err)
		}
		count++
	}
	return count, nil
}
