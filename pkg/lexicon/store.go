package lexicon

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tkasela/origintag/pkg/origin"
)

// MaxEvidenceLen bounds the stored evidence snippet. Longer service replies
// are truncated, not rejected.
const MaxEvidenceLen = 5000

// Store reads and writes lexicon entries. Callers lower-case lemmas before
// lookup and store, so matching is effectively case-insensitive.
type Store struct {
	db *sql.DB
}

// NewStore wraps an initialized database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the entry for lemma, or nil if none is cached.
func (s *Store) Get(lemma string) (*Entry, error) {
	row := s.db.QueryRow(
		`SELECT lemma, origin, source, evidence_text, updated_at FROM lexicon WHERE lemma = ?`,
		lemma,
	)
	var e Entry
	var evidence sql.NullString
	err := row.Scan(&e.Lemma, &e.Origin, &e.Source, &evidence, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lexicon get %q: %w", lemma, err)
	}
	if evidence.Valid {
		e.EvidenceText = evidence.String
	}
	return &e, nil
}

// Put upserts the entry for lemma with the current time. Last write wins;
// there is no merge with an existing row.
func (s *Store) Put(lemma string, tag origin.Tag, source, evidence string) error {
	if strings.TrimSpace(lemma) == "" {
		return fmt.Errorf("lemma must be non-empty")
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO lexicon (lemma, origin, source, evidence_text, updated_at) VALUES (?, ?, ?, ?, ?)`,
		lemma, string(tag), source, nullableString(truncate(evidence, MaxEvidenceLen)), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("lexicon put %q: %w", lemma, err)
	}
	return nil
}

// Count returns the number of cached entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM lexicon`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// truncate cuts s to at most n runes, keeping the string valid UTF-8.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// nullableString returns nil for "" (meaning no evidence) else the value.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
