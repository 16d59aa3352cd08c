// Package lexicon is the persistent word-origin cache backed by SQLite.
package lexicon

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS lexicon (
	lemma TEXT PRIMARY KEY,
	origin TEXT NOT NULL,
	source TEXT NOT NULL,
	evidence_text TEXT,
	updated_at TIMESTAMP NOT NULL
);
`

// InitDB creates the lexicon table if it does not exist. Idempotent, safe
// to call on every startup.
func InitDB(db *sql.DB) error {
	stmts := strings.Split(schemaSQL, ";")
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
