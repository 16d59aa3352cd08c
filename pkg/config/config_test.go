package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != ".cache_origin.sqlite3" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.HTTPTimeout != 8*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ORIGINTAG_API_KEY", "secret")
	t.Setenv("ORIGINTAG_DB", "/tmp/lexicon.db")
	t.Setenv("ORIGINTAG_HTTP_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.DBPath != "/tmp/lexicon.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}
