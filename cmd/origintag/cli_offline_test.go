package main_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func buildCLI(t *testing.T, dir string) string {
	t.Helper()
	bin := filepath.Join(dir, "origintag.bin")
	build := exec.Command("go", "build", "-o", bin, "github.com/tkasela/origintag/cmd/origintag")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("failed to build CLI: %v", err)
	}
	return bin
}

func runCLI(t *testing.T, bin string, args ...string) (string, string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		t.Fatalf("cli timed out, stderr:\n%s", stderr.String())
	}
	if err != nil {
		t.Fatalf("cli failed: %v\nstderr:\n%s", err, stderr.String())
	}
	return stdout.String(), stderr.String()
}

func TestCLI_Offline(t *testing.T) {
	tmp := t.TempDir()
	bin := buildCLI(t, tmp)

	input := filepath.Join(tmp, "input.txt")
	if err := os.WriteFile(input, []byte("peegel"), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	dbPath := filepath.Join(tmp, "lexicon.db")

	stdout, stderr := runCLI(t, bin, "-in", input, "-db", dbPath, "-offline")

	if !strings.Contains(stderr, "Tagged 1 tokens") {
		t.Fatalf("unexpected summary:\n%s", stderr)
	}

	var rec struct {
		Token      string  `json:"token"`
		Lemma      string  `json:"lemma"`
		Origin     string  `json:"origin"`
		Confidence float64 `json:"confidence"`
		Evidence   struct {
			Source string  `json:"source"`
			Text   *string `json:"text"`
		} `json:"evidence"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(stdout)), &rec); err != nil {
		t.Fatalf("parse output %q: %v", stdout, err)
	}
	if rec.Token != "peegel" || rec.Lemma != "peegel" {
		t.Errorf("token/lemma = %s/%s", rec.Token, rec.Lemma)
	}
	if rec.Origin != "unknown" || rec.Confidence != 0.2 {
		t.Errorf("origin/confidence = %s/%v, want unknown/0.2", rec.Origin, rec.Confidence)
	}
	if rec.Evidence.Source != "none" || rec.Evidence.Text != nil {
		t.Errorf("evidence = %+v, want none/null", rec.Evidence)
	}
}

func TestCLI_ImportThenAnnotate(t *testing.T) {
	tmp := t.TempDir()
	bin := buildCLI(t, tmp)

	seed := filepath.Join(tmp, "seed.json")
	seedContent := `[{"lemma": "mina", "origin": "native_finnic", "source": "manual", "evidence_text": "Soome-ugri algupära"}]`
	if err := os.WriteFile(seed, []byte(seedContent), 0644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	dbPath := filepath.Join(tmp, "lexicon.db")

	stdout, _ := runCLI(t, bin, "-db", dbPath, "-import-lexicon", seed)
	if !strings.Contains(stdout, "Imported 1 entries") {
		t.Fatalf("unexpected import output:\n%s", stdout)
	}

	// The cache survives into a fresh process run.
	dbConn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer dbConn.Close()
	var cnt int
	if err := dbConn.QueryRow("SELECT COUNT(*) FROM lexicon").Scan(&cnt); err != nil {
		t.Fatalf("db query failed: %v", err)
	}
	if cnt != 1 {
		t.Fatalf("expected 1 cached entry, found %d", cnt)
	}

	input := filepath.Join(tmp, "input.txt")
	if err := os.WriteFile(input, []byte("Mina"), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	stdout, _ = runCLI(t, bin, "-in", input, "-db", dbPath, "-offline")

	var rec struct {
		Lemma      string  `json:"lemma"`
		Origin     string  `json:"origin"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(stdout)), &rec); err != nil {
		t.Fatalf("parse output %q: %v", stdout, err)
	}
	if rec.Lemma != "mina" || rec.Origin != "native_finnic" || rec.Confidence != 0.9 {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestCLI_InvalidConfig(t *testing.T) {
	tmp := t.TempDir()
	bin := buildCLI(t, tmp)

	input := filepath.Join(tmp, "input.txt")
	if err := os.WriteFile(input, []byte("peegel"), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	cmd := exec.Command(bin, "-in", input, "-db", filepath.Join(tmp, "x.db"), "-min-conf", "1.5")
	if err := cmd.Run(); err == nil {
		t.Fatal("expected non-zero exit for out-of-range -min-conf")
	}
}
