package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tkasela/origintag/pkg/annotate"
	"github.com/tkasela/origintag/pkg/config"
	"github.com/tkasela/origintag/pkg/fetch"
	"github.com/tkasela/origintag/pkg/lexicon"
	"github.com/tkasela/origintag/pkg/morph"
	"github.com/tkasela/origintag/pkg/origin"
	"github.com/tkasela/origintag/pkg/provider"
	"github.com/tkasela/origintag/pkg/report"
	"github.com/tkasela/origintag/pkg/resolve"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	inFlag := flag.String("in", "", "Path to input text file")
	urlFlag := flag.String("url", "", "URL to fetch and annotate instead of -in")
	outFlag := flag.String("out", "", "Path for JSONL output (default stdout)")
	dbFlag := flag.String("db", "", "Path to SQLite lexicon cache (overrides ORIGINTAG_DB)")
	offlineFlag := flag.Bool("offline", false, "Disable external service calls, cache-only resolution")
	noCompoundsFlag := flag.Bool("no-compounds", false, "Skip compound analysis (currently has no effect on output)")
	minConfFlag := flag.Float64("min-conf", 0.0, "Filter results below this confidence")
	apiKeyFlag := flag.String("api-key", "", "EKI API key (overrides ORIGINTAG_API_KEY)")
	htmlFlag := flag.String("html", "", "Also write a styled HTML report to this path")
	tableFlag := flag.Bool("table", false, "Also print a colored table to stderr")
	importFlag := flag.String("import-lexicon", "", "Path to a seed lexicon JSON file to import, then exit")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *dbFlag != "" {
		cfg.DBPath = *dbFlag
	}
	if *apiKeyFlag != "" {
		cfg.APIKey = *apiKeyFlag
	}
	if *minConfFlag < 0 || *minConfFlag > 1 {
		log.Fatalf("Invalid -min-conf %v: must be in [0,1]", *minConfFlag)
	}

	conn, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open lexicon cache: %v", err)
	}
	defer conn.Close()

	if err := lexicon.InitDB(conn); err != nil {
		log.Fatalf("Failed to initialize lexicon cache: %v", err)
	}
	store := lexicon.NewStore(conn)

	// Handle Seed Lexicon Import (Manual)
	if *importFlag != "" {
		entries, err := lexicon.LoadSeedFile(*importFlag)
		if err != nil {
			log.Fatalf("Failed to load seed lexicon: %v", err)
		}
		count, err := lexicon.NewImporter(store, entries).Apply()
		if err != nil {
			log.Fatalf("Failed to import seed lexicon: %v", err)
		}
		fmt.Printf("Imported %d entries into %s\n", count, cfg.DBPath)
		return
	}

	if (*inFlag == "") == (*urlFlag == "") {
		log.Fatal("Please provide exactly one of -in or -url (or -import-lexicon)")
	}

	var text, title string
	if *inFlag != "" {
		data, err := os.ReadFile(*inFlag)
		if err != nil {
			log.Fatalf("Failed to read input file: %v", err)
		}
		text = string(data)
		title = *inFlag
	} else {
		fmt.Fprintf(os.Stderr, "Fetching %s...\n", *urlFlag)
		title, text, err = fetch.Article(ctx, *urlFlag)
		if err != nil {
			log.Fatalf("Failed to fetch URL: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Title: %s\n", title)
		fmt.Fprintf(os.Stderr, "Extracted Text Length: %d chars\n", len(text))
	}

	resolver := resolve.NewResolver(store, origin.NewClassifier(origin.DefaultRules()), []provider.Provider{
		provider.NewEkilex(cfg.APIKey, cfg.HTTPTimeout),
		provider.NewWiktionary(cfg.HTTPTimeout),
	})
	resolver.Offline = *offlineFlag
	resolver.Logger = log.New(os.Stderr, "", log.LstdFlags)

	pipeline := annotate.NewPipeline(morph.NewRuleAnalyzer(), resolver)
	anns, err := pipeline.Annotate(ctx, text, annotate.Options{
		MinConfidence:  *minConfFlag,
		AllowCompounds: !*noCompoundsFlag,
	})
	if err != nil {
		log.Fatalf("Annotation failed: %v", err)
	}

	var out io.Writer = os.Stdout
	if *outFlag != "" {
		f, err := os.Create(*outFlag)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}
	if err := annotate.WriteJSONL(out, anns); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	if *tableFlag {
		fmt.Fprintln(os.Stderr, report.RenderTable(anns))
	}
	if *htmlFlag != "" {
		f, err := os.Create(*htmlFlag)
		if err != nil {
			log.Fatalf("Failed to create HTML report: %v", err)
		}
		if err := report.WriteHTML(f, title, anns); err != nil {
			f.Close()
			log.Fatalf("Failed to write HTML report: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("Failed to write HTML report: %v", err)
		}
	}

	fmt.Fprintf(os.Stderr, "Tagged %d tokens. Attribution: EKI/Wiktionary where applicable.\n", len(anns))
}
