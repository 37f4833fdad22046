package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"github.com/Rishita317/saas-security-signal-engine/internal/classify"
	"github.com/Rishita317/saas-security-signal-engine/internal/config"
	"github.com/Rishita317/saas-security-signal-engine/internal/export"
	"github.com/Rishita317/saas-security-signal-engine/internal/registry"
	"github.com/Rishita317/saas-security-signal-engine/internal/secrets"
	"github.com/Rishita317/saas-security-signal-engine/internal/store"
	"github.com/Rishita317/saas-security-signal-engine/internal/tracker"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath   = flag.String("config", "", "config path (default <data>/config.yml)")
		dataDir   = flag.String("data", "", "data directory (default from config/env)")
		outDir    = flag.String("out", "", "output directory override")
		companies = flag.Int("companies", 0, "company target override")
		posts     = flag.Int("posts", 0, "conversation post target override")
	)
	flag.Parse()

	dir := *dataDir
	if dir == "" {
		dir = os.Getenv("SIGNAL_ENGINE_DATA_DIR")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One run at a time per data dir; a second run would interleave
	// exports and the weekly snapshot.
	lock := flock.New(filepath.Join(dir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("run lock: %v", err)
	}
	if !locked {
		log.Fatalf("another discovery run holds %s", lock.Path())
	}
	defer lock.Unlock()

	path := *cfgPath
	if path == "" {
		path, err = config.EnsureUserConfig(dir, filepath.Join("config", "config.yml"))
		if err != nil {
			log.Fatalf("config bootstrap failed: %v", err)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("config load failed (%s): %v; continuing with defaults", path, err)
	}

	if cfg.Classify.APIKey == "" {
		cfg.Classify.APIKey = secrets.ClassifierAPIKey()
	}
	if *companies > 0 {
		cfg.Budgets.Companies = *companies
	}
	if *posts > 0 {
		cfg.Budgets.Posts = *posts
	}
	if *outDir != "" {
		cfg.App.OutputDir = *outDir
	}
	if err := os.MkdirAll(cfg.App.OutputDir, 0o755); err != nil {
		log.Fatal(err)
	}

	db, err := store.Open(filepath.Join(dir, "signals.db"))
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("[engine] target: %d companies, %d posts", cfg.Budgets.Companies, cfg.Budgets.Posts)

	eng := buildEngine(cfg)
	reg := registry.New()
	sum := eng.Run(ctx, reg, cfg.Budgets.Companies, cfg.Budgets.Posts)

	entries := tracker.Build(reg)

	cls := classify.New(cfg)
	scored := cls.ScorePosts(ctx, reg, cfg.Keywords.Conversation)
	relevant := classify.FilterRelevant(scored, cfg.Classify.MinRelevance)
	log.Printf("[classify] %d/%d posts above %.2f relevance", len(relevant), len(scored), cfg.Classify.MinRelevance)

	weekID := store.WeekID(time.Now())
	saveCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := store.SaveSnapshot(saveCtx, db, weekID, entries, reg, relevant); err != nil {
		log.Printf("[store] snapshot failed: %v", err)
	} else if weeks, err := store.PriorWeeks(saveCtx, db); err == nil {
		log.Printf("[store] snapshot %s saved, %d weeks on record", weekID, len(weeks))
	}

	for _, write := range []func() (string, error){
		func() (string, error) { return export.WriteTrackerCSV(cfg.App.OutputDir, weekID, entries) },
		func() (string, error) { return export.WriteHiringCSV(cfg.App.OutputDir, weekID, reg) },
		func() (string, error) { return export.WriteConversationsCSV(cfg.App.OutputDir, weekID, relevant) },
		func() (string, error) { return export.WriteSummaryJSON(cfg.App.OutputDir, weekID, sum) },
	} {
		if p, err := write(); err != nil {
			log.Printf("[export] %s: %v", p, err)
		} else {
			log.Printf("[export] wrote %s", p)
		}
	}

	printSummary(entries, sum)
}
