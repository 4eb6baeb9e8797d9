// Command seeder imports a Tatoeba sentence-pair export into a learner's
// translation store, so practice can fall back to stored exercises.
// It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--file           path to the TSV export (id, source, id, target)
//	--user           learner UUID that owns the imported sentences
//	--from, --to     language codes of the source and target columns
//	--max-len        rune limit per sentence
//	--limit          stop after this many pairs
//	--dry-run        parse the dataset without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/rapidlingo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rapidlingo-backend/internal/adapter/postgres/translation"
	"github.com/heartmarshall/rapidlingo-backend/internal/app"
	"github.com/heartmarshall/rapidlingo-backend/internal/app/seeder"
	"github.com/heartmarshall/rapidlingo-backend/internal/config"
)

func main() {
	fileFlag := flag.String("file", "", "path to the Tatoeba TSV export")
	userFlag := flag.String("user", "", "learner UUID")
	fromFlag := flag.String("from", "", "source language code")
	toFlag := flag.String("to", "", "target language code")
	maxLenFlag := flag.Int("max-len", 0, "max sentence length in runes")
	limitFlag := flag.Int("limit", 0, "max pairs to import (0 = all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse the dataset without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection and logging).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *fileFlag != "" {
		seederCfg.TatoebaPath = *fileFlag
	}
	if *userFlag != "" {
		seederCfg.UserID = *userFlag
	}
	if *fromFlag != "" {
		seederCfg.FromLanguage = *fromFlag
	}
	if *toFlag != "" {
		seederCfg.ToLanguage = *toFlag
	}
	if *maxLenFlag > 0 {
		seederCfg.MaxSentenceLen = *maxLenFlag
	}
	if *limitFlag > 0 {
		seederCfg.Limit = *limitFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	if err := seederCfg.Validate(); err != nil {
		logger.Error("invalid seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	var repo seeder.TranslationBulkRepo
	if !seederCfg.DryRun {
		pool, err := postgres.NewPool(ctx, appCfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		if appCfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				logger.Error("migrate", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
		repo = translation.New(pool)
	}

	if _, err := seeder.NewPipeline(logger, repo, *seederCfg).Run(ctx); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
