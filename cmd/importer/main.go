// Command importer loads a recipe dump (JSONL, one recipe per line) into
// the relational catalog: parsing ingredient lines, analyzing instructions,
// and deriving difficulty, dietary tags, and time estimates along the way.
// It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--recipes          path to the JSONL recipe dump (overrides config)
//	--dry-run          parse and transform without writing to DB
//	--importer-config  path to importer YAML config file
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

	"github.com/forkful/mealplan-backend/internal/adapter/postgres"
	reciperepo "github.com/forkful/mealplan-backend/internal/adapter/postgres/recipe"
	"github.com/forkful/mealplan-backend/internal/app"
	"github.com/forkful/mealplan-backend/internal/config"
	"github.com/forkful/mealplan-backend/internal/etl"
)

// Compile-time interface assertion.
var _ etl.RecipeStore = (*reciperepo.Repo)(nil)

func main() {
	recipesFlag := flag.String("recipes", "", "path to the JSONL recipe dump")
	dryRunFlag := flag.Bool("dry-run", false, "parse and transform without writing to DB")
	importerConfigFlag := flag.String("importer-config", "", "path to importer YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)
	logger.Info("importer starting", slog.String("version", app.BuildVersion()))

	// Load importer config.
	importerCfg, err := etl.LoadConfig(*importerConfigFlag)
	if err != nil {
		logger.Error("load importer config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *recipesFlag != "" {
		importerCfg.RecipesPath = *recipesFlag
	}
	if *dryRunFlag {
		importerCfg.DryRun = true
	}

	// 30-minute context timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	// Connect to DB.
	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	store := reciperepo.New(pool, txm)

	// Run pipeline.
	pipeline := etl.NewPipeline(logger, store, *importerCfg)
	result, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import finished",
		slog.Int("read", result.Read),
		slog.Int("malformed", result.Malformed),
		slog.Int("invalid", result.Invalid),
		slog.Int("duplicate", result.Duplicate),
		slog.Int("inserted", result.Inserted),
		slog.Duration("duration", result.Duration),
	)
}
