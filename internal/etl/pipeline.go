package etl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/forkful/mealplan-backend/internal/domain"
)

// Result holds the outcome of a pipeline run.
type Result struct {
	Read      int
	Malformed int
	Invalid   int
	Duplicate int
	Inserted  int
	Skipped   int
	Duration  time.Duration
}

// Pipeline orchestrates the recipe import: read, transform, dedup, load.
type Pipeline struct {
	log   *slog.Logger
	store RecipeStore
	cfg   Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, store RecipeStore, cfg Config) *Pipeline {
	return &Pipeline{log: log, store: store, cfg: cfg}
}

// Run executes the import. Invalid and duplicate records are counted and
// skipped; only infrastructure failures (file access, database) abort
// the run.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	if p.cfg.RecipesPath == "" {
		return Result{}, fmt.Errorf("recipes path not configured")
	}

	raws, stats, err := ReadRecipes(p.cfg.RecipesPath)
	if err != nil {
		return Result{}, fmt.Errorf("read recipes: %w", err)
	}
	p.log.Info("dump parsed",
		slog.Int("recipes", len(raws)),
		slog.Int("total_lines", stats.TotalLines),
		slog.Int("malformed_lines", stats.MalformedLines),
	)

	result := Result{Read: len(raws), Malformed: stats.MalformedLines}

	// Transform every record first; validation failures are logged and
	// counted, never fatal.
	recipes := make([]domain.Recipe, 0, len(raws))
	for _, raw := range raws {
		r, err := Transform(raw, p.cfg.SourceSlug)
		if err != nil {
			result.Invalid++
			p.log.Debug("record rejected",
				slog.String("title", raw.Title),
				slog.String("error", err.Error()),
			)
			continue
		}
		recipes = append(recipes, r)
	}

	recipes, dups, err := p.dedup(ctx, recipes)
	if err != nil {
		return result, fmt.Errorf("dedup: %w", err)
	}
	result.Duplicate = dups

	if p.cfg.DryRun {
		result.Skipped = len(recipes)
		result.Duration = time.Since(start)
		p.log.Info("dry run, nothing inserted", slog.Int("would_insert", len(recipes)))
		return result, nil
	}

	inserted, err := p.load(ctx, recipes)
	result.Inserted = inserted
	result.Duration = time.Since(start)
	if err != nil {
		return result, err
	}

	p.log.Info("import completed",
		slog.Int("read", result.Read),
		slog.Int("invalid", result.Invalid),
		slog.Int("duplicate", result.Duplicate),
		slog.Int("inserted", result.Inserted),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

// dedup drops recipes whose normalized title is already stored, or appears
// earlier in the same batch.
func (p *Pipeline) dedup(ctx context.Context, recipes []domain.Recipe) ([]domain.Recipe, int, error) {
	if len(recipes) == 0 {
		return recipes, 0, nil
	}

	titles := make([]string, len(recipes))
	for i, r := range recipes {
		titles[i] = r.Title
	}

	existing := make(map[string]bool, len(titles))
	for i := 0; i < len(titles); i += p.batchSize() {
		end := min(i+p.batchSize(), len(titles))
		batch, err := p.store.ExistingTitles(ctx, titles[i:end])
		if err != nil {
			return nil, 0, err
		}
		for t := range batch {
			existing[t] = true
		}
	}

	kept := recipes[:0]
	dups := 0
	for _, r := range recipes {
		key := domain.NormalizeText(r.Title)
		if existing[key] {
			dups++
			continue
		}
		existing[key] = true
		kept = append(kept, r)
	}
	return kept, dups, nil
}

// load inserts recipes and their child rows in parent→child order, inside
// one transaction so a failed import leaves nothing behind.
func (p *Pipeline) load(ctx context.Context, recipes []domain.Recipe) (int, error) {
	var (
		allIngredients  []domain.RecipeIngredient
		allInstructions []domain.RecipeInstruction
		allTags         []domain.RecipeTag
	)
	for _, r := range recipes {
		ings, inss, tags := flatten(r)
		allIngredients = append(allIngredients, ings...)
		allInstructions = append(allInstructions, inss...)
		allTags = append(allTags, tags...)
	}

	var inserted int
	err := p.store.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := batchProcess(recipes, p.batchSize(), func(batch []domain.Recipe) (int, error) {
			return p.store.BulkInsertRecipes(txCtx, batch)
		})
		if err != nil {
			return fmt.Errorf("insert recipes: %w", err)
		}
		inserted = n

		if _, err := batchProcess(allIngredients, p.batchSize(), func(batch []domain.RecipeIngredient) (int, error) {
			return p.store.BulkInsertIngredients(txCtx, batch)
		}); err != nil {
			return fmt.Errorf("insert ingredients: %w", err)
		}

		if _, err := batchProcess(allInstructions, p.batchSize(), func(batch []domain.RecipeInstruction) (int, error) {
			return p.store.BulkInsertInstructions(txCtx, batch)
		}); err != nil {
			return fmt.Errorf("insert instructions: %w", err)
		}

		if _, err := batchProcess(allTags, p.batchSize(), func(batch []domain.RecipeTag) (int, error) {
			return p.store.BulkInsertTags(txCtx, batch)
		}); err != nil {
			return fmt.Errorf("insert tags: %w", err)
		}

		return nil
	})
	if err != nil {
		return inserted, err
	}

	return inserted, nil
}

func (p *Pipeline) batchSize() int {
	if p.cfg.BatchSize <= 0 {
		return 500
	}
	return p.cfg.BatchSize
}

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
