// Package etl orchestrates the recipe import pipeline: reading raw dump
// records, transforming them into structured recipes, and bulk-loading
// them into the relational schema.
package etl

import (
	"context"

	"github.com/forkful/mealplan-backend/internal/domain"
)

// RecipeStore defines the batch repository contract consumed by the
// import pipeline. All methods use only domain types — no adapter imports.
// Implemented by recipe.Repo.
type RecipeStore interface {
	// Batch inserts — ON CONFLICT DO NOTHING.
	BulkInsertRecipes(ctx context.Context, recipes []domain.Recipe) (int, error)
	BulkInsertIngredients(ctx context.Context, rows []domain.RecipeIngredient) (int, error)
	BulkInsertInstructions(ctx context.Context, rows []domain.RecipeInstruction) (int, error)
	BulkInsertTags(ctx context.Context, rows []domain.RecipeTag) (int, error)

	// ExistingTitles reports which of the given titles are already stored,
	// keyed by normalized title.
	ExistingTitles(ctx context.Context, titles []string) (map[string]bool, error)

	// RunInTx executes fn within a database transaction; store methods
	// called through the returned context run on that transaction.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
