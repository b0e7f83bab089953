// Package recipe implements the recipe catalog repository using PostgreSQL.
// It manages 4 tables (recipes + 3 child tables) as a single aggregate.
// The catalog is append-only for the importer: no Update/Delete operations
// are exposed.
package recipe

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/forkful/mealplan-backend/internal/adapter/postgres"
	"github.com/forkful/mealplan-backend/internal/domain"
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides recipe persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new recipe repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// RunInTx executes fn within a database transaction. Repository methods
// called through the returned context run on the transaction.
func (r *Repo) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.txm.RunInTx(ctx, fn)
}

// BulkInsertRecipes inserts recipes using pgx.Batch. Existing recipes
// (by title_normalized) are skipped via ON CONFLICT DO NOTHING.
// Returns the number of actually inserted rows.
func (r *Repo) BulkInsertRecipes(ctx context.Context, recipes []domain.Recipe) (int, error) {
	if len(recipes) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, rec := range recipes {
		batch.Queue(
			`INSERT INTO recipes (id, title, title_normalized, description, difficulty, prep_minutes, cook_minutes, source, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (title_normalized) DO NOTHING`,
			rec.ID, rec.Title, domain.NormalizeText(rec.Title),
			nilIfEmpty(rec.Description),
			string(rec.Difficulty),
			rec.PrepMinutes, rec.CookMinutes,
			nilIfEmpty(rec.Source),
			rec.CreatedAt,
		)
	}

	return r.sendBatchExec(ctx, batch, "recipe")
}

// BulkInsertIngredients inserts recipe_ingredients using pgx.Batch.
// Existing rows (by id) are skipped via ON CONFLICT DO NOTHING.
func (r *Repo) BulkInsertIngredients(ctx context.Context, rows []domain.RecipeIngredient) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, ing := range rows {
		batch.Queue(
			`INSERT INTO recipe_ingredients (id, recipe_id, name, quantity, unit, kind, is_optional, sort_order)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (id) DO NOTHING`,
			ing.ID, ing.RecipeID, ing.Name, ing.Quantity, ing.Unit,
			string(ing.Category), ing.IsOptional, ing.SortOrder,
		)
	}

	return r.sendBatchExec(ctx, batch, "recipe ingredient")
}

// BulkInsertInstructions inserts recipe_instructions using pgx.Batch.
// Existing rows (by id) are skipped via ON CONFLICT DO NOTHING.
func (r *Repo) BulkInsertInstructions(ctx context.Context, rows []domain.RecipeInstruction) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, ins := range rows {
		batch.Queue(
			`INSERT INTO recipe_instructions (id, recipe_id, step_number, body, prep_minutes, cook_minutes, temperature_f)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (id) DO NOTHING`,
			ins.ID, ins.RecipeID, ins.StepNumber, ins.Text,
			ins.PrepMinutes, ins.CookMinutes, ins.TemperatureF,
		)
	}

	return r.sendBatchExec(ctx, batch, "recipe instruction")
}

// BulkInsertTags inserts recipe_tags using pgx.Batch. Existing rows
// (by recipe + tag) are skipped via ON CONFLICT DO NOTHING.
func (r *Repo) BulkInsertTags(ctx context.Context, rows []domain.RecipeTag) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, tag := range rows {
		batch.Queue(
			`INSERT INTO recipe_tags (recipe_id, tag)
			 VALUES ($1, $2)
			 ON CONFLICT (recipe_id, tag) DO NOTHING`,
			tag.RecipeID, string(tag.Tag),
		)
	}

	return r.sendBatchExec(ctx, batch, "recipe tag")
}

// ExistingTitles reports which of the given titles are already stored.
// The result is keyed by normalized title.
func (r *Repo) ExistingTitles(ctx context.Context, titles []string) (map[string]bool, error) {
	out := make(map[string]bool, len(titles))
	if len(titles) == 0 {
		return out, nil
	}

	normalized := make([]string, len(titles))
	for i, t := range titles {
		normalized[i] = domain.NormalizeText(t)
	}

	query, args, err := psql.
		Select("title_normalized").
		From("recipes").
		Where(sq.Eq{"title_normalized": normalized}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build existing titles query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query existing titles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scan existing title: %w", err)
		}
		out[title] = true
	}
	return out, rows.Err()
}

// CountRecipes returns the total number of stored recipes.
func (r *Repo) CountRecipes(ctx context.Context) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From("recipes").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var n int
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return n, nil
}

// sendBatchExec sends the batch and sums affected rows across all queued
// statements. Rows skipped by ON CONFLICT DO NOTHING do not count.
func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch, entity string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, entity)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// nilIfEmpty stores empty strings as NULL.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
