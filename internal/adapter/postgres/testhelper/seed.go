package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/forkful/mealplan-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedRecipe inserts a minimal recipe row with a unique title.
// Returns the filled domain.Recipe (without children).
func SeedRecipe(t *testing.T, pool *pgxpool.Pool) domain.Recipe {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	r := domain.Recipe{
		ID:          uuid.New(),
		Title:       "Test Recipe " + suffix,
		Difficulty:  domain.DifficultyEasy,
		PrepMinutes: 5,
		CookMinutes: 10,
		Source:      "testhelper",
		CreatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO recipes (id, title, title_normalized, difficulty, prep_minutes, cook_minutes, source, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.ID, r.Title, domain.NormalizeText(r.Title), string(r.Difficulty),
		r.PrepMinutes, r.CookMinutes, r.Source, r.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipe insert: %v", err)
	}

	return r
}
