package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool := SetupTestDB(t)

	r := SeedRecipe(t, pool)

	// Verify the recipe exists in DB via SELECT.
	var title string
	err := pool.QueryRow(
		context.Background(),
		`SELECT title FROM recipes WHERE id = $1`,
		r.ID,
	).Scan(&title)
	if err != nil {
		t.Fatalf("expected recipe in DB, got error: %v", err)
	}

	if title != r.Title {
		t.Fatalf("expected title %q, got %q", r.Title, title)
	}
}
