package recipe_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postgres "github.com/forkful/mealplan-backend/internal/adapter/postgres"
	reciperepo "github.com/forkful/mealplan-backend/internal/adapter/postgres/recipe"
	"github.com/forkful/mealplan-backend/internal/adapter/postgres/testhelper"
	"github.com/forkful/mealplan-backend/internal/domain"
)

func newRepo(t *testing.T) *reciperepo.Repo {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	pool := testhelper.SetupTestDB(t)
	return reciperepo.New(pool, postgres.NewTxManager(pool))
}

func sampleRecipe(title string) domain.Recipe {
	qty := 2.0
	unit := "cup"
	cook := 30
	return domain.Recipe{
		ID:          uuid.New(),
		Title:       title,
		Description: "test description",
		Ingredients: []domain.ParsedIngredient{
			{Name: "flour", Quantity: &qty, Unit: &unit, Category: domain.CategoryGrain, SortOrder: 1},
			{Name: "salt to taste", Category: domain.CategorySpice, IsOptional: true, SortOrder: 2},
		},
		Instructions: []domain.ParsedInstruction{
			{StepNumber: 1, Text: "Mix everything."},
			{StepNumber: 2, Text: "Bake for 30 minutes.", CookMinutes: &cook},
		},
		Difficulty:  domain.DifficultyEasy,
		Tags:        []domain.DietaryTag{domain.TagVegetarian},
		PrepMinutes: 5,
		CookMinutes: 30,
		Source:      "test",
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
}

func flatten(r domain.Recipe) ([]domain.RecipeIngredient, []domain.RecipeInstruction, []domain.RecipeTag) {
	ings := make([]domain.RecipeIngredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ings[i] = domain.RecipeIngredient{ID: uuid.New(), RecipeID: r.ID, ParsedIngredient: ing}
	}
	inss := make([]domain.RecipeInstruction, len(r.Instructions))
	for i, ins := range r.Instructions {
		inss[i] = domain.RecipeInstruction{ID: uuid.New(), RecipeID: r.ID, ParsedInstruction: ins}
	}
	tags := make([]domain.RecipeTag, len(r.Tags))
	for i, tag := range r.Tags {
		tags[i] = domain.RecipeTag{RecipeID: r.ID, Tag: tag}
	}
	return ings, inss, tags
}

func TestBulkInsertRecipes_FullTree(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	r := sampleRecipe("Full Tree " + uuid.NewString()[:8])
	ings, inss, tags := flatten(r)

	n, err := repo.BulkInsertRecipes(ctx, []domain.Recipe{r})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = repo.BulkInsertIngredients(ctx, ings)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.BulkInsertInstructions(ctx, inss)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.BulkInsertTags(ctx, tags)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBulkInsertRecipes_ConflictSkips(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	title := "Duplicate " + uuid.NewString()[:8]
	first := sampleRecipe(title)
	second := sampleRecipe(title) // same title, different ID

	n, err := repo.BulkInsertRecipes(ctx, []domain.Recipe{first})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = repo.BulkInsertRecipes(ctx, []domain.Recipe{second})
	require.NoError(t, err)
	assert.Zero(t, n, "conflicting title must be skipped, not inserted")
}

func TestExistingTitles(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	title := "Lookup " + uuid.NewString()[:8]
	r := sampleRecipe(title)
	_, err := repo.BulkInsertRecipes(ctx, []domain.Recipe{r})
	require.NoError(t, err)

	// Lookup is case- and whitespace-insensitive.
	got, err := repo.ExistingTitles(ctx, []string{"  " + title + " ", "No Such Recipe"})
	require.NoError(t, err)

	assert.True(t, got[domain.NormalizeText(title)])
	assert.False(t, got[domain.NormalizeText("No Such Recipe")])
	assert.Len(t, got, 1)
}

func TestExistingTitles_Empty(t *testing.T) {
	repo := newRepo(t)

	got, err := repo.ExistingTitles(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	r := sampleRecipe("Rollback " + uuid.NewString()[:8])

	sentinel := assert.AnError
	err := repo.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := repo.BulkInsertRecipes(txCtx, []domain.Recipe{r})
		require.NoError(t, err)
		require.Equal(t, 1, n)
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	got, err := repo.ExistingTitles(ctx, []string{r.Title})
	require.NoError(t, err)
	assert.Empty(t, got, "rolled-back insert must not be visible")
}
