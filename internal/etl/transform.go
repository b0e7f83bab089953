package etl

import (
	"time"

	"github.com/google/uuid"

	"github.com/forkful/mealplan-backend/internal/domain"
	"github.com/forkful/mealplan-backend/internal/parse/ingredient"
	"github.com/forkful/mealplan-backend/internal/parse/instruction"
	"github.com/forkful/mealplan-backend/internal/parse/recipe"
)

// Transform validates a raw record and resolves it into a structured
// recipe: parsed ingredients and instructions, derived difficulty and
// dietary tags, and time estimates. A validation failure returns the
// accumulated field errors; nothing else can fail.
func Transform(raw domain.RawRecipe, source string) (domain.Recipe, error) {
	if err := recipe.Validate(raw); err != nil {
		return domain.Recipe{}, err
	}
	clean := recipe.Clean(raw)

	out := domain.Recipe{
		ID:          uuid.New(),
		Title:       clean.Title,
		Description: clean.Description,
		Source:      source,
		CreatedAt:   time.Now(),
	}
	if clean.Source != "" {
		out.Source = clean.Source
	}

	out.Ingredients = make([]domain.ParsedIngredient, len(clean.Ingredients))
	names := make([]string, len(clean.Ingredients))
	for i, line := range clean.Ingredients {
		parsed := ingredient.Parse(line)
		parsed.SortOrder = i + 1
		out.Ingredients[i] = parsed
		names[i] = parsed.Name
	}

	out.Instructions = make([]domain.ParsedInstruction, len(clean.Directions))
	for i, text := range clean.Directions {
		out.Instructions[i] = instruction.Parse(i+1, text)
	}

	out.Difficulty = recipe.AnalyzeDifficulty(clean.Ingredients, clean.Directions)
	out.Tags = recipe.DietaryTags(names)

	// Explicit timings from the dump win over estimation.
	if clean.PrepMinutes > 0 || clean.CookMinutes > 0 {
		out.PrepMinutes = clean.PrepMinutes
		out.CookMinutes = clean.CookMinutes
	} else {
		times := recipe.EstimateCookingTimes(clean.Directions)
		out.PrepMinutes = times.PrepMinutes
		out.CookMinutes = times.CookMinutes
	}

	return out, nil
}

// flatten expands a recipe into its child rows for parent→child insertion.
func flatten(r domain.Recipe) ([]domain.RecipeIngredient, []domain.RecipeInstruction, []domain.RecipeTag) {
	ingredients := make([]domain.RecipeIngredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = domain.RecipeIngredient{
			ID:               uuid.New(),
			RecipeID:         r.ID,
			ParsedIngredient: ing,
		}
	}

	instructions := make([]domain.RecipeInstruction, len(r.Instructions))
	for i, ins := range r.Instructions {
		instructions[i] = domain.RecipeInstruction{
			ID:                uuid.New(),
			RecipeID:          r.ID,
			ParsedInstruction: ins,
		}
	}

	tags := make([]domain.RecipeTag, len(r.Tags))
	for i, tag := range r.Tags {
		tags[i] = domain.RecipeTag{RecipeID: r.ID, Tag: tag}
	}

	return ingredients, instructions, tags
}
