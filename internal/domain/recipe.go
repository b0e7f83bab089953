package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// UnknownIngredientName is the sentinel used when an ingredient line
// yields no usable name after parsing.
const UnknownIngredientName = "Unknown ingredient"

// RawRecipe is a recipe record as it arrives from an external dump:
// loosely typed, untrimmed, possibly missing fields.
type RawRecipe struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Ingredients LooseStrings `json:"ingredients"`
	Directions  LooseStrings `json:"directions"`
	Source      string       `json:"source"`
	ServingSize string       `json:"serving_size"`
	PrepMinutes int          `json:"prep_minutes"`
	CookMinutes int          `json:"cook_minutes"`
}

// LooseStrings decodes a JSON field that should be a string array but may
// arrive as a single string, null, or something else entirely. Anything
// that is not an array degrades to the closest sane value instead of
// failing the whole record.
type LooseStrings []string

func (l *LooseStrings) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = nil
		} else {
			*l = []string{single}
		}
		return nil
	}

	// Not an array and not a string — treat as absent.
	*l = nil
	return nil
}

// ParsedIngredient is one ingredient line resolved to structure.
// Quantity and Unit are independent: either, both, or neither may be set.
// Name is never empty; degenerate input falls back to UnknownIngredientName.
type ParsedIngredient struct {
	Name       string
	Quantity   *float64
	Unit       *string
	Category   IngredientCategory
	IsOptional bool
	SortOrder  int
}

// ParsedInstruction is one instruction step resolved to structure.
// PrepMinutes and CookMinutes each hold at most one extracted duration;
// TemperatureF is normalized to Fahrenheit.
type ParsedInstruction struct {
	StepNumber   int
	Text         string
	PrepMinutes  *int
	CookMinutes  *int
	TemperatureF *int
}

// CookingTimes holds whole-recipe time estimates in minutes.
type CookingTimes struct {
	PrepMinutes int
	CookMinutes int
}

// Recipe is a fully parsed record ready for insertion into the
// relational schema (recipes / recipe_ingredients / recipe_instructions /
// recipe_tags).
type Recipe struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Ingredients  []ParsedIngredient
	Instructions []ParsedInstruction
	Difficulty   Difficulty
	Tags         []DietaryTag
	PrepMinutes  int
	CookMinutes  int
	Source       string
	CreatedAt    time.Time
}

// RecipeIngredient is a flat row for bulk insertion into recipe_ingredients.
type RecipeIngredient struct {
	ID       uuid.UUID
	RecipeID uuid.UUID
	ParsedIngredient
}

// RecipeInstruction is a flat row for bulk insertion into recipe_instructions.
type RecipeInstruction struct {
	ID       uuid.UUID
	RecipeID uuid.UUID
	ParsedInstruction
}

// RecipeTag is a flat row for bulk insertion into recipe_tags.
type RecipeTag struct {
	RecipeID uuid.UUID
	Tag      DietaryTag
}
