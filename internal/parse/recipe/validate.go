package recipe

import (
	"strings"
	"unicode/utf8"

	"github.com/forkful/mealplan-backend/internal/domain"
)

// maxTitleLength is the longest accepted recipe title, in characters.
const maxTitleLength = 100

// Validate checks a raw record against the import rules. Every rule is
// evaluated; the returned error lists all failures, not just the first.
// A nil return means the record is importable.
func Validate(r domain.RawRecipe) *domain.ValidationError {
	var errs []domain.FieldError

	title := strings.TrimSpace(r.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "is required"})
	} else if utf8.RuneCountInString(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{
			Field:   "title",
			Message: "must be 100 characters or fewer",
		})
	}

	if countNonEmpty(r.Ingredients) == 0 {
		errs = append(errs, domain.FieldError{Field: "ingredients", Message: "at least one is required"})
	}

	if countNonEmpty(r.Directions) == 0 {
		errs = append(errs, domain.FieldError{Field: "directions", Message: "at least one is required"})
	}

	if len(errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(errs)
}

// Clean returns a normalized copy of the record: fields trimmed, list
// elements trimmed with empties dropped, nil slices replaced by empty
// ones. The input is never mutated.
func Clean(r domain.RawRecipe) domain.RawRecipe {
	out := r
	out.Title = strings.TrimSpace(r.Title)
	out.Description = strings.TrimSpace(r.Description)
	out.Source = strings.TrimSpace(r.Source)
	out.ServingSize = strings.TrimSpace(r.ServingSize)
	out.Ingredients = cleanList(r.Ingredients)
	out.Directions = cleanList(r.Directions)
	return out
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func countNonEmpty(list []string) int {
	n := 0
	for _, s := range list {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}
