// Package ingredient turns free-text ingredient lines ("1 c. firmly packed
// brown sugar") into structured values: quantity, canonical unit, cleaned
// name, category, and an optional flag. Parsing is best-effort and never
// fails; degenerate input degrades to a sentinel name with no quantity.
package ingredient

import (
	"strings"

	"github.com/forkful/mealplan-backend/internal/domain"
	"github.com/forkful/mealplan-backend/internal/parse/lexicon"
)

// Parse resolves one raw ingredient line. Quantity and unit are extracted
// independently: a line may carry either, both, or neither. The name is
// whatever remains after removing the quantity and unit tokens; when
// nothing usable remains the sentinel name is used.
func Parse(raw string) domain.ParsedIngredient {
	text := strings.TrimSpace(raw)
	if text == "" {
		return domain.ParsedIngredient{
			Name:     domain.UnknownIngredientName,
			Category: domain.CategoryOther,
		}
	}

	out := domain.ParsedIngredient{
		IsOptional: isOptional(text),
	}

	rest := text
	if qty, after, ok := extractQuantity(text); ok {
		out.Quantity = &qty
		rest = after
	}

	name := rest
	if unit, start, end, ok := findUnit(rest); ok {
		out.Unit = &unit
		name = rest[:start] + " " + rest[end:]
	}

	out.Name = cleanName(name)
	out.Category = Classify(out.Name)
	return out
}

// isOptional reports whether the line carries an optionality marker
// anywhere in its text.
func isOptional(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range lexicon.OptionalMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// cleanName collapses whitespace, strips a leading "of" left behind by
// unit removal ("2 cups of flour"), and falls back to the sentinel when
// nothing remains.
func cleanName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, " ,.-")
	if lower := strings.ToLower(s); strings.HasPrefix(lower, "of ") {
		s = strings.TrimSpace(s[3:])
	}
	if s == "" {
		return domain.UnknownIngredientName
	}
	return s
}
