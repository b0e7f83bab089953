package recipe

import (
	"github.com/forkful/mealplan-backend/internal/domain"
	"github.com/forkful/mealplan-backend/internal/parse/instruction"
)

// fallback estimate floors, in minutes
const (
	minFallbackPrep = 5
	minFallbackCook = 10
)

// EstimateCookingTimes derives whole-recipe prep and cook times from the
// direction texts. When any step names a duration, the smallest nonzero
// value per field wins. When no step names any duration at all, both
// fields fall back to step-count heuristics: prep max(5, 2n) and cook
// max(10, 3n) for n steps.
func EstimateCookingTimes(directions []string) domain.CookingTimes {
	var prep, cook int
	for i, text := range directions {
		parsed := instruction.Parse(i+1, text)
		if parsed.PrepMinutes != nil && *parsed.PrepMinutes > 0 {
			if prep == 0 || *parsed.PrepMinutes < prep {
				prep = *parsed.PrepMinutes
			}
		}
		if parsed.CookMinutes != nil && *parsed.CookMinutes > 0 {
			if cook == 0 || *parsed.CookMinutes < cook {
				cook = *parsed.CookMinutes
			}
		}
	}

	if prep == 0 && cook == 0 {
		n := len(directions)
		prep = maxInt(minFallbackPrep, 2*n)
		cook = maxInt(minFallbackCook, 3*n)
	}

	return domain.CookingTimes{PrepMinutes: prep, CookMinutes: cook}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
