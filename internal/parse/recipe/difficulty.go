// Package recipe implements whole-recipe analysis over parsed ingredient
// and instruction data: difficulty scoring, dietary tagging, cooking-time
// estimation, validation, and cleanup of raw records.
package recipe

import (
	"strings"

	"github.com/forkful/mealplan-backend/internal/domain"
	"github.com/forkful/mealplan-backend/internal/parse/lexicon"
)

// difficulty score thresholds
const (
	hardThreshold   = 5
	mediumThreshold = 2
)

// AnalyzeDifficulty scores a recipe by additive complexity signals:
// ingredient count, instruction count, total instruction length, and
// mentions of advanced techniques. Scores of hardThreshold and above are
// hard, mediumThreshold and above medium, everything else easy.
func AnalyzeDifficulty(ingredients []string, directions []string) domain.Difficulty {
	score := 0

	switch n := len(ingredients); {
	case n > 15:
		score += 2
	case n > 8:
		score++
	}

	switch n := len(directions); {
	case n > 8:
		score += 2
	case n > 4:
		score++
	}

	words := 0
	for _, d := range directions {
		words += len(strings.Fields(d))
	}
	switch {
	case words > 200:
		score += 2
	case words > 100:
		score++
	}

	joined := domain.NormalizeText(strings.Join(directions, " "))
	for _, technique := range lexicon.AdvancedTechniques {
		if strings.Contains(joined, technique) {
			score++
		}
	}

	switch {
	case score >= hardThreshold:
		return domain.DifficultyHard
	case score >= mediumThreshold:
		return domain.DifficultyMedium
	default:
		return domain.DifficultyEasy
	}
}
