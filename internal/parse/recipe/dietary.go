package recipe

import (
	"strings"

	"github.com/forkful/mealplan-backend/internal/domain"
	"github.com/forkful/mealplan-backend/internal/parse/lexicon"
)

// DietaryTags infers dietary labels from ingredient names. Detection is
// positive-by-default: a tag is granted unless a disqualifying ingredient
// is found, so an empty ingredient list earns every tag. Eggs count
// against vegan and dairy-free but not vegetarian.
func DietaryTags(ingredientNames []string) []domain.DietaryTag {
	joined := domain.NormalizeText(strings.Join(ingredientNames, " | "))

	hasMeat := containsMeat(joined)
	hasDairy := containsDairy(joined)
	hasGluten := containsGluten(joined)

	tags := make([]domain.DietaryTag, 0, 4)
	if !hasMeat {
		tags = append(tags, domain.TagVegetarian)
	}
	if !hasMeat && !hasDairy {
		tags = append(tags, domain.TagVegan)
	}
	if !hasGluten {
		tags = append(tags, domain.TagGlutenFree)
	}
	if !hasDairy {
		tags = append(tags, domain.TagDairyFree)
	}
	return tags
}

// containsMeat matches any protein_main keyword, or a protein_source
// keyword outside the non-meat exclusion set.
func containsMeat(joined string) bool {
	for _, kw := range lexicon.Keywords[domain.CategoryProteinMain] {
		if strings.Contains(joined, kw) {
			return true
		}
	}
	for _, kw := range lexicon.Keywords[domain.CategoryProteinSource] {
		if lexicon.NonMeatProteins[kw] {
			continue
		}
		if strings.Contains(joined, kw) {
			return true
		}
	}
	return false
}

// containsDairy matches the dairy keyword list plus egg, which disqualifies
// the same tags dairy does.
func containsDairy(joined string) bool {
	if strings.Contains(joined, "egg") {
		return true
	}
	for _, kw := range lexicon.Keywords[domain.CategoryDairy] {
		if strings.Contains(joined, kw) {
			return true
		}
	}
	return false
}

func containsGluten(joined string) bool {
	for kw := range lexicon.GlutenGrains {
		if strings.Contains(joined, kw) {
			return true
		}
	}
	return false
}
