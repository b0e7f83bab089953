package ingredient

import (
	"regexp"
	"strings"

	"github.com/forkful/mealplan-backend/internal/domain"
	"github.com/forkful/mealplan-backend/internal/parse/lexicon"
)

// fallbackPatterns holds the compiled tier-2 matchers, one slice per
// category, built once at package init from the lexicon keyword lists plus
// the hand-written generic cues. Keywords are bucketed by length so short
// tokens get strict word boundaries while long compound names can match
// loosely.
var fallbackPatterns map[domain.IngredientCategory][]*regexp.Regexp

func init() {
	fallbackPatterns = make(map[domain.IngredientCategory][]*regexp.Regexp, len(lexicon.FallbackOrder))
	for _, cat := range lexicon.FallbackOrder {
		var short, medium, long []string
		for _, kw := range lexicon.Keywords[cat] {
			escaped := regexp.QuoteMeta(kw)
			switch n := len(kw); {
			case n <= 4:
				short = append(short, escaped)
			case n <= 8:
				medium = append(medium, escaped)
			default:
				long = append(long, escaped)
			}
		}

		var pats []*regexp.Regexp
		if len(short) > 0 {
			pats = append(pats, regexp.MustCompile(`\b(?:`+strings.Join(short, "|")+`)\b`))
		}
		if len(medium) > 0 {
			pats = append(pats, regexp.MustCompile(`\b(?:`+strings.Join(medium, "|")+`)`))
		}
		if len(long) > 0 {
			pats = append(pats, regexp.MustCompile(strings.Join(long, "|")))
		}
		for _, cue := range lexicon.FallbackCues[cat] {
			pats = append(pats, regexp.MustCompile(`\b(?:`+cue+`)`))
		}
		fallbackPatterns[cat] = pats
	}
}

// Classify assigns a category to a cleaned ingredient name. Tier 1 is
// plain substring containment over the keyword lists in a fixed category
// order; tier 2 retries with the compiled boundary-aware patterns. Names
// that survive both tiers land in CategoryOther.
func Classify(name string) domain.IngredientCategory {
	n := domain.NormalizeText(name)
	if n == "" {
		return domain.CategoryOther
	}

	for _, cat := range lexicon.CategoryOrder {
		for _, kw := range lexicon.Keywords[cat] {
			if strings.Contains(n, kw) {
				return cat
			}
		}
	}

	for _, cat := range lexicon.FallbackOrder {
		for _, re := range fallbackPatterns[cat] {
			if re.MatchString(n) {
				return cat
			}
		}
	}

	return domain.CategoryOther
}
