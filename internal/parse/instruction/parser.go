// Package instruction extracts timing and temperature data from free-text
// recipe directions ("Bake for 30 minutes at 350°F"). Durations are routed
// to prep or cook time by the verbs surrounding the mention; temperatures
// are normalized to Fahrenheit.
package instruction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/forkful/mealplan-backend/internal/domain"
	"github.com/forkful/mealplan-backend/internal/parse/lexicon"
)

// timeRule extracts a duration mention. Rules are tried in declaration
// order and every rule scans the whole text; a range ("20-25 minutes")
// must be recognized before the single-number rule sees its first bound.
type timeRule struct {
	re *regexp.Regexp
	// value index and unit index into the submatch groups
	valIdx, unitIdx int
}

var timeRules = []timeRule{
	// Range: "20-25 minutes", "1 to 2 hours". The lower bound is used.
	{
		re:     regexp.MustCompile(`(?i)(\d+)\s*(?:-|–|—|to)\s*\d+\s*(min(?:ute)?s?|h(?:ou)?rs?)\b`),
		valIdx: 1, unitIdx: 2,
	},
	// Single number: "30 minutes", "2 hrs".
	{
		re:     regexp.MustCompile(`(?i)(\d+)\s*(min(?:ute)?s?|h(?:ou)?rs?)\b`),
		valIdx: 1, unitIdx: 2,
	},
	// Preposition-led: "for about 30 minutes", "around an hour" never
	// carries a digit so it is out of scope; only numeric forms count.
	{
		re:     regexp.MustCompile(`(?i)(?:for|about|approximately|around)\s+(?:about\s+|approximately\s+)?(\d+)\s*(min(?:ute)?s?|h(?:ou)?rs?)\b`),
		valIdx: 1, unitIdx: 2,
	},
}

// tempRule extracts a temperature mention. Patterns are ordered; the
// first match wins. celsius values are converted to Fahrenheit.
type tempRule struct {
	re      *regexp.Regexp
	celsius bool
}

var tempRules = []tempRule{
	// "350°F", "350 F", "350F"
	{re: regexp.MustCompile(`(\d{2,3})\s*°?\s*[Ff]\b`)},
	// "180°C", "180 C"
	{re: regexp.MustCompile(`(\d{2,3})\s*°?\s*[Cc]\b`), celsius: true},
	// "180 degrees Celsius" must be checked before the generic worded
	// form below, which assumes Fahrenheit when the scale is omitted.
	{re: regexp.MustCompile(`(?i)(\d{2,3})\s*degrees?\s*(?:celsius|c)\b`), celsius: true},
	// "350 degrees Fahrenheit", "350 degrees F", "350 degrees"
	{re: regexp.MustCompile(`(?i)(\d{2,3})\s*degrees?(?:\s*(?:fahrenheit|f))?\b`)},
}

// contextWindow is how many characters around a time mention are examined
// for prep/cook verbs.
const contextWindow = 20

// Parse analyzes one instruction step. Each time field is set at most
// once: the first prep-flavored duration wins for prep, the first
// cook-flavored duration wins for cook. A duration with no surrounding
// cue defaults to cook time, but only when neither field has been set.
func Parse(stepNumber int, text string) domain.ParsedInstruction {
	out := domain.ParsedInstruction{
		StepNumber: stepNumber,
		Text:       strings.TrimSpace(text),
	}

	lower := strings.ToLower(out.Text)
	for _, rule := range timeRules {
		for _, g := range rule.re.FindAllStringSubmatchIndex(lower, -1) {
			val, _ := strconv.Atoi(lower[g[2*rule.valIdx]:g[2*rule.valIdx+1]])
			unit := lower[g[2*rule.unitIdx]:g[2*rule.unitIdx+1]]
			if strings.HasPrefix(unit, "h") {
				val *= 60
			}

			window := contextAround(lower, g[0], g[1])
			switch {
			case containsAny(window, lexicon.PrepCues):
				if out.PrepMinutes == nil {
					v := val
					out.PrepMinutes = &v
				}
			case containsAny(window, lexicon.CookCues):
				if out.CookMinutes == nil {
					v := val
					out.CookMinutes = &v
				}
			default:
				if out.PrepMinutes == nil && out.CookMinutes == nil {
					v := val
					out.CookMinutes = &v
				}
			}
		}
		if out.PrepMinutes != nil && out.CookMinutes != nil {
			break
		}
	}

	out.TemperatureF = extractTemperature(out.Text)
	return out
}

// extractTemperature finds the first temperature mention and returns it in
// Fahrenheit, or nil when the step names no temperature.
func extractTemperature(text string) *int {
	for _, rule := range tempRules {
		g := rule.re.FindStringSubmatch(text)
		if g == nil {
			continue
		}
		v, err := strconv.Atoi(g[1])
		if err != nil {
			continue
		}
		if rule.celsius {
			v = celsiusToFahrenheit(v)
		}
		return &v
	}
	return nil
}

// celsiusToFahrenheit converts and rounds to the nearest whole degree.
func celsiusToFahrenheit(c int) int {
	f := float64(c)*9.0/5.0 + 32.0
	return int(f + 0.5)
}

func contextAround(s string, start, end int) string {
	lo := start - contextWindow
	if lo < 0 {
		lo = 0
	}
	hi := end + contextWindow
	if hi > len(s) {
		hi = len(s)
	}
	return s[lo:hi]
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
