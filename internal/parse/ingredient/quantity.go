package ingredient

import (
	"regexp"
	"strconv"
	"strings"
)

// quantityRule pairs a head-anchored pattern with its numeric evaluator.
// Rules are tried in order; the first match wins and later rules are not
// consulted, so the ordering is part of the contract (a simple fraction
// must be recognized before the integer rule eats its numerator).
type quantityRule struct {
	re   *regexp.Regexp
	eval func(groups []string) float64
}

var quantityRules = []quantityRule{
	// Simple fraction: "1/2 cup ..."
	{
		re: regexp.MustCompile(`^(\d+)\s*/\s*(\d+)`),
		eval: func(g []string) float64 {
			num, _ := strconv.ParseFloat(g[1], 64)
			den, _ := strconv.ParseFloat(g[2], 64)
			if den == 0 {
				return 0
			}
			return num / den
		},
	},
	// Mixed number: "1 1/2 cups ..."
	{
		re: regexp.MustCompile(`^(\d+)\s+(\d+)\s*/\s*(\d+)`),
		eval: func(g []string) float64 {
			whole, _ := strconv.ParseFloat(g[1], 64)
			num, _ := strconv.ParseFloat(g[2], 64)
			den, _ := strconv.ParseFloat(g[3], 64)
			if den == 0 {
				return whole
			}
			return whole + num/den
		},
	},
	// Decimal: "1.5 cups ..."
	{
		re: regexp.MustCompile(`^(\d+\.\d+)`),
		eval: func(g []string) float64 {
			v, _ := strconv.ParseFloat(g[1], 64)
			return v
		},
	},
	// Integer: "2 eggs", "500g ..."
	{
		re: regexp.MustCompile(`^(\d+)`),
		eval: func(g []string) float64 {
			v, _ := strconv.ParseFloat(g[1], 64)
			return v
		},
	},
	// Spelled-out quantity word: "two cups ...", "half a lemon"
	{
		re: regexp.MustCompile(`(?i)^(one|two|three|four|five|six|seven|eight|nine|ten|half|quarter|third)\b`),
		eval: func(g []string) float64 {
			return quantityWords[strings.ToLower(g[1])]
		},
	},
}

var quantityWords = map[string]float64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"half": 0.5, "quarter": 0.25, "third": 1.0 / 3.0,
}

// extractQuantity matches a quantity token at the head of s. On success it
// returns the numeric value and the remainder of the string after the
// token. When no rule matches, ok is false and the caller should search
// the entire original string for a unit instead.
func extractQuantity(s string) (value float64, rest string, ok bool) {
	for _, rule := range quantityRules {
		groups := rule.re.FindStringSubmatch(s)
		if groups == nil {
			continue
		}
		return rule.eval(groups), strings.TrimSpace(s[len(groups[0]):]), true
	}
	return 0, s, false
}
