package ingredient

import (
	"regexp"
	"strings"
)

// unitFamily is an ordered group of unit patterns. Families are tried in
// declaration order and within a family alternation is leftmost-first, so
// the sequence below encodes recognition priority: imperial volume, then
// metric volume, then weight, length, count words, size words, and
// temperature words.
type unitFamily struct {
	name string
	re   *regexp.Regexp
}

var unitFamilies = []unitFamily{
	{
		name: "imperial volume",
		re: regexp.MustCompile(`(?i)\b(cups?|c|tablespoons?|tbsp|tbs|teaspoons?|tsp|fluid\s+ounces?|fl\s*oz|pints?|pt|quarts?|qt|gallons?|gal)\.?(\s|$)`),
	},
	{
		name: "metric volume",
		re: regexp.MustCompile(`(?i)\b(milliliters?|millilitres?|ml|centiliters?|centilitres?|cl|deciliters?|decilitres?|dl|liters?|litres?|l)\.?(\s|$)`),
	},
	{
		name: "weight",
		re: regexp.MustCompile(`(?i)\b(pounds?|lbs?|ounces?|oz|kilograms?|kilos?|kg|grams?|g|milligrams?|mg)\.?(\s|$)`),
	},
	{
		// Short length tokens (in, ft, cm, m) only count when glued to a
		// digit; otherwise "in" the preposition matches everything.
		name: "length",
		re: regexp.MustCompile(`(?i)(?:\b(inch(?:es)?|feet|foot|centimeters?|centimetres?|meters?|metres?)\.?(\s|$)|\d\s*(in|ft|cm|m)\.?(\s|$))`),
	},
	{
		name: "count",
		re: regexp.MustCompile(`(?i)\b(pieces?|slices?|cloves?|heads?|bunch(?:es)?|cans?|packages?|pkgs?|bags?|box(?:es)?|bottles?|jars?|tubes?|sticks?|sprigs?|stalks?|ears?|fillets?|strips?|pinch(?:es)?|dash(?:es)?|drops?|handfuls?|dozen)\.?(\s|$)`),
	},
	{
		name: "size",
		re: regexp.MustCompile(`(?i)\b(extra[\s-]large|small|medium|large|xl|jumbo|mini)\b`),
	},
	{
		name: "temperature",
		re: regexp.MustCompile(`(?i)\b(degrees?|fahrenheit|celsius)\b`),
	},
}

// leadingToken matches a bare word (optionally dot-terminated) at the head
// of the string after the quantity, e.g. the "c." in "1 c. brown sugar".
var leadingToken = regexp.MustCompile(`^([a-zA-Z]+)\.?(\s|$)`)

// unitAliases maps every recognized spelling to its canonical singular form.
var unitAliases = map[string]string{
	// imperial volume
	"cup": "cup", "cups": "cup", "c": "cup",
	"tablespoon": "tablespoon", "tablespoons": "tablespoon",
	"tbsp": "tablespoon", "tbs": "tablespoon",
	"teaspoon": "teaspoon", "teaspoons": "teaspoon", "tsp": "teaspoon",
	"fluid ounce": "fluid ounce", "fluid ounces": "fluid ounce",
	"fl oz": "fluid ounce", "floz": "fluid ounce",
	"pint": "pint", "pints": "pint", "pt": "pint",
	"quart": "quart", "quarts": "quart", "qt": "quart",
	"gallon": "gallon", "gallons": "gallon", "gal": "gallon",

	// metric volume
	"milliliter": "milliliter", "milliliters": "milliliter",
	"millilitre": "milliliter", "millilitres": "milliliter", "ml": "milliliter",
	"centiliter": "centiliter", "centiliters": "centiliter",
	"centilitre": "centiliter", "centilitres": "centiliter", "cl": "centiliter",
	"deciliter": "deciliter", "deciliters": "deciliter",
	"decilitre": "deciliter", "decilitres": "deciliter", "dl": "deciliter",
	"liter": "liter", "liters": "liter",
	"litre": "liter", "litres": "liter", "l": "liter",

	// weight
	"pound": "pound", "pounds": "pound", "lb": "pound", "lbs": "pound",
	"ounce": "ounce", "ounces": "ounce", "oz": "ounce",
	"kilogram": "kilogram", "kilograms": "kilogram",
	"kilo": "kilogram", "kilos": "kilogram", "kg": "kilogram",
	"gram": "gram", "grams": "gram", "g": "gram",
	"milligram": "milligram", "milligrams": "milligram", "mg": "milligram",

	// length
	"inch": "inch", "inches": "inch", "in": "inch",
	"foot": "foot", "feet": "foot", "ft": "foot",
	"centimeter": "centimeter", "centimeters": "centimeter",
	"centimetre": "centimeter", "centimetres": "centimeter", "cm": "centimeter",
	"meter": "meter", "meters": "meter",
	"metre": "meter", "metres": "meter", "m": "meter",

	// count
	"piece": "piece", "pieces": "piece",
	"slice": "slice", "slices": "slice",
	"clove": "clove", "cloves": "clove",
	"head": "head", "heads": "head",
	"bunch": "bunch", "bunches": "bunch",
	"can": "can", "cans": "can",
	"package": "package", "packages": "package",
	"pkg": "package", "pkgs": "package",
	"bag": "bag", "bags": "bag",
	"box": "box", "boxes": "box",
	"bottle": "bottle", "bottles": "bottle",
	"jar": "jar", "jars": "jar",
	"tube": "tube", "tubes": "tube",
	"stick": "stick", "sticks": "stick",
	"sprig": "sprig", "sprigs": "sprig",
	"stalk": "stalk", "stalks": "stalk",
	"ear": "ear", "ears": "ear",
	"fillet": "fillet", "fillets": "fillet",
	"strip": "strip", "strips": "strip",
	"pinch": "pinch", "pinches": "pinch",
	"dash": "dash", "dashes": "dash",
	"drop": "drop", "drops": "drop",
	"handful": "handful", "handfuls": "handful",
	"dozen": "dozen",

	// size
	"small": "small", "medium": "medium", "large": "large",
	"extra large": "extra large", "extra-large": "extra large",
	"xl": "extra large", "jumbo": "jumbo", "mini": "mini",

	// temperature
	"degree": "degree", "degrees": "degree",
	"fahrenheit": "fahrenheit", "celsius": "celsius",
}

// NormalizeUnit maps a raw unit token to its canonical singular form:
// lowercased, trailing period stripped, inner whitespace collapsed.
// Unrecognized tokens pass through cleaned but otherwise unchanged.
func NormalizeUnit(raw string) string {
	u := strings.ToLower(strings.TrimSpace(raw))
	u = strings.TrimSuffix(u, ".")
	u = strings.Join(strings.Fields(u), " ")
	if canonical, ok := unitAliases[u]; ok {
		return canonical
	}
	return u
}

// findUnit locates the first unit mention in s. It returns the normalized
// unit and the span [start, end) of the raw match so the caller can excise
// it from the ingredient name. ok is false when no family matches.
func findUnit(s string) (unit string, start, end int, ok bool) {
	// A bare leading token right after the quantity is the most common
	// shape ("1 c. sugar", "2 lg eggs"); accept it when the alias table
	// knows it, before the broader family scan.
	if g := leadingToken.FindStringSubmatchIndex(s); g != nil {
		token := strings.ToLower(s[g[2]:g[3]])
		if canonical, known := unitAliases[token]; known {
			return canonical, g[2], trailingDot(s, g[3]), true
		}
	}

	for _, fam := range unitFamilies {
		g := fam.re.FindStringSubmatchIndex(s)
		if g == nil {
			continue
		}
		// The first non-empty capture group holds the unit token.
		var rawStart, rawEnd int
		found := false
		for i := 2; i < len(g); i += 2 {
			if g[i] >= 0 && strings.TrimSpace(s[g[i]:g[i+1]]) != "" {
				rawStart, rawEnd = g[i], g[i+1]
				found = true
				break
			}
		}
		if !found {
			continue
		}
		return NormalizeUnit(s[rawStart:rawEnd]), rawStart, trailingDot(s, rawEnd), true
	}
	return "", 0, 0, false
}

// trailingDot extends the excision span past an abbreviation period.
func trailingDot(s string, end int) int {
	if end < len(s) && s[end] == '.' {
		return end + 1
	}
	return end
}

// metricRatios converts canonical metric units to their imperial
// counterpart. Units outside this table pass through MetricToImperial
// unchanged.
var metricRatios = map[string]struct {
	unit  string
	ratio float64
}{
	"gram":       {"ounce", 0.035274},
	"kilogram":   {"pound", 2.20462},
	"milligram":  {"ounce", 0.000035274},
	"milliliter": {"cup", 0.00422675},
	"centiliter": {"cup", 0.0422675},
	"deciliter":  {"cup", 0.422675},
	"liter":      {"cup", 4.22675},
	"centimeter": {"inch", 0.393701},
	"meter":      {"foot", 3.28084},
}

// MetricToImperial converts a quantity in a metric unit to the imperial
// system. The unit is normalized first, so abbreviations ("g", "ml") work.
// Non-metric units are returned unchanged with the original quantity.
func MetricToImperial(quantity float64, unit string) (float64, string) {
	canonical := NormalizeUnit(unit)
	conv, ok := metricRatios[canonical]
	if !ok {
		return quantity, canonical
	}
	return quantity * conv.ratio, conv.unit
}
