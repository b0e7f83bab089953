// Package lexicon holds the immutable keyword configuration used by the
// ingredient classifier, dietary tagging, and instruction analysis.
// Everything here is constant data; nothing is mutated after init.
package lexicon

import "github.com/forkful/mealplan-backend/internal/domain"

// CategoryOrder is the tier-1 classification check order. The first
// category whose keyword list matches wins, so this order doubles as the
// tie-break between overlapping lists (e.g. spice vs condiments).
var CategoryOrder = []domain.IngredientCategory{
	domain.CategoryProteinMain,
	domain.CategoryProteinSource,
	domain.CategoryVegetable,
	domain.CategoryGrain,
	domain.CategoryDairy,
	domain.CategoryFat,
	domain.CategorySpice,
	domain.CategoryFruit,
	domain.CategoryNutsSeeds,
	domain.CategoryCondiments,
}

// FallbackOrder is the tier-2 pattern-matching order. It deliberately
// differs from CategoryOrder (fruit is checked before grain, matching the
// original classifier's fallback table).
var FallbackOrder = []domain.IngredientCategory{
	domain.CategoryProteinMain,
	domain.CategoryProteinSource,
	domain.CategoryVegetable,
	domain.CategoryFruit,
	domain.CategoryGrain,
	domain.CategoryDairy,
	domain.CategoryFat,
	domain.CategorySpice,
	domain.CategoryNutsSeeds,
	domain.CategoryCondiments,
}

// Keywords maps each category to its keyword list. Matching is plain
// case-insensitive substring containment over the cleaned ingredient name.
var Keywords = map[domain.IngredientCategory][]string{
	domain.CategoryProteinMain: {
		"beef", "chicken", "pork", "lamb", "turkey", "duck", "veal",
		"venison", "bacon", "ham", "sausage", "salami", "pepperoni",
		"prosciutto", "chorizo", "pastrami", "meatball", "ground meat",
		"steak", "brisket", "ribs", "liver", "fish", "salmon", "tuna",
		"cod", "halibut", "trout", "tilapia", "anchovy", "anchovies",
		"sardine", "shrimp", "prawn", "crab", "lobster", "scallop",
		"clam", "mussel", "oyster", "squid", "octopus", "calamari",
	},
	domain.CategoryProteinSource: {
		"egg", "eggs", "tofu", "tempeh", "seitan", "bean", "beans",
		"lentil", "chickpea", "garbanzo", "edamame", "split pea",
		"black-eyed pea", "protein powder",
	},
	domain.CategoryVegetable: {
		"onion", "garlic", "tomato", "potato", "carrot", "celery",
		"broccoli", "cauliflower", "spinach", "kale", "lettuce",
		"cabbage", "zucchini", "squash", "cucumber", "bell pepper",
		"jalapeno", "jalapeño", "mushroom", "eggplant", "asparagus",
		"green bean", "peas", "snow pea", "snap pea", "corn", "beet",
		"radish", "turnip", "parsnip", "leek", "shallot", "scallion",
		"green onion", "chard", "arugula", "brussels sprout",
		"artichoke", "okra", "pumpkin", "fennel", "bok choy", "watercress",
	},
	domain.CategoryGrain: {
		"flour", "bread", "rice", "pasta", "noodle", "oats", "oatmeal",
		"barley", "wheat", "rye", "quinoa", "couscous", "tortilla",
		"cereal", "cracker", "cornmeal", "semolina", "bulgur", "farro",
		"millet", "spaghetti", "macaroni", "penne", "lasagna",
		"breadcrumb", "pita", "bagel", "granola", "polenta", "grits",
	},
	domain.CategoryDairy: {
		"milk", "cream", "cheese", "butter", "yogurt", "buttermilk",
		"sour cream", "cream cheese", "mozzarella", "cheddar",
		"parmesan", "ricotta", "feta", "brie", "gouda", "provolone",
		"mascarpone", "half-and-half", "ice cream", "ghee", "custard",
		"whey",
	},
	domain.CategoryFat: {
		"oil", "olive oil", "vegetable oil", "canola oil", "coconut oil",
		"sesame oil", "peanut oil", "lard", "shortening", "margarine",
		"tallow", "suet",
	},
	domain.CategorySpice: {
		"salt", "sugar", "brown sugar", "powdered sugar", "honey",
		"molasses", "pepper", "black pepper", "cinnamon", "nutmeg",
		"ginger", "paprika", "cumin", "coriander", "oregano", "basil",
		"thyme", "rosemary", "sage", "parsley", "cilantro", "dill",
		"bay leaf", "bay leaves", "chili powder", "cayenne", "turmeric",
		"cardamom", "clove", "allspice", "vanilla", "vanilla extract",
		"garlic powder", "onion powder", "red pepper flakes",
		"seasoning", "saffron", "star anise", "fenugreek", "marjoram",
		"tarragon", "chive", "lemongrass", "zest",
	},
	domain.CategoryFruit: {
		"apple", "banana", "orange", "lemon", "lime", "strawberry",
		"strawberries", "blueberry", "blueberries", "raspberry",
		"raspberries", "blackberry", "blackberries", "cherry",
		"cherries", "grape", "peach", "pear", "plum", "pineapple",
		"mango", "kiwi", "melon", "watermelon", "cantaloupe", "apricot",
		"cranberry", "cranberries", "raisin", "dates", "fig",
		"pomegranate", "coconut", "avocado", "papaya", "nectarine",
		"rhubarb", "currant",
	},
	domain.CategoryNutsSeeds: {
		"almond", "walnut", "pecan", "cashew", "pistachio", "peanut",
		"hazelnut", "macadamia", "pine nut", "chestnut",
		"sunflower seed", "pumpkin seed", "sesame seed", "chia", "flax",
		"poppy seed", "hemp seed",
	},
	domain.CategoryCondiments: {
		"ketchup", "mustard", "mayonnaise", "mayo", "soy sauce",
		"worcestershire", "hot sauce", "salsa", "vinegar",
		"barbecue sauce", "bbq sauce", "teriyaki", "sriracha",
		"tabasco", "relish", "hoisin", "jam", "jelly", "syrup",
		"maple syrup", "dressing", "ranch", "aioli", "pesto", "hummus",
		"tahini", "wasabi", "horseradish", "pickle", "chutney",
		"marmalade",
	},
}

// FallbackCues are hand-written generic patterns per category, appended to
// the keyword-derived alternations during tier-2 matching. Expressed as
// plain regex source; compilation happens once in the classifier.
var FallbackCues = map[domain.IngredientCategory][]string{
	domain.CategoryProteinMain:   {`meat|poultry|seafood|fillet|cutlet`},
	domain.CategoryProteinSource: {`protein|legume`},
	domain.CategoryVegetable: {
		`vegetable|veggie|greens|leafy`,
		`root|bulb|tuber|stalk|stem`,
	},
	domain.CategoryFruit:      {`fruit|berry|berries|citrus`},
	domain.CategoryGrain:      {`grain|bread|pasta|noodle|flour`},
	domain.CategoryDairy:      {`dairy|milk|cream|cheese|yogurt`},
	domain.CategoryFat:        {`oil|fat|butter|lard|shortening`},
	domain.CategorySpice:      {`spice|herb|season|powder|extract`},
	domain.CategoryNutsSeeds:  {`nut|seed|kernel`},
	domain.CategoryCondiments: {`sauce|dressing|condiment|paste|spread`},
}

// NonMeatProteins are protein_source keywords that do NOT count as meat
// for dietary tagging (eggs and plant-based proteins).
var NonMeatProteins = map[string]bool{
	"egg":            true,
	"eggs":           true,
	"tofu":           true,
	"tempeh":         true,
	"seitan":         true,
	"bean":           true,
	"beans":          true,
	"lentil":         true,
	"chickpea":       true,
	"garbanzo":       true,
	"edamame":        true,
	"split pea":      true,
	"black-eyed pea": true,
	"protein powder": true,
}

// GlutenGrains is the subset of grain keywords that contain gluten.
// Grain keywords outside this set (rice, quinoa, cornmeal, ...) do not
// disqualify the gluten-free tag.
var GlutenGrains = map[string]bool{
	"flour":      true,
	"wheat":      true,
	"barley":     true,
	"rye":        true,
	"bread":      true,
	"pasta":      true,
	"noodle":     true,
	"couscous":   true,
	"semolina":   true,
	"farro":      true,
	"bulgur":     true,
	"cracker":    true,
	"spaghetti":  true,
	"macaroni":   true,
	"penne":      true,
	"lasagna":    true,
	"breadcrumb": true,
	"pita":       true,
	"bagel":      true,
}

// AdvancedTechniques are culinary terms that raise the difficulty score.
// Both spellings of flambé are listed because dumps carry either.
var AdvancedTechniques = []string{
	"braise", "sous vide", "temper", "emulsify", "clarify", "confit",
	"brunoise", "julienne", "chiffonade", "flambé", "flambe", "deglaze",
}

// PrepCues and CookCues route an extracted duration to prep or cook time
// when found near the time mention.
var (
	PrepCues = []string{
		"prep", "chop", "slice", "dice", "mix", "stir", "prepare",
		"cut", "mince", "marinate",
	}
	CookCues = []string{
		"bake", "cook", "fry", "grill", "roast", "simmer", "boil",
		"steam", "broil",
	}
)

// OptionalMarkers flag an ingredient line as optional.
var OptionalMarkers = []string{
	"optional", "to taste", "as needed", "if desired",
}
