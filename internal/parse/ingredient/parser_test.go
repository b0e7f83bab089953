package ingredient

import (
	"math"
	"testing"

	"github.com/forkful/mealplan-backend/internal/domain"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want domain.ParsedIngredient
	}{
		{
			name: "abbreviated cup with packed modifier",
			in:   "1 c. firmly packed brown sugar",
			want: domain.ParsedIngredient{
				Name:     "firmly packed brown sugar",
				Quantity: fptr(1),
				Unit:     sptr("cup"),
				Category: domain.CategorySpice,
			},
		},
		{
			name: "metric weight glued to quantity",
			in:   "500g ground beef",
			want: domain.ParsedIngredient{
				Name:     "ground beef",
				Quantity: fptr(500),
				Unit:     sptr("gram"),
				Category: domain.CategoryProteinMain,
			},
		},
		{
			name: "no quantity with optional marker",
			in:   "salt to taste",
			want: domain.ParsedIngredient{
				Name:       "salt to taste",
				Category:   domain.CategorySpice,
				IsOptional: true,
			},
		},
		{
			name: "simple fraction",
			in:   "1/2 cup milk",
			want: domain.ParsedIngredient{
				Name:     "milk",
				Quantity: fptr(0.5),
				Unit:     sptr("cup"),
				Category: domain.CategoryDairy,
			},
		},
		{
			name: "mixed number",
			in:   "1 1/2 cups all-purpose flour",
			want: domain.ParsedIngredient{
				Name:     "all-purpose flour",
				Quantity: fptr(1.5),
				Unit:     sptr("cup"),
				Category: domain.CategoryGrain,
			},
		},
		{
			name: "decimal quantity",
			in:   "2.5 lbs chicken thighs",
			want: domain.ParsedIngredient{
				Name:     "chicken thighs",
				Quantity: fptr(2.5),
				Unit:     sptr("pound"),
				Category: domain.CategoryProteinMain,
			},
		},
		{
			name: "word quantity",
			in:   "two cloves garlic, minced",
			want: domain.ParsedIngredient{
				Name:     "garlic, minced",
				Quantity: fptr(2),
				Unit:     sptr("clove"),
				Category: domain.CategoryVegetable,
			},
		},
		{
			name: "unit with of connective",
			in:   "2 cups of water",
			want: domain.ParsedIngredient{
				Name:     "water",
				Quantity: fptr(2),
				Unit:     sptr("cup"),
				Category: domain.CategoryOther,
			},
		},
		{
			name: "size word as unit",
			in:   "3 large eggs",
			want: domain.ParsedIngredient{
				Name:     "eggs",
				Quantity: fptr(3),
				Unit:     sptr("large"),
				Category: domain.CategoryProteinSource,
			},
		},
		{
			name: "parenthesized optional",
			in:   "1/4 cup chopped walnuts (optional)",
			want: domain.ParsedIngredient{
				Name:       "chopped walnuts (optional)",
				Quantity:   fptr(0.25),
				Unit:       sptr("cup"),
				Category:   domain.CategoryNutsSeeds,
				IsOptional: true,
			},
		},
		{
			name: "quantity without unit",
			in:   "2 ripe bananas",
			want: domain.ParsedIngredient{
				Name:     "ripe bananas",
				Quantity: fptr(2),
				Category: domain.CategoryFruit,
			},
		},
		{
			name: "empty line degrades to sentinel",
			in:   "   ",
			want: domain.ParsedIngredient{
				Name:     domain.UnknownIngredientName,
				Category: domain.CategoryOther,
			},
		},
		{
			name: "only a quantity degrades to sentinel",
			in:   "2",
			want: domain.ParsedIngredient{
				Name:     domain.UnknownIngredientName,
				Quantity: fptr(2),
				Category: domain.CategoryOther,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in)

			if got.Name != tt.want.Name {
				t.Errorf("Name = %q, want %q", got.Name, tt.want.Name)
			}
			if !floatPtrEq(got.Quantity, tt.want.Quantity) {
				t.Errorf("Quantity = %v, want %v", fmtPtr(got.Quantity), fmtPtr(tt.want.Quantity))
			}
			if !strPtrEq(got.Unit, tt.want.Unit) {
				t.Errorf("Unit = %v, want %v", got.Unit, tt.want.Unit)
			}
			if got.Category != tt.want.Category {
				t.Errorf("Category = %q, want %q", got.Category, tt.want.Category)
			}
			if got.IsOptional != tt.want.IsOptional {
				t.Errorf("IsOptional = %v, want %v", got.IsOptional, tt.want.IsOptional)
			}
		})
	}
}

func TestExtractQuantityOrdering(t *testing.T) {
	// The fraction rule must win over the integer rule, otherwise
	// "1/2" would parse as quantity 1 with "/2" left in the name.
	qty, rest, ok := extractQuantity("1/2 cup milk")
	if !ok {
		t.Fatal("expected a match")
	}
	if qty != 0.5 {
		t.Errorf("quantity = %v, want 0.5", qty)
	}
	if rest != "cup milk" {
		t.Errorf("rest = %q, want %q", rest, "cup milk")
	}
}

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"c", "cup"},
		{"C.", "cup"},
		{"cups", "cup"},
		{"Tbsp", "tablespoon"},
		{"tsp.", "teaspoon"},
		{"fl  oz", "fluid ounce"},
		{"lbs", "pound"},
		{"oz", "ounce"},
		{"g", "gram"},
		{"KG", "kilogram"},
		{"ml", "milliliter"},
		{"litres", "liter"},
		{"in", "inch"},
		{"cloves", "clove"},
		{"pkgs", "package"},
		{"extra-large", "extra large"},
		{"xl", "extra large"},
		{"widget", "widget"}, // unknown passes through cleaned
	}

	for _, tt := range tests {
		if got := NormalizeUnit(tt.in); got != tt.want {
			t.Errorf("NormalizeUnit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMetricToImperial(t *testing.T) {
	tests := []struct {
		qty      float64
		unit     string
		wantQty  float64
		wantUnit string
	}{
		{100, "g", 3.5274, "ounce"},
		{1, "kg", 2.20462, "pound"},
		{250, "ml", 1.0566875, "cup"},
		{1, "l", 4.22675, "cup"},
		{10, "cm", 3.93701, "inch"},
		{2, "m", 6.56168, "foot"},
		{3, "cup", 3, "cup"}, // already imperial
	}

	for _, tt := range tests {
		gotQty, gotUnit := MetricToImperial(tt.qty, tt.unit)
		if math.Abs(gotQty-tt.wantQty) > 1e-6 {
			t.Errorf("MetricToImperial(%v, %q) qty = %v, want %v", tt.qty, tt.unit, gotQty, tt.wantQty)
		}
		if gotUnit != tt.wantUnit {
			t.Errorf("MetricToImperial(%v, %q) unit = %q, want %q", tt.qty, tt.unit, gotUnit, tt.wantUnit)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want domain.IngredientCategory
	}{
		{"boneless chicken breast", domain.CategoryProteinMain},
		{"firm tofu", domain.CategoryProteinSource},
		{"yellow onion", domain.CategoryVegetable},
		{"jasmine rice", domain.CategoryGrain},
		{"sharp cheddar", domain.CategoryDairy},
		{"extra virgin olive oil", domain.CategoryFat},
		{"ground cinnamon", domain.CategorySpice},
		{"granny smith apple", domain.CategoryFruit},
		{"toasted almonds", domain.CategoryNutsSeeds},
		{"dijon mustard", domain.CategoryCondiments},
		{"mystery item", domain.CategoryOther},
		{"", domain.CategoryOther},
		// Fallback cues catch names no keyword covers.
		{"mixed leafy greens", domain.CategoryVegetable},
		{"stone fruit medley", domain.CategoryFruit},
	}

	for _, tt := range tests {
		if got := Classify(tt.name); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func floatPtrEq(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return math.Abs(*a-*b) < 1e-9
}

func strPtrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtPtr(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
