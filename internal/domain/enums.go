package domain

// IngredientCategory is the `kind` bucket an ingredient is filed under
// for meal-planning filters.
type IngredientCategory string

const (
	CategoryProteinMain   IngredientCategory = "protein_main"
	CategoryProteinSource IngredientCategory = "protein_source"
	CategoryVegetable     IngredientCategory = "vegetable"
	CategoryGrain         IngredientCategory = "grain"
	CategoryDairy         IngredientCategory = "dairy"
	CategoryFat           IngredientCategory = "fat"
	CategorySpice         IngredientCategory = "spice"
	CategoryFruit         IngredientCategory = "fruit"
	CategoryNutsSeeds     IngredientCategory = "nuts_seeds"
	CategoryCondiments    IngredientCategory = "condiments"
	CategoryOther         IngredientCategory = "other"
)

func (c IngredientCategory) String() string { return string(c) }

func (c IngredientCategory) IsValid() bool {
	switch c {
	case CategoryProteinMain, CategoryProteinSource, CategoryVegetable,
		CategoryGrain, CategoryDairy, CategoryFat, CategorySpice,
		CategoryFruit, CategoryNutsSeeds, CategoryCondiments, CategoryOther:
		return true
	}
	return false
}

// Difficulty is the derived effort tier of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// DietaryTag is a dietary label inferred from ingredient content,
// not declared by the recipe author.
type DietaryTag string

const (
	TagVegetarian DietaryTag = "vegetarian"
	TagVegan      DietaryTag = "vegan"
	TagGlutenFree DietaryTag = "gluten-free"
	TagDairyFree  DietaryTag = "dairy-free"
)

func (t DietaryTag) String() string { return string(t) }

func (t DietaryTag) IsValid() bool {
	switch t {
	case TagVegetarian, TagVegan, TagGlutenFree, TagDairyFree:
		return true
	}
	return false
}
