package calculator

import (
	"strings"

	"github.com/smartchef/smartchef/internal/models"
)

// categoryKeywords is checked top to bottom; the first category with a keyword
// contained in the normalized ingredient name wins. The order is part of the
// contract: "garlic oil" is produce, not pantry.
var categoryKeywords = []struct {
	category models.Category
	keywords []string
}{
	{models.CategoryProduce, []string{
		"lettuce", "spinach", "kale", "arugula", "cabbage", "tomato", "onion", "garlic",
		"shallot", "scallion", "leek", "carrot", "celery", "potato", "bell pepper",
		"jalapeno", "jalapeño", "cucumber", "zucchini", "eggplant", "mushroom", "broccoli",
		"cauliflower", "asparagus", "avocado", "squash", "pumpkin", "beet", "radish",
		"lemon", "lime", "orange", "apple", "banana", "berries", "berry", "grapes",
		"mango", "peach", "cilantro", "parsley", "basil", "mint", "dill", "ginger",
		"herbs", "sprout",
	}},
	{models.CategoryMeatSeafood, []string{
		"chicken", "beef", "pork", "lamb", "turkey", "bacon", "sausage", "steak", "mince",
		"veal", "duck", "prosciutto", "chorizo", "salami", "salmon", "tuna", "shrimp",
		"prawn", "fish", "cod", "crab", "lobster", "scallop", "anchov", "clam", "mussel",
	}},
	{models.CategoryDairy, []string{
		"milk", "cheese", "butter", "cream", "yogurt", "yoghurt", "egg", "parmesan",
		"mozzarella", "cheddar", "feta", "ricotta", "ghee",
	}},
	{models.CategoryPantry, []string{
		"salt", "pepper", "oil", "vinegar", "flour", "sugar", "rice", "pasta", "noodle",
		"spaghetti", "bean", "lentil", "chickpea", "stock", "broth", "sauce", "honey",
		"syrup", "spice", "cumin", "paprika", "cinnamon", "oregano", "vanilla", "baking",
		"yeast", "oat", "cornstarch", "soy", "mustard", "ketchup", "mayonnaise", "nut",
		"almond", "walnut", "seed", "chocolate", "cocoa", "coffee",
	}},
	{models.CategoryBakery, []string{
		"bread", "bun", "roll", "bagel", "tortilla", "pita", "croissant", "baguette",
		"muffin", "brioche", "crust", "pastry",
	}},
}

// Categorize returns the grocery category for a normalized ingredient name.
func Categorize(normalizedName string) models.Category {
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(normalizedName, kw) {
				return entry.category
			}
		}
	}
	return models.CategoryOther
}

// categoryRank is the position of c in models.Categories.
func categoryRank(c models.Category) int {
	for i, cat := range models.Categories {
		if cat == c {
			return i
		}
	}
	return len(models.Categories)
}
