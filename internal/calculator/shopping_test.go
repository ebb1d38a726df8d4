package calculator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/smartchef/smartchef/internal/models"
)

func ing(name, amount, unit, recipe string) SourcedIngredient {
	return SourcedIngredient{
		Ingredient:  models.Ingredient{Name: name, Amount: amount, Unit: unit},
		RecipeTitle: recipe,
	}
}

func TestMergeIngredients(t *testing.T) {
	tests := []struct {
		name  string
		items []SourcedIngredient
		want  []models.ShoppingListEntry
	}{
		{
			name: "same name different casing sums amounts",
			items: []SourcedIngredient{
				ing("Onion", "1", "", "A"),
				ing("onion", "2", "", "B"),
			},
			want: []models.ShoppingListEntry{
				{Name: "Onion", Amount: "3", Category: models.CategoryProduce, SourceRecipes: []string{"A", "B"}},
			},
		},
		{
			name: "non-numeric amount degrades to sentinel",
			items: []SourcedIngredient{
				ing("Salt", "to taste", "", "A"),
				ing("Salt", "1", "tsp", "B"),
			},
			want: []models.ShoppingListEntry{
				{Name: "Salt", Amount: models.AmountToTaste, Unit: "tsp", Category: models.CategoryPantry, SourceRecipes: []string{"A", "B"}},
			},
		},
		{
			name: "distinct units are joined",
			items: []SourcedIngredient{
				ing("Flour", "1", "cup", "A"),
				ing(" flour ", "200", "g", "B"),
				ing("FLOUR", "1", "Cup", "C"),
			},
			want: []models.ShoppingListEntry{
				{Name: "Flour", Amount: "202", Unit: "cup or g", Category: models.CategoryPantry, SourceRecipes: []string{"A", "B", "C"}},
			},
		},
		{
			name: "fractions and decimals sum without float noise",
			items: []SourcedIngredient{
				ing("Milk", "0.1", "l", "A"),
				ing("milk", "0.2", "l", "A"),
				ing("milk", "1 1/2", "l", "B"),
			},
			want: []models.ShoppingListEntry{
				{Name: "Milk", Amount: "1.8", Unit: "l", Category: models.CategoryDairy, SourceRecipes: []string{"A", "B"}},
			},
		},
		{
			name: "entries ordered by category priority then first occurrence",
			items: []SourcedIngredient{
				ing("Bread", "1", "loaf", "A"),
				ing("Olive oil", "2", "tbsp", "A"),
				ing("Chicken breast", "2", "", "A"),
				ing("Garlic", "3", "cloves", "B"),
				ing("Mystery spice blend", "", "", "B"),
				ing("Widget", "1", "", "B"),
				ing("Tomato", "2", "", "B"),
			},
			want: []models.ShoppingListEntry{
				{Name: "Garlic", Amount: "3", Unit: "cloves", Category: models.CategoryProduce, SourceRecipes: []string{"B"}},
				{Name: "Tomato", Amount: "2", Category: models.CategoryProduce, SourceRecipes: []string{"B"}},
				{Name: "Chicken breast", Amount: "2", Category: models.CategoryMeatSeafood, SourceRecipes: []string{"A"}},
				{Name: "Olive oil", Amount: "2", Unit: "tbsp", Category: models.CategoryPantry, SourceRecipes: []string{"A"}},
				{Name: "Mystery spice blend", Amount: models.AmountToTaste, Category: models.CategoryPantry, SourceRecipes: []string{"B"}},
				{Name: "Bread", Amount: "1", Unit: "loaf", Category: models.CategoryBakery, SourceRecipes: []string{"A"}},
				{Name: "Widget", Amount: "1", Category: models.CategoryOther, SourceRecipes: []string{"B"}},
			},
		},
		{
			name:  "blank names are ignored",
			items: []SourcedIngredient{ing("  ", "1", "", "A")},
			want:  []models.ShoppingListEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeIngredients(tt.items)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MergeIngredients() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeIngredients_SumProperty(t *testing.T) {
	amounts := []string{"1", "2.5", "0.25", "3/4", "10"}
	var items []SourcedIngredient
	for _, a := range amounts {
		items = append(items, ing("Carrot", a, "", "Soup"))
	}

	got := MergeIngredients(items)
	if len(got) != 1 {
		t.Fatalf("expected a single entry, got %d", len(got))
	}
	if got[0].Amount != "14.5" {
		t.Errorf("Amount = %q, want %q", got[0].Amount, "14.5")
	}
	if len(got[0].SourceRecipes) != 1 {
		t.Errorf("SourceRecipes = %v, want [Soup]", got[0].SourceRecipes)
	}
}

func TestMergeIngredients_AnyNonNumericWins(t *testing.T) {
	for _, bad := range []string{"to taste", "as needed", "", "a pinch", "2-3"} {
		items := []SourcedIngredient{
			ing("Pepper", "1", "tsp", "A"),
			ing("pepper", bad, "", "B"),
			ing("PEPPER", "2", "tsp", "C"),
		}
		got := MergeIngredients(items)
		if got[0].Amount != models.AmountToTaste {
			t.Errorf("amount with %q = %q, want sentinel", bad, got[0].Amount)
		}
	}
}

func TestMergeIngredients_Deterministic(t *testing.T) {
	items := []SourcedIngredient{
		ing("Rice", "1", "cup", "A"),
		ing("Egg", "2", "", "A"),
		ing("Spinach", "1", "bunch", "B"),
		ing("egg", "1", "", "B"),
	}
	first := MergeIngredients(items)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, MergeIngredients(items)); diff != "" {
			t.Fatalf("run %d differs (-first +run):\n%s", i, diff)
		}
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		want models.Category
	}{
		{"garlic oil", models.CategoryProduce}, // produce beats pantry
		{"onion", models.CategoryProduce},
		{"eggplant", models.CategoryProduce},
		{"salmon fillet", models.CategoryMeatSeafood},
		{"unsalted butter", models.CategoryDairy},
		{"eggs", models.CategoryDairy},
		{"black pepper", models.CategoryPantry},
		{"red bell pepper", models.CategoryProduce},
		{"rolled oats", models.CategoryPantry},
		{"sourdough bread", models.CategoryBakery},
		{"paper towels", models.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.name); got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
