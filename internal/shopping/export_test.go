package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartchef/smartchef/internal/models"
)

func item(name, amount, unit string, cat models.Category, purchased bool) models.ShoppingListItem {
	return models.ShoppingListItem{ShoppingListEntry: entry(name, amount, unit, cat), Purchased: purchased}
}

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name string
		item models.ShoppingListItem
		want string
	}{
		{"all fields", item("Flour", "2", "cups", models.CategoryPantry, false), "☐ 2 cups Flour"},
		{"no unit", item("Onion", "3", "", models.CategoryProduce, false), "☐ 3 Onion"},
		{"purchased", item("Milk", "1", "l", models.CategoryDairy, true), "☑ 1 l Milk"},
		{"to taste", item("Salt", models.AmountToTaste, "", models.CategoryPantry, false), "☐ to taste Salt"},
		{"no amount", item("Basil", "", "", models.CategoryProduce, false), "☐ Basil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLine(tt.item))
		})
	}
}

func TestExport(t *testing.T) {
	items := []models.ShoppingListItem{
		item("Onion", "3", "", models.CategoryProduce, true),
		item("Garlic", "2", "cloves", models.CategoryProduce, false),
		item("Flour", "2", "cups", models.CategoryPantry, false),
		item("Bread", "1", "", models.CategoryBakery, false),
	}

	assert.Equal(t, "☑ 3 Onion\n☐ 2 cloves Garlic\n☐ 2 cups Flour\n☐ 1 Bread\n", Export(items, false))

	want := "# Produce\n☑ 3 Onion\n☐ 2 cloves Garlic\n\n# Pantry\n☐ 2 cups Flour\n\n# Bakery\n☐ 1 Bread\n"
	assert.Equal(t, want, Export(items, true))

	assert.Equal(t, "", Export(nil, true))
}
