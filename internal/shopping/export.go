package shopping

import (
	"strings"

	"github.com/smartchef/smartchef/internal/models"
)

const (
	boxUnchecked = "☐"
	boxChecked   = "☑"
)

// categoryTitles are the section headers of the grouped export.
var categoryTitles = map[models.Category]string{
	models.CategoryProduce:     "Produce",
	models.CategoryMeatSeafood: "Meat & Seafood",
	models.CategoryDairy:       "Dairy",
	models.CategoryPantry:      "Pantry",
	models.CategoryBakery:      "Bakery",
	models.CategoryOther:       "Other",
}

// FormatLine renders one item as "☐ 2 cups Flour". Empty fields are omitted.
func FormatLine(item models.ShoppingListItem) string {
	box := boxUnchecked
	if item.Purchased {
		box = boxChecked
	}
	fields := []string{box}
	for _, f := range []string{item.Amount, item.Unit, item.Name} {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return strings.Join(fields, " ")
}

// Export renders items as plain text, one "\n"-terminated line per item in
// list order. The grouped variant adds a "# Category" header before each
// non-empty category and a blank line between sections.
func Export(items []models.ShoppingListItem, grouped bool) string {
	var b strings.Builder
	if !grouped {
		for _, item := range items {
			b.WriteString(FormatLine(item))
			b.WriteByte('\n')
		}
		return b.String()
	}

	byCategory := make(map[models.Category][]models.ShoppingListItem)
	for _, item := range items {
		cat := item.Category
		if _, known := categoryTitles[cat]; !known {
			cat = models.CategoryOther
		}
		byCategory[cat] = append(byCategory[cat], item)
	}

	first := true
	for _, cat := range models.Categories {
		section := byCategory[cat]
		if len(section) == 0 {
			continue
		}
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString("# " + categoryTitles[cat] + "\n")
		for _, item := range section {
			b.WriteString(FormatLine(item))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
