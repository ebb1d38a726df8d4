package calculator

import (
	"sort"
	"strings"

	"github.com/smartchef/smartchef/internal/models"
)

// SourcedIngredient is an ingredient tagged with the title of the recipe it came from.
type SourcedIngredient struct {
	models.Ingredient
	RecipeTitle string
}

// NormalizeName returns the merge key of an ingredient name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// group accumulates every ingredient sharing one normalized name.
type group struct {
	key     string
	name    string
	sum     float64
	numeric bool
	units   []string
	sources []string
}

func (g *group) add(ing SourcedIngredient) {
	if v, ok := ParseAmount(ing.Amount); ok {
		g.sum += v
	} else {
		g.numeric = false
	}

	if unit := strings.TrimSpace(ing.Unit); unit != "" && !containsFold(g.units, unit) {
		g.units = append(g.units, unit)
	}
	if ing.RecipeTitle != "" && !contains(g.sources, ing.RecipeTitle) {
		g.sources = append(g.sources, ing.RecipeTitle)
	}
}

func (g *group) entry() models.ShoppingListEntry {
	amount := models.AmountToTaste
	if g.numeric {
		amount = FormatAmount(g.sum)
	}
	return models.ShoppingListEntry{
		Name:          g.name,
		Amount:        amount,
		Unit:          strings.Join(g.units, " or "),
		Category:      Categorize(g.key),
		SourceRecipes: g.sources,
	}
}

// MergeIngredients consolidates a flat ingredient list into shopping-list entries.
//
// Ingredients merge iff their normalized names are equal. Numeric amounts are
// summed; a single non-numeric amount turns the whole entry into
// models.AmountToTaste. Distinct non-empty units are joined with " or ".
//
// Entries are ordered by category priority, then by first occurrence of their
// name in items, so identical input always yields identical output.
func MergeIngredients(items []SourcedIngredient) []models.ShoppingListEntry {
	groups := make(map[string]*group)
	var order []*group

	for _, ing := range items {
		key := NormalizeName(ing.Name)
		if key == "" {
			continue
		}
		g, exists := groups[key]
		if !exists {
			g = &group{key: key, name: strings.TrimSpace(ing.Name), numeric: true}
			groups[key] = g
			order = append(order, g)
		}
		g.add(ing)
	}

	entries := make([]models.ShoppingListEntry, len(order))
	for i, g := range order {
		entries[i] = g.entry()
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return categoryRank(entries[i].Category) < categoryRank(entries[j].Category)
	})
	return entries
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
