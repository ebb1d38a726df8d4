package shopping

import (
	"github.com/google/uuid"

	"github.com/smartchef/smartchef/internal/calculator"
	"github.com/smartchef/smartchef/internal/models"
)

// itemNamespace seeds the name-based UUIDs of shopping-list items.
var itemNamespace = uuid.MustParse("5b0c3f5e-7d0a-4c57-9a53-3f1f4e0d2a61")

// ItemID returns the stable ID of the item for name on the given plan.
func ItemID(planID, name string) string {
	return uuid.NewSHA1(itemNamespace, []byte(planID+"\x00"+calculator.NormalizeName(name))).String()
}

// BuildItems turns freshly aggregated entries into persisted items.
//
// An entry keeps the purchased flag of the previous item with the same ID only
// when its amount and unit are unchanged; anything else starts unpurchased.
func BuildItems(planID string, entries []models.ShoppingListEntry, previous []models.ShoppingListItem) []models.ShoppingListItem {
	prior := make(map[string]models.ShoppingListItem, len(previous))
	for _, item := range previous {
		prior[item.ID] = item
	}

	items := make([]models.ShoppingListItem, 0, len(entries))
	for _, entry := range entries {
		item := models.ShoppingListItem{
			ID:                ItemID(planID, entry.Name),
			ShoppingListEntry: entry,
		}
		if old, ok := prior[item.ID]; ok && old.Amount == entry.Amount && old.Unit == entry.Unit {
			item.Purchased = old.Purchased
		}
		items = append(items, item)
	}
	return items
}
