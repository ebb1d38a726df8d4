package models

import (
	"errors"
	"time"
)

// DateLayout is the calendar-date format used for plan weeks and meal slots.
const DateLayout = "2006-01-02"

// MealType is the slot of the day a planned meal occupies.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

var (
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidMealType = errors.New("meal type must be breakfast, lunch, dinner or snack")
	ErrRecipeRequired  = errors.New("recipe reference is required")
)

// Valid reports whether t is one of the known meal types.
func (t MealType) Valid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// ValidDate reports whether s is a calendar date in DateLayout.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// PlannedMeal is a recipe attached to a date and meal slot of a plan.
type PlannedMeal struct {
	// ID is the unique identifier for the slot (UUID format).
	ID string

	// Date is the calendar date (YYYY-MM-DD).
	Date string

	MealType MealType

	// RecipeRef is a recipe ID or title. It is a weak reference: the recipe
	// may be deleted later, in which case aggregation skips it.
	RecipeRef string

	// Servings is the number of portions planned, always positive.
	Servings int
}

// Validate checks the slot fields.
func (m *PlannedMeal) Validate() error {
	if !ValidDate(m.Date) {
		return ErrInvalidDate
	}
	if !m.MealType.Valid() {
		return ErrInvalidMealType
	}
	if m.RecipeRef == "" {
		return ErrRecipeRequired
	}
	if m.Servings <= 0 {
		return ErrInvalidServings
	}
	return nil
}

// MealPlan represents one user's weekly plan.
type MealPlan struct {
	// ID is the unique identifier for the plan (UUID format).
	ID string

	// OwnerID is the user who owns the plan. Only the owner may read or edit it.
	OwnerID string

	Name string

	// WeekStart is the first day of the planned week (YYYY-MM-DD).
	WeekStart string

	// Meals are ordered by date, then meal type.
	Meals []PlannedMeal

	// ShoppingList is the last generated list. Regeneration overwrites it.
	ShoppingList []ShoppingListItem

	CreatedAt int64
	UpdatedAt int64
}

// RecipeRefs returns the recipe references of all planned meals in plan order.
// Duplicates are kept: the same recipe planned twice contributes twice.
func (p *MealPlan) RecipeRefs() []string {
	refs := make([]string, 0, len(p.Meals))
	for _, m := range p.Meals {
		refs = append(refs, m.RecipeRef)
	}
	return refs
}

// Category is a coarse grocery-store section.
type Category string

const (
	CategoryProduce     Category = "produce"
	CategoryMeatSeafood Category = "meat-seafood"
	CategoryDairy       Category = "dairy"
	CategoryPantry      Category = "pantry"
	CategoryBakery      Category = "bakery"
	CategoryOther       Category = "other"
)

// Categories lists every category in priority order.
var Categories = []Category{
	CategoryProduce,
	CategoryMeatSeafood,
	CategoryDairy,
	CategoryPantry,
	CategoryBakery,
	CategoryOther,
}

// ShoppingListEntry is one aggregated purchase line. It is a computed view
// with no lifecycle of its own.
type ShoppingListEntry struct {
	// Name is the first-seen spelling of the ingredient name.
	Name string

	// Amount is a number with trailing zeros trimmed, or AmountToTaste.
	Amount string

	Unit     string
	Category Category

	// SourceRecipes are the titles of contributing recipes, in first-seen order.
	SourceRecipes []string
}

// AmountToTaste replaces the amount of an entry that could not be summed.
const AmountToTaste = "to taste"

// ShoppingListItem is a ShoppingListEntry persisted on a MealPlan.
type ShoppingListItem struct {
	// ID is stable for a given plan and normalized ingredient name.
	ID string

	ShoppingListEntry

	// Purchased is toggled by the user.
	Purchased bool
}
