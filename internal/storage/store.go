// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/smartchef/smartchef/internal/models"
)

// ErrNotFound is returned (wrapped) when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned (wrapped) when a unique constraint would be violated.
var ErrDuplicate = errors.New("already exists")

// RecipeSort selects the ordering of recipe listings.
type RecipeSort string

const (
	SortNewest   RecipeSort = "newest"
	SortRating   RecipeSort = "rating"
	SortTitle    RecipeSort = "title"
	SortQuickest RecipeSort = "quickest"
)

// RecipeFilter narrows a recipe listing. Zero values mean "no constraint".
type RecipeFilter struct {
	// Query matches recipe titles and ingredient names, case-insensitively.
	Query      string
	Cuisine    string
	Tag        string
	Difficulty models.Difficulty

	// MaxTotalMinutes bounds prep + cook time when positive.
	MaxTotalMinutes int

	AuthorID string

	// ViewerID sees their own private recipes in addition to public ones.
	ViewerID string

	Sort   RecipeSort
	Limit  int
	Offset int
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

// RecipeStore persists recipe documents and their ratings.
type RecipeStore interface {
	// CreateRecipe persists a new recipe. ID and timestamps are generated if unset.
	CreateRecipe(ctx context.Context, recipe *models.Recipe) error

	GetRecipe(ctx context.Context, id string) (*models.Recipe, error)

	// FindRecipe resolves a recipe reference: an ID first, then a
	// case-insensitive exact title among recipes visible to viewerID.
	FindRecipe(ctx context.Context, ref, viewerID string) (*models.Recipe, error)

	UpdateRecipe(ctx context.Context, recipe *models.Recipe) error
	DeleteRecipe(ctx context.Context, id string) error

	// ListRecipes returns one page of matching recipes and the total match count.
	ListRecipes(ctx context.Context, filter RecipeFilter) ([]*models.Recipe, int, error)

	// UpsertRating stores the user's rating and returns the recipe's new
	// average and rating count.
	UpsertRating(ctx context.Context, rating *models.Rating) (float64, int, error)

	ListRatings(ctx context.Context, recipeID string) ([]*models.Rating, error)
}

// MealPlanStore persists meal plans, their planned meals and shopping lists.
type MealPlanStore interface {
	CreateMealPlan(ctx context.Context, plan *models.MealPlan) error

	// GetMealPlan loads the plan with its meals and shopping list.
	GetMealPlan(ctx context.Context, id string) (*models.MealPlan, error)

	// ListMealPlans returns the owner's plans without meals or shopping lists,
	// most recent week first.
	ListMealPlans(ctx context.Context, ownerID string) ([]*models.MealPlan, error)

	// UpdateMealPlan updates name and week start.
	UpdateMealPlan(ctx context.Context, plan *models.MealPlan) error
	DeleteMealPlan(ctx context.Context, id string) error

	AddPlannedMeal(ctx context.Context, planID string, meal *models.PlannedMeal) error
	RemovePlannedMeal(ctx context.Context, planID, mealID string) error

	// ReplaceShoppingList overwrites the stored list. There is no concurrency
	// check: the last writer wins.
	ReplaceShoppingList(ctx context.Context, planID string, items []models.ShoppingListItem) error

	SetShoppingItemPurchased(ctx context.Context, planID, itemID string, purchased bool) error
}

// CollectionStore persists recipe collections.
type CollectionStore interface {
	CreateCollection(ctx context.Context, c *models.Collection) error
	GetCollection(ctx context.Context, id string) (*models.Collection, error)

	// ListCollections returns the owner's collections; private ones only when includePrivate.
	ListCollections(ctx context.Context, ownerID string, includePrivate bool) ([]*models.Collection, error)

	UpdateCollection(ctx context.Context, c *models.Collection) error
	DeleteCollection(ctx context.Context, id string) error
	AddRecipeToCollection(ctx context.Context, collectionID, recipeID string) error
	RemoveRecipeFromCollection(ctx context.Context, collectionID, recipeID string) error
}

// Store defines the full storage surface used by the services.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	UserStore
	RecipeStore
	MealPlanStore
	CollectionStore

	// Close releases any resources held by the store.
	Close() error
}
