package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/smartchef/smartchef/internal/models"
	"github.com/smartchef/smartchef/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func createTestUser(t *testing.T, store *SQLiteStore, email string) *models.User {
	t.Helper()
	user := models.NewUser(email, "Cook "+email, "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func createTestRecipe(t *testing.T, store *SQLiteStore, authorID, title string, public bool) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		AuthorID:        authorID,
		Title:           title,
		Ingredients:     []models.Ingredient{{Name: "Onion", Amount: "1"}, {Name: "Salt", Amount: "to taste"}},
		Instructions:    []string{"Chop", "Cook"},
		Servings:        2,
		PrepTimeMinutes: 10,
		CookTimeMinutes: 20,
		Cuisine:         "italian",
		Difficulty:      models.DifficultyEasy,
		Tags:            []string{"quick"},
		IsPublic:        public,
	}
	if err := store.CreateRecipe(context.Background(), recipe); err != nil {
		t.Fatalf("CreateRecipe failed: %v", err)
	}
	return recipe
}

func TestMigrateIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	first, err := Migrate(dbPath)
	if err != nil {
		t.Fatalf("first Migrate failed: %v", err)
	}
	second, err := Migrate(dbPath)
	if err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}
	if first == 0 || first != second {
		t.Errorf("schema version = %d then %d, want same non-zero version", first, second)
	}
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		user := createTestUser(t, store, "Alice@Example.com")

		got, err := store.GetUserByEmail(ctx, "alice@example.COM")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("ID mismatch: got %s, want %s", got.ID, user.ID)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := store.CreateUser(ctx, models.NewUser("alice@example.com", "Other", "hash"))
		if !errors.Is(err, storage.ErrDuplicate) {
			t.Errorf("expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := store.GetUserByID(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("update profile", func(t *testing.T) {
		user := createTestUser(t, store, "bob@example.com")
		user.Bio = "Weekend baker"
		user.DietaryPreferences = []string{"vegetarian"}
		if err := store.UpdateUser(ctx, user); err != nil {
			t.Fatalf("UpdateUser failed: %v", err)
		}

		got, err := store.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if got.Bio != "Weekend baker" || len(got.DietaryPreferences) != 1 {
			t.Errorf("profile not saved: %+v", got)
		}
	})
}

func TestRecipes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createTestUser(t, store, "alice@example.com")
	bob := createTestUser(t, store, "bob@example.com")

	t.Run("round trip keeps the document", func(t *testing.T) {
		original := createTestRecipe(t, store, alice.ID, "Tomato Soup", true)
		if original.ID == "" || original.CreatedAt == 0 {
			t.Fatal("Expected ID and CreatedAt to be generated")
		}

		got, err := store.GetRecipe(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetRecipe failed: %v", err)
		}
		if got.Title != "Tomato Soup" || got.AuthorID != alice.ID {
			t.Errorf("unexpected recipe: %+v", got)
		}
		if len(got.Ingredients) != 2 || got.Ingredients[1].Amount != "to taste" {
			t.Errorf("ingredients mismatch: %+v", got.Ingredients)
		}
		if len(got.Instructions) != 2 || got.TotalTimeMinutes() != 30 {
			t.Errorf("instructions or times mismatch: %+v", got)
		}
		if !got.IsPublic {
			t.Error("expected recipe to be public")
		}
	})

	t.Run("find by title prefers the viewer's own recipe", func(t *testing.T) {
		createTestRecipe(t, store, alice.ID, "Pancakes", true)
		own := createTestRecipe(t, store, bob.ID, "pancakes", false)

		got, err := store.FindRecipe(ctx, "PANCAKES", bob.ID)
		if err != nil {
			t.Fatalf("FindRecipe failed: %v", err)
		}
		if got.ID != own.ID {
			t.Errorf("FindRecipe returned %s, want bob's recipe %s", got.ID, own.ID)
		}
	})

	t.Run("find ignores private recipes of others", func(t *testing.T) {
		secret := createTestRecipe(t, store, alice.ID, "Secret Stew", false)

		_, err := store.FindRecipe(ctx, "Secret Stew", bob.ID)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}

		_, err = store.FindRecipe(ctx, secret.ID, bob.ID)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound by ID, got %v", err)
		}

		got, err := store.FindRecipe(ctx, secret.ID, alice.ID)
		if err != nil {
			t.Fatalf("FindRecipe by author failed: %v", err)
		}
		if got.ID != secret.ID {
			t.Errorf("ID = %q, want %q", got.ID, secret.ID)
		}
	})

	t.Run("find by title folds non-ASCII case", func(t *testing.T) {
		recipe := createTestRecipe(t, store, alice.ID, "Crème Brûlée", true)

		got, err := store.FindRecipe(ctx, "  CRÈME BRÛLÉE ", bob.ID)
		if err != nil {
			t.Fatalf("FindRecipe failed: %v", err)
		}
		if got.ID != recipe.ID {
			t.Errorf("ID = %q, want %q", got.ID, recipe.ID)
		}
	})

	t.Run("find by ID", func(t *testing.T) {
		recipe := createTestRecipe(t, store, alice.ID, "Risotto", true)

		got, err := store.FindRecipe(ctx, recipe.ID, "")
		if err != nil {
			t.Fatalf("FindRecipe failed: %v", err)
		}
		if got.Title != "Risotto" {
			t.Errorf("Title = %q, want Risotto", got.Title)
		}
	})

	t.Run("update and delete", func(t *testing.T) {
		recipe := createTestRecipe(t, store, alice.ID, "Draft", false)
		recipe.Title = "Final"
		recipe.Tags = []string{"dinner"}
		if err := store.UpdateRecipe(ctx, recipe); err != nil {
			t.Fatalf("UpdateRecipe failed: %v", err)
		}
		got, err := store.GetRecipe(ctx, recipe.ID)
		if err != nil {
			t.Fatalf("GetRecipe failed: %v", err)
		}
		if got.Title != "Final" || len(got.Tags) != 1 || got.Tags[0] != "dinner" {
			t.Errorf("update not applied: %+v", got)
		}

		if err := store.DeleteRecipe(ctx, recipe.ID); err != nil {
			t.Fatalf("DeleteRecipe failed: %v", err)
		}
		if _, err := store.GetRecipe(ctx, recipe.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
		if err := store.DeleteRecipe(ctx, recipe.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound on second delete, got %v", err)
		}
	})
}

func TestListRecipes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createTestUser(t, store, "alice@example.com")
	bob := createTestUser(t, store, "bob@example.com")

	curry := createTestRecipe(t, store, alice.ID, "Chickpea Curry", true)
	curry.Cuisine = "indian"
	curry.Tags = []string{"vegan"}
	curry.Ingredients = []models.Ingredient{{Name: "Chickpeas", Amount: "400", Unit: "g"}}
	curry.CookTimeMinutes = 60
	if err := store.UpdateRecipe(ctx, curry); err != nil {
		t.Fatalf("UpdateRecipe failed: %v", err)
	}
	createTestRecipe(t, store, alice.ID, "Apple Pie", true)
	createTestRecipe(t, store, alice.ID, "Private Pasta", false)
	createTestRecipe(t, store, bob.ID, "Bob's Burger", true)

	tests := []struct {
		name      string
		filter    storage.RecipeFilter
		wantTotal int
		wantFirst string
	}{
		{"anonymous sees public only", storage.RecipeFilter{Sort: storage.SortTitle}, 3, "Apple Pie"},
		{"author sees own private", storage.RecipeFilter{ViewerID: alice.ID, Sort: storage.SortTitle}, 4, "Apple Pie"},
		{"query matches ingredient", storage.RecipeFilter{Query: "chickpea"}, 1, "Chickpea Curry"},
		{"query matches title", storage.RecipeFilter{Query: "BURGER"}, 1, "Bob's Burger"},
		{"cuisine", storage.RecipeFilter{Cuisine: "Indian"}, 1, "Chickpea Curry"},
		{"tag", storage.RecipeFilter{Tag: "vegan"}, 1, "Chickpea Curry"},
		{"max time excludes long recipes", storage.RecipeFilter{MaxTotalMinutes: 30, Sort: storage.SortTitle}, 2, "Apple Pie"},
		{"author", storage.RecipeFilter{AuthorID: bob.ID}, 1, "Bob's Burger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes, total, err := store.ListRecipes(ctx, tt.filter)
			if err != nil {
				t.Fatalf("ListRecipes failed: %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
			if len(recipes) == 0 || recipes[0].Title != tt.wantFirst {
				t.Errorf("first recipe = %v, want %q", recipes, tt.wantFirst)
			}
		})
	}

	t.Run("quickest puts the long recipe last", func(t *testing.T) {
		recipes, _, err := store.ListRecipes(ctx, storage.RecipeFilter{Sort: storage.SortQuickest})
		if err != nil {
			t.Fatalf("ListRecipes failed: %v", err)
		}
		if len(recipes) != 3 || recipes[2].Title != "Chickpea Curry" {
			t.Errorf("unexpected order: %v", recipes)
		}
	})

	t.Run("limit and offset page through results", func(t *testing.T) {
		page, total, err := store.ListRecipes(ctx, storage.RecipeFilter{Sort: storage.SortTitle, Limit: 2, Offset: 2})
		if err != nil {
			t.Fatalf("ListRecipes failed: %v", err)
		}
		if total != 3 || len(page) != 1 || page[0].Title != "Chickpea Curry" {
			t.Errorf("unexpected page: total=%d recipes=%d", total, len(page))
		}
	})
}

func TestRatings(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createTestUser(t, store, "alice@example.com")
	bob := createTestUser(t, store, "bob@example.com")
	carol := createTestUser(t, store, "carol@example.com")
	recipe := createTestRecipe(t, store, alice.ID, "Lasagne", true)

	avg, count, err := store.UpsertRating(ctx, &models.Rating{RecipeID: recipe.ID, UserID: bob.ID, Score: 5})
	if err != nil {
		t.Fatalf("UpsertRating failed: %v", err)
	}
	if avg != 5 || count != 1 {
		t.Errorf("after first rating: avg=%v count=%d", avg, count)
	}

	avg, count, err = store.UpsertRating(ctx, &models.Rating{RecipeID: recipe.ID, UserID: carol.ID, Score: 4, Comment: "Good"})
	if err != nil {
		t.Fatalf("UpsertRating failed: %v", err)
	}
	if avg != 4.5 || count != 2 {
		t.Errorf("after second rating: avg=%v count=%d", avg, count)
	}

	// Re-rating replaces the earlier score
	avg, count, err = store.UpsertRating(ctx, &models.Rating{RecipeID: recipe.ID, UserID: bob.ID, Score: 1})
	if err != nil {
		t.Fatalf("UpsertRating failed: %v", err)
	}
	if avg != 2.5 || count != 2 {
		t.Errorf("after re-rating: avg=%v count=%d", avg, count)
	}

	got, err := store.GetRecipe(ctx, recipe.ID)
	if err != nil {
		t.Fatalf("GetRecipe failed: %v", err)
	}
	if got.AverageRating != 2.5 || got.RatingCount != 2 {
		t.Errorf("recipe counters = %v/%d, want 2.5/2", got.AverageRating, got.RatingCount)
	}

	ratings, err := store.ListRatings(ctx, recipe.ID)
	if err != nil {
		t.Fatalf("ListRatings failed: %v", err)
	}
	if len(ratings) != 2 {
		t.Errorf("expected 2 ratings, got %d", len(ratings))
	}
}

func TestMealPlans(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createTestUser(t, store, "alice@example.com")

	plan := &models.MealPlan{
		OwnerID:   alice.ID,
		Name:      "Week 10",
		WeekStart: "2024-03-04",
		Meals: []models.PlannedMeal{
			{Date: "2024-03-05", MealType: models.MealDinner, RecipeRef: "Soup", Servings: 2},
			{Date: "2024-03-05", MealType: models.MealBreakfast, RecipeRef: "Oats", Servings: 1},
		},
	}
	if err := store.CreateMealPlan(ctx, plan); err != nil {
		t.Fatalf("CreateMealPlan failed: %v", err)
	}

	t.Run("meals ordered by date and meal type", func(t *testing.T) {
		if err := store.AddPlannedMeal(ctx, plan.ID, &models.PlannedMeal{
			Date: "2024-03-04", MealType: models.MealLunch, RecipeRef: "Salad", Servings: 1,
		}); err != nil {
			t.Fatalf("AddPlannedMeal failed: %v", err)
		}

		got, err := store.GetMealPlan(ctx, plan.ID)
		if err != nil {
			t.Fatalf("GetMealPlan failed: %v", err)
		}
		want := []string{"Salad", "Oats", "Soup"}
		refs := got.RecipeRefs()
		if len(refs) != len(want) {
			t.Fatalf("refs = %v, want %v", refs, want)
		}
		for i := range want {
			if refs[i] != want[i] {
				t.Errorf("refs[%d] = %q, want %q", i, refs[i], want[i])
			}
		}
	})

	t.Run("remove meal", func(t *testing.T) {
		if err := store.RemovePlannedMeal(ctx, plan.ID, plan.Meals[0].ID); err != nil {
			t.Fatalf("RemovePlannedMeal failed: %v", err)
		}
		err := store.RemovePlannedMeal(ctx, plan.ID, plan.Meals[0].ID)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("shopping list replace and purchase", func(t *testing.T) {
		items := []models.ShoppingListItem{
			{ID: "item-1", ShoppingListEntry: models.ShoppingListEntry{Name: "Onion", Amount: "2", Category: models.CategoryProduce, SourceRecipes: []string{"Soup"}}},
			{ID: "item-2", ShoppingListEntry: models.ShoppingListEntry{Name: "Salt", Amount: models.AmountToTaste, Category: models.CategoryPantry}},
		}
		if err := store.ReplaceShoppingList(ctx, plan.ID, items); err != nil {
			t.Fatalf("ReplaceShoppingList failed: %v", err)
		}
		if err := store.SetShoppingItemPurchased(ctx, plan.ID, "item-2", true); err != nil {
			t.Fatalf("SetShoppingItemPurchased failed: %v", err)
		}
		if err := store.SetShoppingItemPurchased(ctx, plan.ID, "missing", true); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound for unknown item, got %v", err)
		}

		got, err := store.GetMealPlan(ctx, plan.ID)
		if err != nil {
			t.Fatalf("GetMealPlan failed: %v", err)
		}
		if len(got.ShoppingList) != 2 {
			t.Fatalf("expected 2 items, got %d", len(got.ShoppingList))
		}
		if got.ShoppingList[0].Name != "Onion" || got.ShoppingList[0].SourceRecipes[0] != "Soup" {
			t.Errorf("first item mismatch: %+v", got.ShoppingList[0])
		}
		if got.ShoppingList[0].Purchased || !got.ShoppingList[1].Purchased {
			t.Errorf("purchased flags wrong: %+v", got.ShoppingList)
		}
	})

	t.Run("list and delete", func(t *testing.T) {
		plans, err := store.ListMealPlans(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListMealPlans failed: %v", err)
		}
		if len(plans) != 1 {
			t.Fatalf("expected 1 plan, got %d", len(plans))
		}

		if err := store.DeleteMealPlan(ctx, plan.ID); err != nil {
			t.Fatalf("DeleteMealPlan failed: %v", err)
		}
		if _, err := store.GetMealPlan(ctx, plan.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestCollections(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := createTestUser(t, store, "alice@example.com")
	soup := createTestRecipe(t, store, alice.ID, "Soup", true)
	bread := createTestRecipe(t, store, alice.ID, "Bread", true)

	c := &models.Collection{OwnerID: alice.ID, Name: "Favourites"}
	if err := store.CreateCollection(ctx, c); err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}
	hidden := &models.Collection{OwnerID: alice.ID, Name: "Hidden", IsPublic: false}
	if err := store.CreateCollection(ctx, hidden); err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}
	c.IsPublic = true
	if err := store.UpdateCollection(ctx, c); err != nil {
		t.Fatalf("UpdateCollection failed: %v", err)
	}

	for _, id := range []string{bread.ID, soup.ID} {
		if err := store.AddRecipeToCollection(ctx, c.ID, id); err != nil {
			t.Fatalf("AddRecipeToCollection failed: %v", err)
		}
	}
	if err := store.AddRecipeToCollection(ctx, c.ID, soup.ID); !errors.Is(err, storage.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	got, err := store.GetCollection(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetCollection failed: %v", err)
	}
	if len(got.RecipeIDs) != 2 || got.RecipeIDs[0] != bread.ID {
		t.Errorf("RecipeIDs = %v, want [%s %s]", got.RecipeIDs, bread.ID, soup.ID)
	}

	public, err := store.ListCollections(ctx, alice.ID, false)
	if err != nil {
		t.Fatalf("ListCollections failed: %v", err)
	}
	if len(public) != 1 || public[0].ID != c.ID {
		t.Errorf("expected only the public collection, got %d", len(public))
	}
	all, err := store.ListCollections(ctx, alice.ID, true)
	if err != nil {
		t.Fatalf("ListCollections failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 collections, got %d", len(all))
	}

	// Deleting a recipe drops it from collections
	if err := store.DeleteRecipe(ctx, bread.ID); err != nil {
		t.Fatalf("DeleteRecipe failed: %v", err)
	}
	got, err = store.GetCollection(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetCollection failed: %v", err)
	}
	if len(got.RecipeIDs) != 1 || got.RecipeIDs[0] != soup.ID {
		t.Errorf("RecipeIDs after delete = %v", got.RecipeIDs)
	}

	if err := store.RemoveRecipeFromCollection(ctx, c.ID, soup.ID); err != nil {
		t.Fatalf("RemoveRecipeFromCollection failed: %v", err)
	}
	if err := store.DeleteCollection(ctx, c.ID); err != nil {
		t.Fatalf("DeleteCollection failed: %v", err)
	}
	if _, err := store.GetCollection(ctx, c.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
