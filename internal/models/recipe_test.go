package models

import (
	"errors"
	"strings"
	"testing"
)

func validRecipe() *Recipe {
	return &Recipe{
		Title:        "  Tomato Soup ",
		Ingredients:  []Ingredient{{Name: "Tomato", Amount: "4"}, {Name: " "}, {Name: "Salt", Amount: "to taste"}},
		Instructions: []string{"Chop", "  ", "Simmer"},
		Servings:     2,
		Tags:         []string{"Soup", "soup", " vegan "},
	}
}

func TestRecipeNormalize(t *testing.T) {
	r := validRecipe()
	r.Normalize()

	if r.Title != "Tomato Soup" {
		t.Errorf("Title = %q, want %q", r.Title, "Tomato Soup")
	}
	if r.Difficulty != DifficultyMedium {
		t.Errorf("Difficulty = %q, want default %q", r.Difficulty, DifficultyMedium)
	}
	if len(r.Ingredients) != 2 {
		t.Errorf("expected blank ingredient line to be dropped, got %d ingredients", len(r.Ingredients))
	}
	if len(r.Instructions) != 2 {
		t.Errorf("expected blank instruction to be dropped, got %v", r.Instructions)
	}
	if strings.Join(r.Tags, ",") != "soup,vegan" {
		t.Errorf("Tags = %v, want [soup vegan]", r.Tags)
	}
}

func TestRecipeValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Recipe)
		wantErr error
	}{
		{"valid", func(r *Recipe) {}, nil},
		{"missing title", func(r *Recipe) { r.Title = "" }, ErrTitleRequired},
		{"long title", func(r *Recipe) { r.Title = strings.Repeat("a", MaxTitleLength+1) }, ErrTitleTooLong},
		{"no ingredients", func(r *Recipe) { r.Ingredients = nil }, ErrNoIngredients},
		{"nameless ingredient", func(r *Recipe) { r.Ingredients = []Ingredient{{Amount: "1"}} }, ErrIngredientNameless},
		{"no instructions", func(r *Recipe) { r.Instructions = nil }, ErrNoInstructions},
		{"zero servings", func(r *Recipe) { r.Servings = 0 }, ErrInvalidServings},
		{"negative time", func(r *Recipe) { r.CookTimeMinutes = -5 }, ErrInvalidTime},
		{"bad difficulty", func(r *Recipe) { r.Difficulty = "extreme" }, ErrInvalidDifficulty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Recipe{
				Title:        "Pancakes",
				Ingredients:  []Ingredient{{Name: "Flour", Amount: "200", Unit: "g"}},
				Instructions: []string{"Mix", "Fry"},
				Servings:     4,
				Difficulty:   DifficultyEasy,
			}
			tt.mutate(r)
			err := r.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecipeVisibleTo(t *testing.T) {
	r := &Recipe{AuthorID: "alice", IsPublic: false}
	if !r.VisibleTo("alice") {
		t.Error("author should see private recipe")
	}
	if r.VisibleTo("bob") || r.VisibleTo("") {
		t.Error("private recipe must be hidden from others")
	}
	r.IsPublic = true
	if !r.VisibleTo("") {
		t.Error("public recipe should be visible anonymously")
	}
}

func TestPlannedMealValidate(t *testing.T) {
	m := PlannedMeal{Date: "2024-03-04", MealType: MealDinner, RecipeRef: "Tomato Soup", Servings: 2}
	if err := m.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := m
	bad.Date = "04/03/2024"
	if !errors.Is(bad.Validate(), ErrInvalidDate) {
		t.Error("expected ErrInvalidDate")
	}
	bad = m
	bad.MealType = "brunch"
	if !errors.Is(bad.Validate(), ErrInvalidMealType) {
		t.Error("expected ErrInvalidMealType")
	}
	bad = m
	bad.Servings = 0
	if !errors.Is(bad.Validate(), ErrInvalidServings) {
		t.Error("expected ErrInvalidServings")
	}
}
