package models

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty is the self-assessed effort level of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// MaxTitleLength bounds recipe and collection titles.
const MaxTitleLength = 200

var (
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = fmt.Errorf("title must be at most %d characters", MaxTitleLength)
	ErrNoIngredients      = errors.New("recipe must have at least one ingredient")
	ErrNoInstructions     = errors.New("recipe must have at least one instruction")
	ErrInvalidServings    = errors.New("servings must be positive")
	ErrInvalidTime        = errors.New("prep and cook times must not be negative")
	ErrInvalidDifficulty  = errors.New("difficulty must be easy, medium or hard")
	ErrIngredientNameless = errors.New("every ingredient needs a name")
)

// Ingredient is a single line of a recipe's ingredient list.
// Amount is kept as written: it may be numeric ("2", "1 1/2") or free text ("to taste").
type Ingredient struct {
	Name   string
	Amount string
	Unit   string
}

// Nutrition holds per-serving nutrition facts.
type Nutrition struct {
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// Recipe represents a recipe document.
type Recipe struct {
	// ID is the unique identifier for the recipe (UUID format).
	ID string

	// AuthorID is the ID of the user who created or imported the recipe.
	AuthorID string

	// Title is the human-readable name of the recipe.
	// Also used as a lookup key by planned meals that reference recipes by title.
	Title string

	// Description is an optional short summary.
	Description string

	// Ingredients are owned by the recipe and never shared between recipes.
	Ingredients []Ingredient

	// Instructions are the ordered preparation steps.
	Instructions []string

	// Nutrition is per serving.
	Nutrition Nutrition

	PrepTimeMinutes int
	CookTimeMinutes int

	// Servings is the number of portions the ingredient amounts yield.
	Servings int

	Cuisine    string
	Difficulty Difficulty
	Tags       []string

	// ImageURL is either user supplied or resolved from the static image table.
	ImageURL string

	// SourceURL is set for imported recipes.
	SourceURL string

	// IsPublic controls whether users other than the author can see the recipe.
	IsPublic bool

	// AverageRating is the mean of all rating scores, rounded to one decimal.
	AverageRating float64

	// RatingCount is the number of users who rated the recipe.
	RatingCount int

	CreatedAt int64
	UpdatedAt int64
}

// TotalTimeMinutes returns prep plus cook time.
func (r *Recipe) TotalTimeMinutes() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

// VisibleTo reports whether the given user may read the recipe.
func (r *Recipe) VisibleTo(userID string) bool {
	return r.IsPublic || (userID != "" && r.AuthorID == userID)
}

// Normalize trims user input and fills defaults before validation.
func (r *Recipe) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Cuisine = strings.ToLower(strings.TrimSpace(r.Cuisine))
	if r.Difficulty == "" {
		r.Difficulty = DifficultyMedium
	}
	r.Difficulty = Difficulty(strings.ToLower(string(r.Difficulty)))

	ingredients := r.Ingredients[:0]
	for _, ing := range r.Ingredients {
		ing.Name = strings.TrimSpace(ing.Name)
		ing.Amount = strings.TrimSpace(ing.Amount)
		ing.Unit = strings.TrimSpace(ing.Unit)
		if ing.Name == "" && ing.Amount == "" && ing.Unit == "" {
			continue
		}
		ingredients = append(ingredients, ing)
	}
	r.Ingredients = ingredients

	instructions := r.Instructions[:0]
	for _, step := range r.Instructions {
		if step = strings.TrimSpace(step); step != "" {
			instructions = append(instructions, step)
		}
	}
	r.Instructions = instructions

	tags := make([]string, 0, len(r.Tags))
	seen := make(map[string]bool, len(r.Tags))
	for _, tag := range r.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	r.Tags = tags
}

// Validate checks the recipe against the document rules.
func (r *Recipe) Validate() error {
	if r.Title == "" {
		return ErrTitleRequired
	}
	if len(r.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if len(r.Ingredients) == 0 {
		return ErrNoIngredients
	}
	for _, ing := range r.Ingredients {
		if ing.Name == "" {
			return ErrIngredientNameless
		}
	}
	if len(r.Instructions) == 0 {
		return ErrNoInstructions
	}
	if r.Servings <= 0 {
		return ErrInvalidServings
	}
	if r.PrepTimeMinutes < 0 || r.CookTimeMinutes < 0 {
		return ErrInvalidTime
	}
	switch r.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return ErrInvalidDifficulty
	}
	return nil
}

// Rating is one user's score for a recipe. A user has at most one rating per recipe.
type Rating struct {
	RecipeID string
	UserID   string

	// Score is between 1 and 5 inclusive.
	Score int

	Comment   string
	CreatedAt int64
	UpdatedAt int64
}

// ValidScore reports whether score is an accepted rating value.
func ValidScore(score int) bool {
	return score >= 1 && score <= 5
}
