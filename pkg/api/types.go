// Package api defines the request and response messages of the SmartChef
// RPC services. Messages are plain structs encoded as JSON on the wire.
package api

// User is the public view of an account.
type User struct {
	Id                 string   `json:"id"`
	Email              string   `json:"email,omitempty"`
	DisplayName        string   `json:"displayName"`
	Bio                string   `json:"bio,omitempty"`
	AvatarUrl          string   `json:"avatarUrl,omitempty"`
	DietaryPreferences []string `json:"dietaryPreferences,omitempty"`
	CreatedAt          int64    `json:"createdAt"`
}

type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit,omitempty"`
}

// Nutrition is per serving.
type Nutrition struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"proteinG"`
	CarbsG   float64 `json:"carbsG"`
	FatG     float64 `json:"fatG"`
}

type Recipe struct {
	Id              string        `json:"id"`
	AuthorId        string        `json:"authorId"`
	Title           string        `json:"title"`
	Description     string        `json:"description,omitempty"`
	Ingredients     []*Ingredient `json:"ingredients"`
	Instructions    []string      `json:"instructions"`
	Nutrition       *Nutrition    `json:"nutrition,omitempty"`
	PrepTimeMinutes int           `json:"prepTimeMinutes"`
	CookTimeMinutes int           `json:"cookTimeMinutes"`
	Servings        int           `json:"servings"`
	Cuisine         string        `json:"cuisine,omitempty"`
	Difficulty      string        `json:"difficulty"`
	Tags            []string      `json:"tags,omitempty"`
	ImageUrl        string        `json:"imageUrl,omitempty"`
	SourceUrl       string        `json:"sourceUrl,omitempty"`
	IsPublic        bool          `json:"isPublic"`
	AverageRating   float64       `json:"averageRating"`
	RatingCount     int           `json:"ratingCount"`
	CreatedAt       int64         `json:"createdAt"`
	UpdatedAt       int64         `json:"updatedAt"`
}

type Rating struct {
	RecipeId  string `json:"recipeId"`
	UserId    string `json:"userId"`
	Score     int    `json:"score"`
	Comment   string `json:"comment,omitempty"`
	UpdatedAt int64  `json:"updatedAt"`
}

type PlannedMeal struct {
	Id        string `json:"id"`
	Date      string `json:"date"`
	MealType  string `json:"mealType"`
	RecipeRef string `json:"recipeRef"`
	Servings  int    `json:"servings"`
}

type ShoppingListItem struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Amount        string   `json:"amount"`
	Unit          string   `json:"unit,omitempty"`
	Category      string   `json:"category"`
	SourceRecipes []string `json:"sourceRecipes"`
	Purchased     bool     `json:"purchased"`
}

type MealPlan struct {
	Id           string              `json:"id"`
	OwnerId      string              `json:"ownerId"`
	Name         string              `json:"name"`
	WeekStart    string              `json:"weekStart"`
	Meals        []*PlannedMeal      `json:"meals"`
	ShoppingList []*ShoppingListItem `json:"shoppingList"`
	CreatedAt    int64               `json:"createdAt"`
	UpdatedAt    int64               `json:"updatedAt"`
}

type Collection struct {
	Id          string   `json:"id"`
	OwnerId     string   `json:"ownerId"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	IsPublic    bool     `json:"isPublic"`
	RecipeIds   []string `json:"recipeIds"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   int64    `json:"updatedAt"`
}
