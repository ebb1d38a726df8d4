package api

// RecipeInput carries the user-editable fields of a recipe.
type RecipeInput struct {
	Title           string        `json:"title"`
	Description     string        `json:"description,omitempty"`
	Ingredients     []*Ingredient `json:"ingredients"`
	Instructions    []string      `json:"instructions"`
	Nutrition       *Nutrition    `json:"nutrition,omitempty"`
	PrepTimeMinutes int           `json:"prepTimeMinutes"`
	CookTimeMinutes int           `json:"cookTimeMinutes"`
	Servings        int           `json:"servings"`
	Cuisine         string        `json:"cuisine,omitempty"`
	Difficulty      string        `json:"difficulty,omitempty"`
	Tags            []string      `json:"tags,omitempty"`
	ImageUrl        string        `json:"imageUrl,omitempty"`
	IsPublic        bool          `json:"isPublic"`
}

type CreateRecipeRequest struct {
	Recipe *RecipeInput `json:"recipe"`
}

type CreateRecipeResponse struct {
	Recipe *Recipe `json:"recipe"`
}

type GetRecipeRequest struct {
	RecipeId string `json:"recipeId"`
}

type GetRecipeResponse struct {
	Recipe *Recipe `json:"recipe"`
}

type UpdateRecipeRequest struct {
	RecipeId string       `json:"recipeId"`
	Recipe   *RecipeInput `json:"recipe"`
}

type UpdateRecipeResponse struct {
	Recipe *Recipe `json:"recipe"`
}

type DeleteRecipeRequest struct {
	RecipeId string `json:"recipeId"`
}

type DeleteRecipeResponse struct{}

type ListRecipesRequest struct {
	Query           string `json:"query,omitempty"`
	Cuisine         string `json:"cuisine,omitempty"`
	Tag             string `json:"tag,omitempty"`
	Difficulty      string `json:"difficulty,omitempty"`
	MaxTotalMinutes int    `json:"maxTotalMinutes,omitempty"`
	AuthorId        string `json:"authorId,omitempty"`
	// Sort is one of newest, rating, title, quickest. Defaults to newest.
	Sort     string `json:"sort,omitempty"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
}

type ListRecipesResponse struct {
	Recipes    []*Recipe `json:"recipes"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	Total      int       `json:"total"`
	TotalPages int       `json:"totalPages"`
}

type RateRecipeRequest struct {
	RecipeId string `json:"recipeId"`
	Score    int    `json:"score"`
	Comment  string `json:"comment,omitempty"`
}

type RateRecipeResponse struct {
	AverageRating float64 `json:"averageRating"`
	RatingCount   int     `json:"ratingCount"`
}

type ListRatingsRequest struct {
	RecipeId string `json:"recipeId"`
}

type ListRatingsResponse struct {
	Ratings []*Rating `json:"ratings"`
}

type ImportRecipeRequest struct {
	Url      string `json:"url"`
	IsPublic bool   `json:"isPublic"`
}

type ImportRecipeResponse struct {
	Recipe *Recipe `json:"recipe"`
}
