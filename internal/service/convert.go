package service

import (
	"github.com/smartchef/smartchef/internal/models"
	"github.com/smartchef/smartchef/pkg/api"
)

// toAPIUser converts a user. The email is only exposed to the user themselves.
func toAPIUser(u *models.User, self bool) *api.User {
	out := &api.User{
		Id:                 u.ID,
		DisplayName:        u.DisplayName,
		Bio:                u.Bio,
		AvatarUrl:          u.AvatarURL,
		DietaryPreferences: u.DietaryPreferences,
		CreatedAt:          u.CreatedAt,
	}
	if self {
		out.Email = u.Email
	}
	return out
}

func toAPIRecipe(r *models.Recipe) *api.Recipe {
	ingredients := make([]*api.Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = &api.Ingredient{Name: ing.Name, Amount: ing.Amount, Unit: ing.Unit}
	}

	out := &api.Recipe{
		Id:              r.ID,
		AuthorId:        r.AuthorID,
		Title:           r.Title,
		Description:     r.Description,
		Ingredients:     ingredients,
		Instructions:    r.Instructions,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Servings:        r.Servings,
		Cuisine:         r.Cuisine,
		Difficulty:      string(r.Difficulty),
		Tags:            r.Tags,
		ImageUrl:        r.ImageURL,
		SourceUrl:       r.SourceURL,
		IsPublic:        r.IsPublic,
		AverageRating:   r.AverageRating,
		RatingCount:     r.RatingCount,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.Nutrition != (models.Nutrition{}) {
		out.Nutrition = &api.Nutrition{
			Calories: r.Nutrition.Calories,
			ProteinG: r.Nutrition.ProteinG,
			CarbsG:   r.Nutrition.CarbsG,
			FatG:     r.Nutrition.FatG,
		}
	}
	return out
}

func toAPIRecipes(recipes []*models.Recipe) []*api.Recipe {
	out := make([]*api.Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = toAPIRecipe(r)
	}
	return out
}

// fromRecipeInput copies the editable fields of in onto r.
func fromRecipeInput(r *models.Recipe, in *api.RecipeInput) {
	r.Title = in.Title
	r.Description = in.Description
	r.Ingredients = make([]models.Ingredient, 0, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		if ing == nil {
			continue
		}
		r.Ingredients = append(r.Ingredients, models.Ingredient{Name: ing.Name, Amount: ing.Amount, Unit: ing.Unit})
	}
	r.Instructions = append([]string(nil), in.Instructions...)
	r.Nutrition = models.Nutrition{}
	if in.Nutrition != nil {
		r.Nutrition = models.Nutrition{
			Calories: in.Nutrition.Calories,
			ProteinG: in.Nutrition.ProteinG,
			CarbsG:   in.Nutrition.CarbsG,
			FatG:     in.Nutrition.FatG,
		}
	}
	r.PrepTimeMinutes = in.PrepTimeMinutes
	r.CookTimeMinutes = in.CookTimeMinutes
	r.Servings = in.Servings
	r.Cuisine = in.Cuisine
	r.Difficulty = models.Difficulty(in.Difficulty)
	r.Tags = append([]string(nil), in.Tags...)
	r.ImageURL = in.ImageUrl
	r.IsPublic = in.IsPublic
}

func toAPIRating(r *models.Rating) *api.Rating {
	return &api.Rating{
		RecipeId:  r.RecipeID,
		UserId:    r.UserID,
		Score:     r.Score,
		Comment:   r.Comment,
		UpdatedAt: r.UpdatedAt,
	}
}

func toAPIMeal(m models.PlannedMeal) *api.PlannedMeal {
	return &api.PlannedMeal{
		Id:        m.ID,
		Date:      m.Date,
		MealType:  string(m.MealType),
		RecipeRef: m.RecipeRef,
		Servings:  m.Servings,
	}
}

func toAPIItem(item models.ShoppingListItem) *api.ShoppingListItem {
	sources := item.SourceRecipes
	if sources == nil {
		sources = []string{}
	}
	return &api.ShoppingListItem{
		Id:            item.ID,
		Name:          item.Name,
		Amount:        item.Amount,
		Unit:          item.Unit,
		Category:      string(item.Category),
		SourceRecipes: sources,
		Purchased:     item.Purchased,
	}
}

func toAPIItems(items []models.ShoppingListItem) []*api.ShoppingListItem {
	out := make([]*api.ShoppingListItem, len(items))
	for i, item := range items {
		out[i] = toAPIItem(item)
	}
	return out
}

func toAPIPlan(p *models.MealPlan) *api.MealPlan {
	meals := make([]*api.PlannedMeal, len(p.Meals))
	for i, m := range p.Meals {
		meals[i] = toAPIMeal(m)
	}
	return &api.MealPlan{
		Id:           p.ID,
		OwnerId:      p.OwnerID,
		Name:         p.Name,
		WeekStart:    p.WeekStart,
		Meals:        meals,
		ShoppingList: toAPIItems(p.ShoppingList),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toAPICollection(c *models.Collection) *api.Collection {
	ids := c.RecipeIDs
	if ids == nil {
		ids = []string{}
	}
	return &api.Collection{
		Id:          c.ID,
		OwnerId:     c.OwnerID,
		Name:        c.Name,
		Description: c.Description,
		IsPublic:    c.IsPublic,
		RecipeIds:   ids,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
