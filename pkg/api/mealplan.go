package api

type CreateMealPlanRequest struct {
	Name      string `json:"name"`
	WeekStart string `json:"weekStart"`
}

type CreateMealPlanResponse struct {
	Plan *MealPlan `json:"plan"`
}

type GetMealPlanRequest struct {
	PlanId string `json:"planId"`
}

type GetMealPlanResponse struct {
	Plan *MealPlan `json:"plan"`
}

type ListMealPlansRequest struct{}

type ListMealPlansResponse struct {
	Plans []*MealPlan `json:"plans"`
}

type UpdateMealPlanRequest struct {
	PlanId    string `json:"planId"`
	Name      string `json:"name"`
	WeekStart string `json:"weekStart"`
}

type UpdateMealPlanResponse struct {
	Plan *MealPlan `json:"plan"`
}

type DeleteMealPlanRequest struct {
	PlanId string `json:"planId"`
}

type DeleteMealPlanResponse struct{}

type AddMealRequest struct {
	PlanId    string `json:"planId"`
	Date      string `json:"date"`
	MealType  string `json:"mealType"`
	RecipeRef string `json:"recipeRef"`
	Servings  int    `json:"servings"`
}

type AddMealResponse struct {
	Meal *PlannedMeal `json:"meal"`
}

type RemoveMealRequest struct {
	PlanId string `json:"planId"`
	MealId string `json:"mealId"`
}

type RemoveMealResponse struct{}

type GenerateShoppingListRequest struct {
	PlanId string `json:"planId"`
}

type GenerateShoppingListResponse struct {
	Items []*ShoppingListItem `json:"items"`
	// UnresolvedRefs lists planned recipe references that matched no visible recipe.
	UnresolvedRefs []string `json:"unresolvedRefs"`
}

type GetShoppingListRequest struct {
	PlanId string `json:"planId"`
}

type GetShoppingListResponse struct {
	Items []*ShoppingListItem `json:"items"`
}

type SetItemPurchasedRequest struct {
	PlanId    string `json:"planId"`
	ItemId    string `json:"itemId"`
	Purchased bool   `json:"purchased"`
}

type SetItemPurchasedResponse struct {
	Item *ShoppingListItem `json:"item"`
}

type ExportShoppingListRequest struct {
	PlanId  string `json:"planId"`
	Grouped bool   `json:"grouped,omitempty"`
}

type ExportShoppingListResponse struct {
	Text string `json:"text"`
}
