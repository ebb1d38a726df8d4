package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/smartchef/smartchef/internal/middleware"
	"github.com/smartchef/smartchef/internal/models"
	"github.com/smartchef/smartchef/internal/shopping"
	"github.com/smartchef/smartchef/internal/storage"
	"github.com/smartchef/smartchef/pkg/api"
	"github.com/smartchef/smartchef/pkg/api/apiconnect"
)

var _ apiconnect.MealPlanServiceHandler = (*MealPlanService)(nil)

// PlanStore is the storage a MealPlanService needs: plans plus recipe lookup.
type PlanStore interface {
	storage.MealPlanStore
	FindRecipe(ctx context.Context, ref, viewerID string) (*models.Recipe, error)
}

// MealPlanOptions tunes a MealPlanService.
type MealPlanOptions struct {
	// LookupConcurrency bounds parallel recipe lookups during aggregation.
	LookupConcurrency int
	// Metrics, when set, observes generated list sizes and unresolved references.
	Metrics *middleware.Metrics
}

// MealPlanService manages weekly meal plans and their shopping lists. Every
// method requires authentication and only the plan owner may use a plan.
type MealPlanService struct {
	store  PlanStore
	opts   MealPlanOptions
	logger *slog.Logger
}

// NewMealPlanService creates a MealPlanService.
func NewMealPlanService(store PlanStore, opts MealPlanOptions, logger *slog.Logger) *MealPlanService {
	return &MealPlanService{store: store, opts: opts, logger: logger}
}

// ownedPlan loads a plan with its meals and list and checks the caller owns it.
func (s *MealPlanService) ownedPlan(ctx context.Context, planID string) (*models.MealPlan, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if planID == "" {
		return nil, errMissingID
	}
	plan, err := s.store.GetMealPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.OwnerID != userID {
		s.logger.Warn("Meal plan access denied", "plan_id", planID, "user_id", userID)
		return nil, errNotOwner
	}
	return plan, nil
}

func validatePlanFields(name, weekStart string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", models.ErrTitleRequired
	}
	if len(name) > models.MaxTitleLength {
		return "", models.ErrTitleTooLong
	}
	if !models.ValidDate(weekStart) {
		return "", models.ErrInvalidDate
	}
	return name, nil
}

// CreateMealPlan creates an empty plan for the caller.
func (s *MealPlanService) CreateMealPlan(ctx context.Context, req *connect.Request[api.CreateMealPlanRequest]) (*connect.Response[api.CreateMealPlanResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CreateMealPlan request received", "user_id", userID, "week_start", req.Msg.WeekStart)

	name, err := validatePlanFields(req.Msg.Name, req.Msg.WeekStart)
	if err != nil {
		return nil, toConnectError(err)
	}

	plan := &models.MealPlan{OwnerID: userID, Name: name, WeekStart: req.Msg.WeekStart}
	if err := s.store.CreateMealPlan(ctx, plan); err != nil {
		s.logger.Error("CreateMealPlan failed", "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Meal plan created", "plan_id", plan.ID)
	return connect.NewResponse(&api.CreateMealPlanResponse{Plan: toAPIPlan(plan)}), nil
}

// GetMealPlan returns a plan with its meals and stored shopping list.
func (s *MealPlanService) GetMealPlan(ctx context.Context, req *connect.Request[api.GetMealPlanRequest]) (*connect.Response[api.GetMealPlanResponse], error) {
	plan, err := s.ownedPlan(ctx, req.Msg.PlanId)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetMealPlanResponse{Plan: toAPIPlan(plan)}), nil
}

// ListMealPlans returns the caller's plans, most recent week first.
func (s *MealPlanService) ListMealPlans(ctx context.Context, req *connect.Request[api.ListMealPlansRequest]) (*connect.Response[api.ListMealPlansResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	plans, err := s.store.ListMealPlans(ctx, userID)
	if err != nil {
		s.logger.Error("ListMealPlans failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.MealPlan, len(plans))
	for i, p := range plans {
		out[i] = toAPIPlan(p)
	}
	s.logger.Info("ListMealPlans successful", "user_id", userID, "count", len(plans))
	return connect.NewResponse(&api.ListMealPlansResponse{Plans: out}), nil
}

// UpdateMealPlan renames a plan or moves its week.
func (s *MealPlanService) UpdateMealPlan(ctx context.Context, req *connect.Request[api.UpdateMealPlanRequest]) (*connect.Response[api.UpdateMealPlanResponse], error) {
	plan, err := s.ownedPlan(ctx, req.Msg.PlanId)
	if err != nil {
		return nil, toConnectError(err)
	}
	name, err := validatePlanFields(req.Msg.Name, req.Msg.WeekStart)
	if err != nil {
		return nil, toConnectError(err)
	}

	plan.Name = name
	plan.WeekStart = req.Msg.WeekStart
	if err := s.store.UpdateMealPlan(ctx, plan); err != nil {
		s.logger.Error("UpdateMealPlan failed", "plan_id", plan.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Meal plan updated", "plan_id", plan.ID)
	return connect.NewResponse(&api.UpdateMealPlanResponse{Plan: toAPIPlan(plan)}), nil
}

// DeleteMealPlan removes a plan with its meals and shopping list.
func (s *MealPlanService) DeleteMealPlan(ctx context.Context, req *connect.Request[api.DeleteMealPlanRequest]) (*connect.Response[api.DeleteMealPlanResponse], error) {
	plan, err := s.ownedPlan(ctx, req.Msg.PlanId)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.DeleteMealPlan(ctx, plan.ID); err != nil {
		s.logger.Error("DeleteMealPlan failed", "plan_id", plan.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Meal plan deleted", "plan_id", plan.ID)
	return connect.NewResponse(&api.DeleteMealPlanResponse{}), nil
}

// AddMeal schedules a recipe reference on a date and meal slot. The reference
// is not resolved here; unknown recipes surface when the list is generated.
func (s *MealPlanService) AddMeal(ctx context.Context, req *connect.Request[api.AddMealRequest]) (*connect.Response[api.AddMealResponse], error) {
	plan, err := s.ownedPlan(ctx, req.Msg.PlanId)
	if err != nil {
		return nil, toConnectError(err)
	}

	meal := &models.PlannedMeal{
		Date:      req.Msg.Date,
		MealType:  models.MealType(strings.ToLower(strings.TrimSpace(req.Msg.MealType))),
		RecipeRef: strings.TrimSpace(req.Msg.RecipeRef),
		Servings:  req.Msg.Servings,
	}
	if meal.Servings == 0 {
		meal.Servings = 1
	}
	if err := meal.Validate(); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.AddPlannedMeal(ctx, plan.ID, meal); err != nil {
		s.logger.Error("AddMeal failed", "plan_id", plan.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Meal added", "plan_id", plan.ID, "meal_id", meal.ID, "recipe_ref", meal.RecipeRef)
	return connect.NewResponse(&api.AddMealResponse{Meal: toAPIMeal(*meal)}), nil
}

// RemoveMeal deletes a meal slot. The stored shopping list is left as is
// until it is regenerated.
func (s *MealPlanService) RemoveMeal(ctx context.Context, req *connect.Request[api.RemoveMealRequest]) (*connect.Response[api.RemoveMealResponse], error) {
	plan, err := s.ownedPlan(ctx, req.Msg.PlanId)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.RemovePlannedMeal(ctx, plan.ID, req.Msg.MealId); err != nil {
		s.logger.Warn("RemoveMeal failed", "plan_id", plan.ID, "meal_id", req.Msg.MealId, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Meal removed", "plan_id", plan.ID, "meal_id", req.Msg.MealId)
	return connect.NewResponse(&api.RemoveMealResponse{}), nil
}

// GenerateShoppingList aggregates the ingredients of every planned recipe and
// overwrites the stored list. Purchased flags survive for entries whose name,
// amount and unit did not change.
func (s *MealPlanService) GenerateShoppingList(ctx context.Context, req *connect.Request[api.GenerateShoppingListRequest]) (*connect.Response[api.GenerateShoppingListResponse], error) {
	plan, err := s.ownedPlan(ctx, req.Msg.PlanId)
	if err != nil {
		return nil, toConnectError(err)
	}
	refs := plan.RecipeRefs()
	s.logger.Info("GenerateShoppingList request received", "plan_id", plan.ID, "meals", len(refs))

	// References resolve against recipes the plan owner can see
	lookup := shopping.LookupFunc(func(ctx context.Context, ref string) (*models.Recipe, error) {
		return s.store.FindRecipe(ctx, ref, plan.OwnerID)
	})
	result, err := shopping.NewAggregator(lookup, s.opts.LookupConcurrency, s.logger).Aggregate(ctx, refs)
	if err != nil {
		s.logger.Warn("Shopping list aggregation aborted", "plan_id", plan.ID, "error", err)
		return nil, toConnectError(err)
	}

	items := shopping.BuildItems(plan.ID, result.Entries, plan.ShoppingList)
	if err := s.store.ReplaceShoppingList(ctx, plan.ID, items); err != nil {
		s.logger.Error("Failed to store shopping list", "plan_id", plan.ID, "error", err)
		return nil, toConnectError(err)
	}

	if m := s.opts.Metrics; m != nil {
		m.ShoppingItems.Observe(float64(len(items)))
		m.UnresolvedRefs.Add(float64(len(result.Unresolved)))
	}
	s.logger.Info("Shopping list generated",
		"plan_id", plan.ID,
		"items", len(items),
		"unresolved", len(result.Unresolved),
	)
	return connect.NewResponse(&api.GenerateShoppingListResponse{
		Items:          toAPIItems(items),
		UnresolvedRefs: result.Unresolved,
	}), nil
}

// GetShoppingList returns the stored list without regenerating it.
func (s *MealPlanService) GetShoppingList(ctx context.Context, req *connect.Request[api.GetShoppingListRequest]) (*connect.Response[api.GetShoppingListResponse], error) {
	plan, err := s.ownedPlan(ctx, req.Msg.PlanId)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetShoppingListResponse{Items: toAPIItems(plan.ShoppingList)}), nil
}

// SetItemPurchased checks or unchecks one item of the stored list.
func (s *MealPlanService) SetItemPurchased(ctx context.Context, req *connect.Request[api.SetItemPurchasedRequest]) (*connect.Response[api.SetItemPurchasedResponse], error) {
	plan, err := s.ownedPlan(ctx, req.Msg.PlanId)
	if err != nil {
		return nil, toConnectError(err)
	}

	var item *models.ShoppingListItem
	for i := range plan.ShoppingList {
		if plan.ShoppingList[i].ID == req.Msg.ItemId {
			item = &plan.ShoppingList[i]
			break
		}
	}
	if item == nil {
		return nil, connect.NewError(connect.CodeNotFound, storage.ErrNotFound)
	}

	if err := s.store.SetShoppingItemPurchased(ctx, plan.ID, item.ID, req.Msg.Purchased); err != nil {
		s.logger.Error("SetItemPurchased failed", "plan_id", plan.ID, "item_id", item.ID, "error", err)
		return nil, toConnectError(err)
	}
	item.Purchased = req.Msg.Purchased

	s.logger.Info("Shopping item updated", "plan_id", plan.ID, "item_id", item.ID, "purchased", item.Purchased)
	return connect.NewResponse(&api.SetItemPurchasedResponse{Item: toAPIItem(*item)}), nil
}

// ExportShoppingList renders the stored list as plain text.
func (s *MealPlanService) ExportShoppingList(ctx context.Context, req *connect.Request[api.ExportShoppingListRequest]) (*connect.Response[api.ExportShoppingListResponse], error) {
	text, err := s.ExportText(ctx, req.Msg.PlanId, req.Msg.Grouped)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.ExportShoppingListResponse{Text: text}), nil
}

// ExportText renders the caller's stored list for planID. Errors carry Connect codes.
func (s *MealPlanService) ExportText(ctx context.Context, planID string, grouped bool) (string, error) {
	plan, err := s.ownedPlan(ctx, planID)
	if err != nil {
		return "", toConnectError(err)
	}
	s.logger.Info("Shopping list exported", "plan_id", plan.ID, "items", len(plan.ShoppingList), "grouped", grouped)
	return shopping.Export(plan.ShoppingList, grouped), nil
}
