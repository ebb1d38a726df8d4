package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/smartchef/smartchef/internal/calculator"
	"github.com/smartchef/smartchef/internal/images"
	"github.com/smartchef/smartchef/internal/importer"
	"github.com/smartchef/smartchef/internal/middleware"
	"github.com/smartchef/smartchef/internal/models"
	"github.com/smartchef/smartchef/internal/storage"
	"github.com/smartchef/smartchef/pkg/api"
	"github.com/smartchef/smartchef/pkg/api/apiconnect"
)

var _ apiconnect.RecipeServiceHandler = (*RecipeService)(nil)

// RecipeService serves recipe documents. Reads are open to anonymous callers;
// writes need an authenticated user.
type RecipeService struct {
	store    storage.RecipeStore
	images   *images.Table
	importer *importer.Importer
	logger   *slog.Logger
}

// NewRecipeService creates a RecipeService. A nil importer disables ImportRecipe.
func NewRecipeService(store storage.RecipeStore, imageTable *images.Table, imp *importer.Importer, logger *slog.Logger) *RecipeService {
	return &RecipeService{store: store, images: imageTable, importer: imp, logger: logger}
}

// prepare normalizes, validates and fills the stock image of a recipe about to be saved.
func (s *RecipeService) prepare(r *models.Recipe) error {
	r.Normalize()
	if err := r.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.ImageURL) == "" && s.images != nil {
		r.ImageURL = s.images.Lookup(r.Title)
	}
	return nil
}

// CreateRecipe stores a new recipe authored by the caller.
func (s *RecipeService) CreateRecipe(ctx context.Context, req *connect.Request[api.CreateRecipeRequest]) (*connect.Response[api.CreateRecipeResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.Recipe == nil {
		return nil, toConnectError(errMissingInput)
	}
	s.logger.Info("CreateRecipe request received",
		"user_id", userID,
		"title", req.Msg.Recipe.Title,
		"ingredients_count", len(req.Msg.Recipe.Ingredients),
	)

	recipe := &models.Recipe{AuthorID: userID}
	fromRecipeInput(recipe, req.Msg.Recipe)
	if err := s.prepare(recipe); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreateRecipe(ctx, recipe); err != nil {
		s.logger.Error("CreateRecipe failed", "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Recipe created", "recipe_id", recipe.ID)
	return connect.NewResponse(&api.CreateRecipeResponse{Recipe: toAPIRecipe(recipe)}), nil
}

// loadVisible fetches a recipe the caller may read. Private recipes of other
// users are reported as not found.
func (s *RecipeService) loadVisible(ctx context.Context, recipeID, viewerID string) (*models.Recipe, error) {
	if recipeID == "" {
		return nil, errMissingID
	}
	recipe, err := s.store.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if !recipe.VisibleTo(viewerID) {
		return nil, storage.ErrNotFound
	}
	return recipe, nil
}

// loadAuthored fetches a recipe the caller wrote.
func (s *RecipeService) loadAuthored(ctx context.Context, recipeID, userID string) (*models.Recipe, error) {
	recipe, err := s.loadVisible(ctx, recipeID, userID)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != userID {
		return nil, errNotAuthor
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID.
func (s *RecipeService) GetRecipe(ctx context.Context, req *connect.Request[api.GetRecipeRequest]) (*connect.Response[api.GetRecipeResponse], error) {
	s.logger.Info("GetRecipe request received", "recipe_id", req.Msg.RecipeId)

	recipe, err := s.loadVisible(ctx, req.Msg.RecipeId, middleware.GetUserID(ctx))
	if err != nil {
		s.logger.Warn("GetRecipe failed", "recipe_id", req.Msg.RecipeId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetRecipeResponse{Recipe: toAPIRecipe(recipe)}), nil
}

// UpdateRecipe replaces the editable fields of a recipe. Only the author may do so.
func (s *RecipeService) UpdateRecipe(ctx context.Context, req *connect.Request[api.UpdateRecipeRequest]) (*connect.Response[api.UpdateRecipeResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.Recipe == nil {
		return nil, toConnectError(errMissingInput)
	}
	s.logger.Info("UpdateRecipe request received", "user_id", userID, "recipe_id", req.Msg.RecipeId)

	recipe, err := s.loadAuthored(ctx, req.Msg.RecipeId, userID)
	if err != nil {
		s.logger.Warn("UpdateRecipe rejected", "recipe_id", req.Msg.RecipeId, "error", err)
		return nil, toConnectError(err)
	}

	fromRecipeInput(recipe, req.Msg.Recipe)
	if err := s.prepare(recipe); err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.UpdateRecipe(ctx, recipe); err != nil {
		s.logger.Error("UpdateRecipe failed", "recipe_id", recipe.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Recipe updated", "recipe_id", recipe.ID)
	return connect.NewResponse(&api.UpdateRecipeResponse{Recipe: toAPIRecipe(recipe)}), nil
}

// DeleteRecipe removes a recipe. Meal plans that reference it keep the weak
// reference and skip it on the next aggregation.
func (s *RecipeService) DeleteRecipe(ctx context.Context, req *connect.Request[api.DeleteRecipeRequest]) (*connect.Response[api.DeleteRecipeResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("DeleteRecipe request received", "user_id", userID, "recipe_id", req.Msg.RecipeId)

	if _, err := s.loadAuthored(ctx, req.Msg.RecipeId, userID); err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.DeleteRecipe(ctx, req.Msg.RecipeId); err != nil {
		s.logger.Error("DeleteRecipe failed", "recipe_id", req.Msg.RecipeId, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Recipe deleted", "recipe_id", req.Msg.RecipeId)
	return connect.NewResponse(&api.DeleteRecipeResponse{}), nil
}

// ListRecipes searches the recipes visible to the caller.
func (s *RecipeService) ListRecipes(ctx context.Context, req *connect.Request[api.ListRecipesRequest]) (*connect.Response[api.ListRecipesResponse], error) {
	msg := req.Msg
	sort, err := parseSort(msg.Sort)
	if err != nil {
		return nil, toConnectError(err)
	}
	page := calculator.NewPage(msg.Page, msg.PageSize)

	recipes, total, err := s.store.ListRecipes(ctx, storage.RecipeFilter{
		Query:           strings.TrimSpace(msg.Query),
		Cuisine:         strings.TrimSpace(msg.Cuisine),
		Tag:             strings.TrimSpace(msg.Tag),
		Difficulty:      models.Difficulty(strings.ToLower(strings.TrimSpace(msg.Difficulty))),
		MaxTotalMinutes: msg.MaxTotalMinutes,
		AuthorID:        msg.AuthorId,
		ViewerID:        middleware.GetUserID(ctx),
		Sort:            sort,
		Limit:           page.Size,
		Offset:          page.Offset(),
	})
	if err != nil {
		s.logger.Error("ListRecipes failed", "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("ListRecipes successful", "count", len(recipes), "total", total)
	return connect.NewResponse(&api.ListRecipesResponse{
		Recipes:    toAPIRecipes(recipes),
		Page:       page.Number,
		PageSize:   page.Size,
		Total:      total,
		TotalPages: page.TotalPages(total),
	}), nil
}

func parseSort(s string) (storage.RecipeSort, error) {
	switch storage.RecipeSort(strings.ToLower(strings.TrimSpace(s))) {
	case "", storage.SortNewest:
		return storage.SortNewest, nil
	case storage.SortRating:
		return storage.SortRating, nil
	case storage.SortTitle:
		return storage.SortTitle, nil
	case storage.SortQuickest:
		return storage.SortQuickest, nil
	}
	return "", errInvalidSort
}

// RateRecipe records the caller's score. Rating again overwrites the previous score.
func (s *RecipeService) RateRecipe(ctx context.Context, req *connect.Request[api.RateRecipeRequest]) (*connect.Response[api.RateRecipeResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if !models.ValidScore(req.Msg.Score) {
		return nil, toConnectError(errInvalidScore)
	}

	recipe, err := s.loadVisible(ctx, req.Msg.RecipeId, userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if recipe.AuthorID == userID {
		return nil, toConnectError(errOwnRecipe)
	}

	avg, count, err := s.store.UpsertRating(ctx, &models.Rating{
		RecipeID: recipe.ID,
		UserID:   userID,
		Score:    req.Msg.Score,
		Comment:  strings.TrimSpace(req.Msg.Comment),
	})
	if err != nil {
		s.logger.Error("RateRecipe failed", "recipe_id", recipe.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Recipe rated", "recipe_id", recipe.ID, "user_id", userID, "score", req.Msg.Score, "average", avg)
	return connect.NewResponse(&api.RateRecipeResponse{AverageRating: avg, RatingCount: count}), nil
}

// ListRatings returns the ratings of a visible recipe, newest first.
func (s *RecipeService) ListRatings(ctx context.Context, req *connect.Request[api.ListRatingsRequest]) (*connect.Response[api.ListRatingsResponse], error) {
	if _, err := s.loadVisible(ctx, req.Msg.RecipeId, middleware.GetUserID(ctx)); err != nil {
		return nil, toConnectError(err)
	}

	ratings, err := s.store.ListRatings(ctx, req.Msg.RecipeId)
	if err != nil {
		s.logger.Error("ListRatings failed", "recipe_id", req.Msg.RecipeId, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Rating, len(ratings))
	for i, r := range ratings {
		out[i] = toAPIRating(r)
	}
	return connect.NewResponse(&api.ListRatingsResponse{Ratings: out}), nil
}

// ImportRecipe fetches a recipe page and stores the extracted recipe for the caller.
func (s *RecipeService) ImportRecipe(ctx context.Context, req *connect.Request[api.ImportRecipeRequest]) (*connect.Response[api.ImportRecipeResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if s.importer == nil {
		return nil, connect.NewError(connect.CodeUnimplemented, errors.New("recipe import is disabled"))
	}
	s.logger.Info("ImportRecipe request received", "user_id", userID, "url", req.Msg.Url)

	recipe, err := s.importer.Import(ctx, strings.TrimSpace(req.Msg.Url))
	if err != nil {
		s.logger.Warn("ImportRecipe failed", "url", req.Msg.Url, "error", err)
		return nil, toConnectError(err)
	}
	recipe.AuthorID = userID
	recipe.IsPublic = req.Msg.IsPublic

	if err := s.prepare(recipe); err != nil {
		s.logger.Warn("Imported recipe is incomplete", "url", req.Msg.Url, "error", err)
		return nil, toConnectError(err)
	}
	if err := s.store.CreateRecipe(ctx, recipe); err != nil {
		s.logger.Error("ImportRecipe failed", "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Recipe imported", "recipe_id", recipe.ID, "title", recipe.Title)
	return connect.NewResponse(&api.ImportRecipeResponse{Recipe: toAPIRecipe(recipe)}), nil
}
