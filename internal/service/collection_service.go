package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/smartchef/smartchef/internal/models"
	"github.com/smartchef/smartchef/internal/storage"
	"github.com/smartchef/smartchef/pkg/api"
	"github.com/smartchef/smartchef/pkg/api/apiconnect"
)

var _ apiconnect.CollectionServiceHandler = (*CollectionService)(nil)

// CollectionStore is the storage a CollectionService needs.
type CollectionStore interface {
	storage.CollectionStore
	GetRecipe(ctx context.Context, id string) (*models.Recipe, error)
}

// CollectionService manages named recipe sets. Public collections can be read
// by any authenticated user; only the owner can change one.
type CollectionService struct {
	store  CollectionStore
	logger *slog.Logger
}

// NewCollectionService creates a CollectionService.
func NewCollectionService(store CollectionStore, logger *slog.Logger) *CollectionService {
	return &CollectionService{store: store, logger: logger}
}

// visibleCollection loads a collection the caller may read. Private collections
// of other users are reported as not found.
func (s *CollectionService) visibleCollection(ctx context.Context, collectionID string) (*models.Collection, string, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, "", err
	}
	if collectionID == "" {
		return nil, "", errMissingID
	}
	c, err := s.store.GetCollection(ctx, collectionID)
	if err != nil {
		return nil, "", err
	}
	if !c.VisibleTo(userID) {
		return nil, "", storage.ErrNotFound
	}
	return c, userID, nil
}

func (s *CollectionService) ownedCollection(ctx context.Context, collectionID string) (*models.Collection, error) {
	c, userID, err := s.visibleCollection(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != userID {
		return nil, errNotOwner
	}
	return c, nil
}

// CreateCollection creates an empty collection for the caller.
func (s *CollectionService) CreateCollection(ctx context.Context, req *connect.Request[api.CreateCollectionRequest]) (*connect.Response[api.CreateCollectionResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CreateCollection request received", "user_id", userID, "name", req.Msg.Name)

	c := &models.Collection{
		OwnerID:     userID,
		Name:        req.Msg.Name,
		Description: req.Msg.Description,
		IsPublic:    req.Msg.IsPublic,
	}
	if err := c.Validate(); err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.CreateCollection(ctx, c); err != nil {
		s.logger.Error("CreateCollection failed", "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Collection created", "collection_id", c.ID)
	return connect.NewResponse(&api.CreateCollectionResponse{Collection: toAPICollection(c)}), nil
}

// GetCollection retrieves a collection by ID.
func (s *CollectionService) GetCollection(ctx context.Context, req *connect.Request[api.GetCollectionRequest]) (*connect.Response[api.GetCollectionResponse], error) {
	c, _, err := s.visibleCollection(ctx, req.Msg.CollectionId)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetCollectionResponse{Collection: toAPICollection(c)}), nil
}

// ListCollections lists a user's collections: all of them for the owner,
// only the public ones for anybody else.
func (s *CollectionService) ListCollections(ctx context.Context, req *connect.Request[api.ListCollectionsRequest]) (*connect.Response[api.ListCollectionsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	ownerID := req.Msg.OwnerId
	if ownerID == "" {
		ownerID = userID
	}

	collections, err := s.store.ListCollections(ctx, ownerID, ownerID == userID)
	if err != nil {
		s.logger.Error("ListCollections failed", "owner_id", ownerID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Collection, len(collections))
	for i, c := range collections {
		out[i] = toAPICollection(c)
	}
	return connect.NewResponse(&api.ListCollectionsResponse{Collections: out}), nil
}

// UpdateCollection changes name, description and visibility.
func (s *CollectionService) UpdateCollection(ctx context.Context, req *connect.Request[api.UpdateCollectionRequest]) (*connect.Response[api.UpdateCollectionResponse], error) {
	c, err := s.ownedCollection(ctx, req.Msg.CollectionId)
	if err != nil {
		return nil, toConnectError(err)
	}

	c.Name = req.Msg.Name
	c.Description = req.Msg.Description
	c.IsPublic = req.Msg.IsPublic
	if err := c.Validate(); err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.UpdateCollection(ctx, c); err != nil {
		s.logger.Error("UpdateCollection failed", "collection_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Collection updated", "collection_id", c.ID)
	return connect.NewResponse(&api.UpdateCollectionResponse{Collection: toAPICollection(c)}), nil
}

// DeleteCollection removes a collection. Its recipes are not touched.
func (s *CollectionService) DeleteCollection(ctx context.Context, req *connect.Request[api.DeleteCollectionRequest]) (*connect.Response[api.DeleteCollectionResponse], error) {
	c, err := s.ownedCollection(ctx, req.Msg.CollectionId)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.DeleteCollection(ctx, c.ID); err != nil {
		s.logger.Error("DeleteCollection failed", "collection_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Collection deleted", "collection_id", c.ID)
	return connect.NewResponse(&api.DeleteCollectionResponse{}), nil
}

// AddRecipe appends a recipe the owner can see.
func (s *CollectionService) AddRecipe(ctx context.Context, req *connect.Request[api.AddRecipeRequest]) (*connect.Response[api.AddRecipeResponse], error) {
	c, err := s.ownedCollection(ctx, req.Msg.CollectionId)
	if err != nil {
		return nil, toConnectError(err)
	}

	recipe, err := s.store.GetRecipe(ctx, req.Msg.RecipeId)
	if err != nil {
		return nil, toConnectError(err)
	}
	if !recipe.VisibleTo(c.OwnerID) {
		return nil, connect.NewError(connect.CodeNotFound, storage.ErrNotFound)
	}

	if err := s.store.AddRecipeToCollection(ctx, c.ID, recipe.ID); err != nil {
		s.logger.Warn("AddRecipe failed", "collection_id", c.ID, "recipe_id", recipe.ID, "error", err)
		return nil, toConnectError(err)
	}

	updated, err := s.store.GetCollection(ctx, c.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	s.logger.Info("Recipe added to collection", "collection_id", c.ID, "recipe_id", recipe.ID)
	return connect.NewResponse(&api.AddRecipeResponse{Collection: toAPICollection(updated)}), nil
}

// RemoveRecipe detaches a recipe from a collection.
func (s *CollectionService) RemoveRecipe(ctx context.Context, req *connect.Request[api.RemoveRecipeRequest]) (*connect.Response[api.RemoveRecipeResponse], error) {
	c, err := s.ownedCollection(ctx, req.Msg.CollectionId)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.RemoveRecipeFromCollection(ctx, c.ID, req.Msg.RecipeId); err != nil {
		s.logger.Warn("RemoveRecipe failed", "collection_id", c.ID, "recipe_id", req.Msg.RecipeId, "error", err)
		return nil, toConnectError(err)
	}

	updated, err := s.store.GetCollection(ctx, c.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	s.logger.Info("Recipe removed from collection", "collection_id", c.ID, "recipe_id", req.Msg.RecipeId)
	return connect.NewResponse(&api.RemoveRecipeResponse{Collection: toAPICollection(updated)}), nil
}
