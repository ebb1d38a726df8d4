package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartchef/smartchef/pkg/api"
)

func TestCollections(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	alice, aliceID := env.register(t, "alice@example.com", "Alice")
	bob, _ := env.register(t, "bob@example.com", "Bob")

	soup := env.createRecipe(t, alice, recipeInput("Soup", true))
	stew := env.createRecipe(t, alice, recipeInput("Stew", false))
	bobs := env.createRecipe(t, bob, recipeInput("Bob's Private Pie", false))

	_, err := env.collections.CreateCollection(ctx, authed(&api.CreateCollectionRequest{Name: "  "}, alice))
	requireCode(t, err, connect.CodeInvalidArgument)

	created, err := env.collections.CreateCollection(ctx, authed(&api.CreateCollectionRequest{Name: "Winter", Description: "Warm food"}, alice))
	require.NoError(t, err)
	winter := created.Msg.Collection
	assert.Equal(t, aliceID, winter.OwnerId)
	assert.Empty(t, winter.RecipeIds)

	added, err := env.collections.AddRecipe(ctx, authed(&api.AddRecipeRequest{CollectionId: winter.Id, RecipeId: soup.Id}, alice))
	require.NoError(t, err)
	added, err = env.collections.AddRecipe(ctx, authed(&api.AddRecipeRequest{CollectionId: winter.Id, RecipeId: stew.Id}, alice))
	require.NoError(t, err)
	assert.Equal(t, []string{soup.Id, stew.Id}, added.Msg.Collection.RecipeIds)

	_, err = env.collections.AddRecipe(ctx, authed(&api.AddRecipeRequest{CollectionId: winter.Id, RecipeId: soup.Id}, alice))
	requireCode(t, err, connect.CodeAlreadyExists)

	_, err = env.collections.AddRecipe(ctx, authed(&api.AddRecipeRequest{CollectionId: winter.Id, RecipeId: bobs.Id}, alice))
	requireCode(t, err, connect.CodeNotFound)

	// Private collections are invisible to others
	_, err = env.collections.GetCollection(ctx, authed(&api.GetCollectionRequest{CollectionId: winter.Id}, bob))
	requireCode(t, err, connect.CodeNotFound)

	others, err := env.collections.ListCollections(ctx, authed(&api.ListCollectionsRequest{OwnerId: aliceID}, bob))
	require.NoError(t, err)
	assert.Empty(t, others.Msg.Collections)

	_, err = env.collections.UpdateCollection(ctx, authed(&api.UpdateCollectionRequest{CollectionId: winter.Id, Name: "Winter Warmers", IsPublic: true}, alice))
	require.NoError(t, err)

	shared, err := env.collections.GetCollection(ctx, authed(&api.GetCollectionRequest{CollectionId: winter.Id}, bob))
	require.NoError(t, err)
	assert.Equal(t, "Winter Warmers", shared.Msg.Collection.Name)

	others, err = env.collections.ListCollections(ctx, authed(&api.ListCollectionsRequest{OwnerId: aliceID}, bob))
	require.NoError(t, err)
	assert.Len(t, others.Msg.Collections, 1)

	// Readable is not writable
	_, err = env.collections.AddRecipe(ctx, authed(&api.AddRecipeRequest{CollectionId: winter.Id, RecipeId: bobs.Id}, bob))
	requireCode(t, err, connect.CodePermissionDenied)
	_, err = env.collections.DeleteCollection(ctx, authed(&api.DeleteCollectionRequest{CollectionId: winter.Id}, bob))
	requireCode(t, err, connect.CodePermissionDenied)

	removed, err := env.collections.RemoveRecipe(ctx, authed(&api.RemoveRecipeRequest{CollectionId: winter.Id, RecipeId: soup.Id}, alice))
	require.NoError(t, err)
	assert.Equal(t, []string{stew.Id}, removed.Msg.Collection.RecipeIds)

	_, err = env.collections.RemoveRecipe(ctx, authed(&api.RemoveRecipeRequest{CollectionId: winter.Id, RecipeId: soup.Id}, alice))
	requireCode(t, err, connect.CodeNotFound)

	_, err = env.collections.DeleteCollection(ctx, authed(&api.DeleteCollectionRequest{CollectionId: winter.Id}, alice))
	require.NoError(t, err)

	// Deleting a collection leaves its recipes alone
	_, err = env.recipes.GetRecipe(ctx, authed(&api.GetRecipeRequest{RecipeId: stew.Id}, alice))
	require.NoError(t, err)

	own, err := env.collections.ListCollections(ctx, authed(&api.ListCollectionsRequest{}, alice))
	require.NoError(t, err)
	assert.Empty(t, own.Msg.Collections)
}
