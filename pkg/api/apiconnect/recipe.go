package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/smartchef/smartchef/pkg/api"
)

// RecipeServiceName is the fully-qualified name of the RecipeService.
const RecipeServiceName = "smartchef.v1.RecipeService"

// Procedure paths of the RecipeService.
const (
	RecipeServiceCreateRecipeProcedure = "/smartchef.v1.RecipeService/CreateRecipe"
	RecipeServiceGetRecipeProcedure    = "/smartchef.v1.RecipeService/GetRecipe"
	RecipeServiceUpdateRecipeProcedure = "/smartchef.v1.RecipeService/UpdateRecipe"
	RecipeServiceDeleteRecipeProcedure = "/smartchef.v1.RecipeService/DeleteRecipe"
	RecipeServiceListRecipesProcedure  = "/smartchef.v1.RecipeService/ListRecipes"
	RecipeServiceRateRecipeProcedure   = "/smartchef.v1.RecipeService/RateRecipe"
	RecipeServiceListRatingsProcedure  = "/smartchef.v1.RecipeService/ListRatings"
	RecipeServiceImportRecipeProcedure = "/smartchef.v1.RecipeService/ImportRecipe"
)

// RecipeServiceHandler serves the RecipeService: recipe documents, search and ratings.
type RecipeServiceHandler interface {
	CreateRecipe(context.Context, *connect.Request[api.CreateRecipeRequest]) (*connect.Response[api.CreateRecipeResponse], error)
	GetRecipe(context.Context, *connect.Request[api.GetRecipeRequest]) (*connect.Response[api.GetRecipeResponse], error)
	UpdateRecipe(context.Context, *connect.Request[api.UpdateRecipeRequest]) (*connect.Response[api.UpdateRecipeResponse], error)
	DeleteRecipe(context.Context, *connect.Request[api.DeleteRecipeRequest]) (*connect.Response[api.DeleteRecipeResponse], error)
	ListRecipes(context.Context, *connect.Request[api.ListRecipesRequest]) (*connect.Response[api.ListRecipesResponse], error)
	RateRecipe(context.Context, *connect.Request[api.RateRecipeRequest]) (*connect.Response[api.RateRecipeResponse], error)
	ListRatings(context.Context, *connect.Request[api.ListRatingsRequest]) (*connect.Response[api.ListRatingsResponse], error)
	ImportRecipe(context.Context, *connect.Request[api.ImportRecipeRequest]) (*connect.Response[api.ImportRecipeResponse], error)
}

// NewRecipeServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewRecipeServiceHandler(svc RecipeServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	createRecipeHandler := connect.NewUnaryHandler(RecipeServiceCreateRecipeProcedure, svc.CreateRecipe, opts...)
	getRecipeHandler := connect.NewUnaryHandler(RecipeServiceGetRecipeProcedure, svc.GetRecipe, withReadOnly(opts)...)
	updateRecipeHandler := connect.NewUnaryHandler(RecipeServiceUpdateRecipeProcedure, svc.UpdateRecipe, opts...)
	deleteRecipeHandler := connect.NewUnaryHandler(RecipeServiceDeleteRecipeProcedure, svc.DeleteRecipe, opts...)
	listRecipesHandler := connect.NewUnaryHandler(RecipeServiceListRecipesProcedure, svc.ListRecipes, withReadOnly(opts)...)
	rateRecipeHandler := connect.NewUnaryHandler(RecipeServiceRateRecipeProcedure, svc.RateRecipe, opts...)
	listRatingsHandler := connect.NewUnaryHandler(RecipeServiceListRatingsProcedure, svc.ListRatings, withReadOnly(opts)...)
	importRecipeHandler := connect.NewUnaryHandler(RecipeServiceImportRecipeProcedure, svc.ImportRecipe, opts...)
	return "/smartchef.v1.RecipeService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case RecipeServiceCreateRecipeProcedure:
			createRecipeHandler.ServeHTTP(w, r)
		case RecipeServiceGetRecipeProcedure:
			getRecipeHandler.ServeHTTP(w, r)
		case RecipeServiceUpdateRecipeProcedure:
			updateRecipeHandler.ServeHTTP(w, r)
		case RecipeServiceDeleteRecipeProcedure:
			deleteRecipeHandler.ServeHTTP(w, r)
		case RecipeServiceListRecipesProcedure:
			listRecipesHandler.ServeHTTP(w, r)
		case RecipeServiceRateRecipeProcedure:
			rateRecipeHandler.ServeHTTP(w, r)
		case RecipeServiceListRatingsProcedure:
			listRatingsHandler.ServeHTTP(w, r)
		case RecipeServiceImportRecipeProcedure:
			importRecipeHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// RecipeServiceClient is a client for the RecipeService.
type RecipeServiceClient interface {
	CreateRecipe(context.Context, *connect.Request[api.CreateRecipeRequest]) (*connect.Response[api.CreateRecipeResponse], error)
	GetRecipe(context.Context, *connect.Request[api.GetRecipeRequest]) (*connect.Response[api.GetRecipeResponse], error)
	UpdateRecipe(context.Context, *connect.Request[api.UpdateRecipeRequest]) (*connect.Response[api.UpdateRecipeResponse], error)
	DeleteRecipe(context.Context, *connect.Request[api.DeleteRecipeRequest]) (*connect.Response[api.DeleteRecipeResponse], error)
	ListRecipes(context.Context, *connect.Request[api.ListRecipesRequest]) (*connect.Response[api.ListRecipesResponse], error)
	RateRecipe(context.Context, *connect.Request[api.RateRecipeRequest]) (*connect.Response[api.RateRecipeResponse], error)
	ListRatings(context.Context, *connect.Request[api.ListRatingsRequest]) (*connect.Response[api.ListRatingsResponse], error)
	ImportRecipe(context.Context, *connect.Request[api.ImportRecipeRequest]) (*connect.Response[api.ImportRecipeResponse], error)
}

type recipeServiceClient struct {
	createRecipe *connect.Client[api.CreateRecipeRequest, api.CreateRecipeResponse]
	getRecipe    *connect.Client[api.GetRecipeRequest, api.GetRecipeResponse]
	updateRecipe *connect.Client[api.UpdateRecipeRequest, api.UpdateRecipeResponse]
	deleteRecipe *connect.Client[api.DeleteRecipeRequest, api.DeleteRecipeResponse]
	listRecipes  *connect.Client[api.ListRecipesRequest, api.ListRecipesResponse]
	rateRecipe   *connect.Client[api.RateRecipeRequest, api.RateRecipeResponse]
	listRatings  *connect.Client[api.ListRatingsRequest, api.ListRatingsResponse]
	importRecipe *connect.Client[api.ImportRecipeRequest, api.ImportRecipeResponse]
}

// NewRecipeServiceClient constructs a client for the RecipeService. The baseURL is the
// scheme and host of the server, e.g. http://localhost:8080.
func NewRecipeServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RecipeServiceClient {
	opts = clientOptions(opts)
	return &recipeServiceClient{
		createRecipe: connect.NewClient[api.CreateRecipeRequest, api.CreateRecipeResponse](httpClient, baseURL+RecipeServiceCreateRecipeProcedure, opts...),
		getRecipe:    connect.NewClient[api.GetRecipeRequest, api.GetRecipeResponse](httpClient, baseURL+RecipeServiceGetRecipeProcedure, opts...),
		updateRecipe: connect.NewClient[api.UpdateRecipeRequest, api.UpdateRecipeResponse](httpClient, baseURL+RecipeServiceUpdateRecipeProcedure, opts...),
		deleteRecipe: connect.NewClient[api.DeleteRecipeRequest, api.DeleteRecipeResponse](httpClient, baseURL+RecipeServiceDeleteRecipeProcedure, opts...),
		listRecipes:  connect.NewClient[api.ListRecipesRequest, api.ListRecipesResponse](httpClient, baseURL+RecipeServiceListRecipesProcedure, opts...),
		rateRecipe:   connect.NewClient[api.RateRecipeRequest, api.RateRecipeResponse](httpClient, baseURL+RecipeServiceRateRecipeProcedure, opts...),
		listRatings:  connect.NewClient[api.ListRatingsRequest, api.ListRatingsResponse](httpClient, baseURL+RecipeServiceListRatingsProcedure, opts...),
		importRecipe: connect.NewClient[api.ImportRecipeRequest, api.ImportRecipeResponse](httpClient, baseURL+RecipeServiceImportRecipeProcedure, opts...),
	}
}

func (c *recipeServiceClient) CreateRecipe(ctx context.Context, req *connect.Request[api.CreateRecipeRequest]) (*connect.Response[api.CreateRecipeResponse], error) {
	return c.createRecipe.CallUnary(ctx, req)
}

func (c *recipeServiceClient) GetRecipe(ctx context.Context, req *connect.Request[api.GetRecipeRequest]) (*connect.Response[api.GetRecipeResponse], error) {
	return c.getRecipe.CallUnary(ctx, req)
}

func (c *recipeServiceClient) UpdateRecipe(ctx context.Context, req *connect.Request[api.UpdateRecipeRequest]) (*connect.Response[api.UpdateRecipeResponse], error) {
	return c.updateRecipe.CallUnary(ctx, req)
}

func (c *recipeServiceClient) DeleteRecipe(ctx context.Context, req *connect.Request[api.DeleteRecipeRequest]) (*connect.Response[api.DeleteRecipeResponse], error) {
	return c.deleteRecipe.CallUnary(ctx, req)
}

func (c *recipeServiceClient) ListRecipes(ctx context.Context, req *connect.Request[api.ListRecipesRequest]) (*connect.Response[api.ListRecipesResponse], error) {
	return c.listRecipes.CallUnary(ctx, req)
}

func (c *recipeServiceClient) RateRecipe(ctx context.Context, req *connect.Request[api.RateRecipeRequest]) (*connect.Response[api.RateRecipeResponse], error) {
	return c.rateRecipe.CallUnary(ctx, req)
}

func (c *recipeServiceClient) ListRatings(ctx context.Context, req *connect.Request[api.ListRatingsRequest]) (*connect.Response[api.ListRatingsResponse], error) {
	return c.listRatings.CallUnary(ctx, req)
}

func (c *recipeServiceClient) ImportRecipe(ctx context.Context, req *connect.Request[api.ImportRecipeRequest]) (*connect.Response[api.ImportRecipeResponse], error) {
	return c.importRecipe.CallUnary(ctx, req)
}
