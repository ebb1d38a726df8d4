package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/smartchef/smartchef/pkg/api"
)

// CollectionServiceName is the fully-qualified name of the CollectionService.
const CollectionServiceName = "smartchef.v1.CollectionService"

// Procedure paths of the CollectionService.
const (
	CollectionServiceCreateCollectionProcedure = "/smartchef.v1.CollectionService/CreateCollection"
	CollectionServiceGetCollectionProcedure    = "/smartchef.v1.CollectionService/GetCollection"
	CollectionServiceListCollectionsProcedure  = "/smartchef.v1.CollectionService/ListCollections"
	CollectionServiceUpdateCollectionProcedure = "/smartchef.v1.CollectionService/UpdateCollection"
	CollectionServiceDeleteCollectionProcedure = "/smartchef.v1.CollectionService/DeleteCollection"
	CollectionServiceAddRecipeProcedure        = "/smartchef.v1.CollectionService/AddRecipe"
	CollectionServiceRemoveRecipeProcedure     = "/smartchef.v1.CollectionService/RemoveRecipe"
)

// CollectionServiceHandler serves the CollectionService: user-owned recipe collections.
type CollectionServiceHandler interface {
	CreateCollection(context.Context, *connect.Request[api.CreateCollectionRequest]) (*connect.Response[api.CreateCollectionResponse], error)
	GetCollection(context.Context, *connect.Request[api.GetCollectionRequest]) (*connect.Response[api.GetCollectionResponse], error)
	ListCollections(context.Context, *connect.Request[api.ListCollectionsRequest]) (*connect.Response[api.ListCollectionsResponse], error)
	UpdateCollection(context.Context, *connect.Request[api.UpdateCollectionRequest]) (*connect.Response[api.UpdateCollectionResponse], error)
	DeleteCollection(context.Context, *connect.Request[api.DeleteCollectionRequest]) (*connect.Response[api.DeleteCollectionResponse], error)
	AddRecipe(context.Context, *connect.Request[api.AddRecipeRequest]) (*connect.Response[api.AddRecipeResponse], error)
	RemoveRecipe(context.Context, *connect.Request[api.RemoveRecipeRequest]) (*connect.Response[api.RemoveRecipeResponse], error)
}

// NewCollectionServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewCollectionServiceHandler(svc CollectionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	createCollectionHandler := connect.NewUnaryHandler(CollectionServiceCreateCollectionProcedure, svc.CreateCollection, opts...)
	getCollectionHandler := connect.NewUnaryHandler(CollectionServiceGetCollectionProcedure, svc.GetCollection, withReadOnly(opts)...)
	listCollectionsHandler := connect.NewUnaryHandler(CollectionServiceListCollectionsProcedure, svc.ListCollections, withReadOnly(opts)...)
	updateCollectionHandler := connect.NewUnaryHandler(CollectionServiceUpdateCollectionProcedure, svc.UpdateCollection, opts...)
	deleteCollectionHandler := connect.NewUnaryHandler(CollectionServiceDeleteCollectionProcedure, svc.DeleteCollection, opts...)
	addRecipeHandler := connect.NewUnaryHandler(CollectionServiceAddRecipeProcedure, svc.AddRecipe, opts...)
	removeRecipeHandler := connect.NewUnaryHandler(CollectionServiceRemoveRecipeProcedure, svc.RemoveRecipe, opts...)
	return "/smartchef.v1.CollectionService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CollectionServiceCreateCollectionProcedure:
			createCollectionHandler.ServeHTTP(w, r)
		case CollectionServiceGetCollectionProcedure:
			getCollectionHandler.ServeHTTP(w, r)
		case CollectionServiceListCollectionsProcedure:
			listCollectionsHandler.ServeHTTP(w, r)
		case CollectionServiceUpdateCollectionProcedure:
			updateCollectionHandler.ServeHTTP(w, r)
		case CollectionServiceDeleteCollectionProcedure:
			deleteCollectionHandler.ServeHTTP(w, r)
		case CollectionServiceAddRecipeProcedure:
			addRecipeHandler.ServeHTTP(w, r)
		case CollectionServiceRemoveRecipeProcedure:
			removeRecipeHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// CollectionServiceClient is a client for the CollectionService.
type CollectionServiceClient interface {
	CreateCollection(context.Context, *connect.Request[api.CreateCollectionRequest]) (*connect.Response[api.CreateCollectionResponse], error)
	GetCollection(context.Context, *connect.Request[api.GetCollectionRequest]) (*connect.Response[api.GetCollectionResponse], error)
	ListCollections(context.Context, *connect.Request[api.ListCollectionsRequest]) (*connect.Response[api.ListCollectionsResponse], error)
	UpdateCollection(context.Context, *connect.Request[api.UpdateCollectionRequest]) (*connect.Response[api.UpdateCollectionResponse], error)
	DeleteCollection(context.Context, *connect.Request[api.DeleteCollectionRequest]) (*connect.Response[api.DeleteCollectionResponse], error)
	AddRecipe(context.Context, *connect.Request[api.AddRecipeRequest]) (*connect.Response[api.AddRecipeResponse], error)
	RemoveRecipe(context.Context, *connect.Request[api.RemoveRecipeRequest]) (*connect.Response[api.RemoveRecipeResponse], error)
}

type collectionServiceClient struct {
	createCollection *connect.Client[api.CreateCollectionRequest, api.CreateCollectionResponse]
	getCollection    *connect.Client[api.GetCollectionRequest, api.GetCollectionResponse]
	listCollections  *connect.Client[api.ListCollectionsRequest, api.ListCollectionsResponse]
	updateCollection *connect.Client[api.UpdateCollectionRequest, api.UpdateCollectionResponse]
	deleteCollection *connect.Client[api.DeleteCollectionRequest, api.DeleteCollectionResponse]
	addRecipe        *connect.Client[api.AddRecipeRequest, api.AddRecipeResponse]
	removeRecipe     *connect.Client[api.RemoveRecipeRequest, api.RemoveRecipeResponse]
}

// NewCollectionServiceClient constructs a client for the CollectionService. The baseURL is the
// scheme and host of the server, e.g. http://localhost:8080.
func NewCollectionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CollectionServiceClient {
	opts = clientOptions(opts)
	return &collectionServiceClient{
		createCollection: connect.NewClient[api.CreateCollectionRequest, api.CreateCollectionResponse](httpClient, baseURL+CollectionServiceCreateCollectionProcedure, opts...),
		getCollection:    connect.NewClient[api.GetCollectionRequest, api.GetCollectionResponse](httpClient, baseURL+CollectionServiceGetCollectionProcedure, opts...),
		listCollections:  connect.NewClient[api.ListCollectionsRequest, api.ListCollectionsResponse](httpClient, baseURL+CollectionServiceListCollectionsProcedure, opts...),
		updateCollection: connect.NewClient[api.UpdateCollectionRequest, api.UpdateCollectionResponse](httpClient, baseURL+CollectionServiceUpdateCollectionProcedure, opts...),
		deleteCollection: connect.NewClient[api.DeleteCollectionRequest, api.DeleteCollectionResponse](httpClient, baseURL+CollectionServiceDeleteCollectionProcedure, opts...),
		addRecipe:        connect.NewClient[api.AddRecipeRequest, api.AddRecipeResponse](httpClient, baseURL+CollectionServiceAddRecipeProcedure, opts...),
		removeRecipe:     connect.NewClient[api.RemoveRecipeRequest, api.RemoveRecipeResponse](httpClient, baseURL+CollectionServiceRemoveRecipeProcedure, opts...),
	}
}

func (c *collectionServiceClient) CreateCollection(ctx context.Context, req *connect.Request[api.CreateCollectionRequest]) (*connect.Response[api.CreateCollectionResponse], error) {
	return c.createCollection.CallUnary(ctx, req)
}

func (c *collectionServiceClient) GetCollection(ctx context.Context, req *connect.Request[api.GetCollectionRequest]) (*connect.Response[api.GetCollectionResponse], error) {
	return c.getCollection.CallUnary(ctx, req)
}

func (c *collectionServiceClient) ListCollections(ctx context.Context, req *connect.Request[api.ListCollectionsRequest]) (*connect.Response[api.ListCollectionsResponse], error) {
	return c.listCollections.CallUnary(ctx, req)
}

func (c *collectionServiceClient) UpdateCollection(ctx context.Context, req *connect.Request[api.UpdateCollectionRequest]) (*connect.Response[api.UpdateCollectionResponse], error) {
	return c.updateCollection.CallUnary(ctx, req)
}

func (c *collectionServiceClient) DeleteCollection(ctx context.Context, req *connect.Request[api.DeleteCollectionRequest]) (*connect.Response[api.DeleteCollectionResponse], error) {
	return c.deleteCollection.CallUnary(ctx, req)
}

func (c *collectionServiceClient) AddRecipe(ctx context.Context, req *connect.Request[api.AddRecipeRequest]) (*connect.Response[api.AddRecipeResponse], error) {
	return c.addRecipe.CallUnary(ctx, req)
}

func (c *collectionServiceClient) RemoveRecipe(ctx context.Context, req *connect.Request[api.RemoveRecipeRequest]) (*connect.Response[api.RemoveRecipeResponse], error) {
	return c.removeRecipe.CallUnary(ctx, req)
}
