package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/smartchef/smartchef/pkg/api"
)

// MealPlanServiceName is the fully-qualified name of the MealPlanService.
const MealPlanServiceName = "smartchef.v1.MealPlanService"

// Procedure paths of the MealPlanService.
const (
	MealPlanServiceCreateMealPlanProcedure       = "/smartchef.v1.MealPlanService/CreateMealPlan"
	MealPlanServiceGetMealPlanProcedure          = "/smartchef.v1.MealPlanService/GetMealPlan"
	MealPlanServiceListMealPlansProcedure        = "/smartchef.v1.MealPlanService/ListMealPlans"
	MealPlanServiceUpdateMealPlanProcedure       = "/smartchef.v1.MealPlanService/UpdateMealPlan"
	MealPlanServiceDeleteMealPlanProcedure       = "/smartchef.v1.MealPlanService/DeleteMealPlan"
	MealPlanServiceAddMealProcedure              = "/smartchef.v1.MealPlanService/AddMeal"
	MealPlanServiceRemoveMealProcedure           = "/smartchef.v1.MealPlanService/RemoveMeal"
	MealPlanServiceGenerateShoppingListProcedure = "/smartchef.v1.MealPlanService/GenerateShoppingList"
	MealPlanServiceGetShoppingListProcedure      = "/smartchef.v1.MealPlanService/GetShoppingList"
	MealPlanServiceSetItemPurchasedProcedure     = "/smartchef.v1.MealPlanService/SetItemPurchased"
	MealPlanServiceExportShoppingListProcedure   = "/smartchef.v1.MealPlanService/ExportShoppingList"
)

// MealPlanServiceHandler serves the MealPlanService: weekly meal plans and their shopping lists.
type MealPlanServiceHandler interface {
	CreateMealPlan(context.Context, *connect.Request[api.CreateMealPlanRequest]) (*connect.Response[api.CreateMealPlanResponse], error)
	GetMealPlan(context.Context, *connect.Request[api.GetMealPlanRequest]) (*connect.Response[api.GetMealPlanResponse], error)
	ListMealPlans(context.Context, *connect.Request[api.ListMealPlansRequest]) (*connect.Response[api.ListMealPlansResponse], error)
	UpdateMealPlan(context.Context, *connect.Request[api.UpdateMealPlanRequest]) (*connect.Response[api.UpdateMealPlanResponse], error)
	DeleteMealPlan(context.Context, *connect.Request[api.DeleteMealPlanRequest]) (*connect.Response[api.DeleteMealPlanResponse], error)
	AddMeal(context.Context, *connect.Request[api.AddMealRequest]) (*connect.Response[api.AddMealResponse], error)
	RemoveMeal(context.Context, *connect.Request[api.RemoveMealRequest]) (*connect.Response[api.RemoveMealResponse], error)
	GenerateShoppingList(context.Context, *connect.Request[api.GenerateShoppingListRequest]) (*connect.Response[api.GenerateShoppingListResponse], error)
	GetShoppingList(context.Context, *connect.Request[api.GetShoppingListRequest]) (*connect.Response[api.GetShoppingListResponse], error)
	SetItemPurchased(context.Context, *connect.Request[api.SetItemPurchasedRequest]) (*connect.Response[api.SetItemPurchasedResponse], error)
	ExportShoppingList(context.Context, *connect.Request[api.ExportShoppingListRequest]) (*connect.Response[api.ExportShoppingListResponse], error)
}

// NewMealPlanServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewMealPlanServiceHandler(svc MealPlanServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	createMealPlanHandler := connect.NewUnaryHandler(MealPlanServiceCreateMealPlanProcedure, svc.CreateMealPlan, opts...)
	getMealPlanHandler := connect.NewUnaryHandler(MealPlanServiceGetMealPlanProcedure, svc.GetMealPlan, withReadOnly(opts)...)
	listMealPlansHandler := connect.NewUnaryHandler(MealPlanServiceListMealPlansProcedure, svc.ListMealPlans, withReadOnly(opts)...)
	updateMealPlanHandler := connect.NewUnaryHandler(MealPlanServiceUpdateMealPlanProcedure, svc.UpdateMealPlan, opts...)
	deleteMealPlanHandler := connect.NewUnaryHandler(MealPlanServiceDeleteMealPlanProcedure, svc.DeleteMealPlan, opts...)
	addMealHandler := connect.NewUnaryHandler(MealPlanServiceAddMealProcedure, svc.AddMeal, opts...)
	removeMealHandler := connect.NewUnaryHandler(MealPlanServiceRemoveMealProcedure, svc.RemoveMeal, opts...)
	generateShoppingListHandler := connect.NewUnaryHandler(MealPlanServiceGenerateShoppingListProcedure, svc.GenerateShoppingList, opts...)
	getShoppingListHandler := connect.NewUnaryHandler(MealPlanServiceGetShoppingListProcedure, svc.GetShoppingList, withReadOnly(opts)...)
	setItemPurchasedHandler := connect.NewUnaryHandler(MealPlanServiceSetItemPurchasedProcedure, svc.SetItemPurchased, opts...)
	exportShoppingListHandler := connect.NewUnaryHandler(MealPlanServiceExportShoppingListProcedure, svc.ExportShoppingList, withReadOnly(opts)...)
	return "/smartchef.v1.MealPlanService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case MealPlanServiceCreateMealPlanProcedure:
			createMealPlanHandler.ServeHTTP(w, r)
		case MealPlanServiceGetMealPlanProcedure:
			getMealPlanHandler.ServeHTTP(w, r)
		case MealPlanServiceListMealPlansProcedure:
			listMealPlansHandler.ServeHTTP(w, r)
		case MealPlanServiceUpdateMealPlanProcedure:
			updateMealPlanHandler.ServeHTTP(w, r)
		case MealPlanServiceDeleteMealPlanProcedure:
			deleteMealPlanHandler.ServeHTTP(w, r)
		case MealPlanServiceAddMealProcedure:
			addMealHandler.ServeHTTP(w, r)
		case MealPlanServiceRemoveMealProcedure:
			removeMealHandler.ServeHTTP(w, r)
		case MealPlanServiceGenerateShoppingListProcedure:
			generateShoppingListHandler.ServeHTTP(w, r)
		case MealPlanServiceGetShoppingListProcedure:
			getShoppingListHandler.ServeHTTP(w, r)
		case MealPlanServiceSetItemPurchasedProcedure:
			setItemPurchasedHandler.ServeHTTP(w, r)
		case MealPlanServiceExportShoppingListProcedure:
			exportShoppingListHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// MealPlanServiceClient is a client for the MealPlanService.
type MealPlanServiceClient interface {
	CreateMealPlan(context.Context, *connect.Request[api.CreateMealPlanRequest]) (*connect.Response[api.CreateMealPlanResponse], error)
	GetMealPlan(context.Context, *connect.Request[api.GetMealPlanRequest]) (*connect.Response[api.GetMealPlanResponse], error)
	ListMealPlans(context.Context, *connect.Request[api.ListMealPlansRequest]) (*connect.Response[api.ListMealPlansResponse], error)
	UpdateMealPlan(context.Context, *connect.Request[api.UpdateMealPlanRequest]) (*connect.Response[api.UpdateMealPlanResponse], error)
	DeleteMealPlan(context.Context, *connect.Request[api.DeleteMealPlanRequest]) (*connect.Response[api.DeleteMealPlanResponse], error)
	AddMeal(context.Context, *connect.Request[api.AddMealRequest]) (*connect.Response[api.AddMealResponse], error)
	RemoveMeal(context.Context, *connect.Request[api.RemoveMealRequest]) (*connect.Response[api.RemoveMealResponse], error)
	GenerateShoppingList(context.Context, *connect.Request[api.GenerateShoppingListRequest]) (*connect.Response[api.GenerateShoppingListResponse], error)
	GetShoppingList(context.Context, *connect.Request[api.GetShoppingListRequest]) (*connect.Response[api.GetShoppingListResponse], error)
	SetItemPurchased(context.Context, *connect.Request[api.SetItemPurchasedRequest]) (*connect.Response[api.SetItemPurchasedResponse], error)
	ExportShoppingList(context.Context, *connect.Request[api.ExportShoppingListRequest]) (*connect.Response[api.ExportShoppingListResponse], error)
}

type mealPlanServiceClient struct {
	createMealPlan       *connect.Client[api.CreateMealPlanRequest, api.CreateMealPlanResponse]
	getMealPlan          *connect.Client[api.GetMealPlanRequest, api.GetMealPlanResponse]
	listMealPlans        *connect.Client[api.ListMealPlansRequest, api.ListMealPlansResponse]
	updateMealPlan       *connect.Client[api.UpdateMealPlanRequest, api.UpdateMealPlanResponse]
	deleteMealPlan       *connect.Client[api.DeleteMealPlanRequest, api.DeleteMealPlanResponse]
	addMeal              *connect.Client[api.AddMealRequest, api.AddMealResponse]
	removeMeal           *connect.Client[api.RemoveMealRequest, api.RemoveMealResponse]
	generateShoppingList *connect.Client[api.GenerateShoppingListRequest, api.GenerateShoppingListResponse]
	getShoppingList      *connect.Client[api.GetShoppingListRequest, api.GetShoppingListResponse]
	setItemPurchased     *connect.Client[api.SetItemPurchasedRequest, api.SetItemPurchasedResponse]
	exportShoppingList   *connect.Client[api.ExportShoppingListRequest, api.ExportShoppingListResponse]
}

// NewMealPlanServiceClient constructs a client for the MealPlanService. The baseURL is the
// scheme and host of the server, e.g. http://localhost:8080.
func NewMealPlanServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MealPlanServiceClient {
	opts = clientOptions(opts)
	return &mealPlanServiceClient{
		createMealPlan:       connect.NewClient[api.CreateMealPlanRequest, api.CreateMealPlanResponse](httpClient, baseURL+MealPlanServiceCreateMealPlanProcedure, opts...),
		getMealPlan:          connect.NewClient[api.GetMealPlanRequest, api.GetMealPlanResponse](httpClient, baseURL+MealPlanServiceGetMealPlanProcedure, opts...),
		listMealPlans:        connect.NewClient[api.ListMealPlansRequest, api.ListMealPlansResponse](httpClient, baseURL+MealPlanServiceListMealPlansProcedure, opts...),
		updateMealPlan:       connect.NewClient[api.UpdateMealPlanRequest, api.UpdateMealPlanResponse](httpClient, baseURL+MealPlanServiceUpdateMealPlanProcedure, opts...),
		deleteMealPlan:       connect.NewClient[api.DeleteMealPlanRequest, api.DeleteMealPlanResponse](httpClient, baseURL+MealPlanServiceDeleteMealPlanProcedure, opts...),
		addMeal:              connect.NewClient[api.AddMealRequest, api.AddMealResponse](httpClient, baseURL+MealPlanServiceAddMealProcedure, opts...),
		removeMeal:           connect.NewClient[api.RemoveMealRequest, api.RemoveMealResponse](httpClient, baseURL+MealPlanServiceRemoveMealProcedure, opts...),
		generateShoppingList: connect.NewClient[api.GenerateShoppingListRequest, api.GenerateShoppingListResponse](httpClient, baseURL+MealPlanServiceGenerateShoppingListProcedure, opts...),
		getShoppingList:      connect.NewClient[api.GetShoppingListRequest, api.GetShoppingListResponse](httpClient, baseURL+MealPlanServiceGetShoppingListProcedure, opts...),
		setItemPurchased:     connect.NewClient[api.SetItemPurchasedRequest, api.SetItemPurchasedResponse](httpClient, baseURL+MealPlanServiceSetItemPurchasedProcedure, opts...),
		exportShoppingList:   connect.NewClient[api.ExportShoppingListRequest, api.ExportShoppingListResponse](httpClient, baseURL+MealPlanServiceExportShoppingListProcedure, opts...),
	}
}

func (c *mealPlanServiceClient) CreateMealPlan(ctx context.Context, req *connect.Request[api.CreateMealPlanRequest]) (*connect.Response[api.CreateMealPlanResponse], error) {
	return c.createMealPlan.CallUnary(ctx, req)
}

func (c *mealPlanServiceClient) GetMealPlan(ctx context.Context, req *connect.Request[api.GetMealPlanRequest]) (*connect.Response[api.GetMealPlanResponse], error) {
	return c.getMealPlan.CallUnary(ctx, req)
}

func (c *mealPlanServiceClient) ListMealPlans(ctx context.Context, req *connect.Request[api.ListMealPlansRequest]) (*connect.Response[api.ListMealPlansResponse], error) {
	return c.listMealPlans.CallUnary(ctx, req)
}

func (c *mealPlanServiceClient) UpdateMealPlan(ctx context.Context, req *connect.Request[api.UpdateMealPlanRequest]) (*connect.Response[api.UpdateMealPlanResponse], error) {
	return c.updateMealPlan.CallUnary(ctx, req)
}

func (c *mealPlanServiceClient) DeleteMealPlan(ctx context.Context, req *connect.Request[api.DeleteMealPlanRequest]) (*connect.Response[api.DeleteMealPlanResponse], error) {
	return c.deleteMealPlan.CallUnary(ctx, req)
}

func (c *mealPlanServiceClient) AddMeal(ctx context.Context, req *connect.Request[api.AddMealRequest]) (*connect.Response[api.AddMealResponse], error) {
	return c.addMeal.CallUnary(ctx, req)
}

func (c *mealPlanServiceClient) RemoveMeal(ctx context.Context, req *connect.Request[api.RemoveMealRequest]) (*connect.Response[api.RemoveMealResponse], error) {
	return c.removeMeal.CallUnary(ctx, req)
}

func (c *mealPlanServiceClient) GenerateShoppingList(ctx context.Context, req *connect.Request[api.GenerateShoppingListRequest]) (*connect.Response[api.GenerateShoppingListResponse], error) {
	return c.generateShoppingList.CallUnary(ctx, req)
}

func (c *mealPlanServiceClient) GetShoppingList(ctx context.Context, req *connect.Request[api.GetShoppingListRequest]) (*connect.Response[api.GetShoppingListResponse], error) {
	return c.getShoppingList.CallUnary(ctx, req)
}

func (c *mealPlanServiceClient) SetItemPurchased(ctx context.Context, req *connect.Request[api.SetItemPurchasedRequest]) (*connect.Response[api.SetItemPurchasedResponse], error) {
	return c.setItemPurchased.CallUnary(ctx, req)
}

func (c *mealPlanServiceClient) ExportShoppingList(ctx context.Context, req *connect.Request[api.ExportShoppingListRequest]) (*connect.Response[api.ExportShoppingListResponse], error) {
	return c.exportShoppingList.CallUnary(ctx, req)
}
