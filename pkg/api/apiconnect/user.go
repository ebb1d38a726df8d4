package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/smartchef/smartchef/pkg/api"
)

// UserServiceName is the fully-qualified name of the UserService.
const UserServiceName = "smartchef.v1.UserService"

// Procedure paths of the UserService.
const (
	UserServiceGetProfileProcedure      = "/smartchef.v1.UserService/GetProfile"
	UserServiceUpdateProfileProcedure   = "/smartchef.v1.UserService/UpdateProfile"
	UserServiceChangePasswordProcedure  = "/smartchef.v1.UserService/ChangePassword"
	UserServiceListUserRecipesProcedure = "/smartchef.v1.UserService/ListUserRecipes"
)

// UserServiceHandler serves the UserService: profiles of registered users.
type UserServiceHandler interface {
	GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error)
	UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error)
	ChangePassword(context.Context, *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error)
	ListUserRecipes(context.Context, *connect.Request[api.ListUserRecipesRequest]) (*connect.Response[api.ListUserRecipesResponse], error)
}

// NewUserServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewUserServiceHandler(svc UserServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	getProfileHandler := connect.NewUnaryHandler(UserServiceGetProfileProcedure, svc.GetProfile, withReadOnly(opts)...)
	updateProfileHandler := connect.NewUnaryHandler(UserServiceUpdateProfileProcedure, svc.UpdateProfile, opts...)
	changePasswordHandler := connect.NewUnaryHandler(UserServiceChangePasswordProcedure, svc.ChangePassword, opts...)
	listUserRecipesHandler := connect.NewUnaryHandler(UserServiceListUserRecipesProcedure, svc.ListUserRecipes, withReadOnly(opts)...)
	return "/smartchef.v1.UserService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case UserServiceGetProfileProcedure:
			getProfileHandler.ServeHTTP(w, r)
		case UserServiceUpdateProfileProcedure:
			updateProfileHandler.ServeHTTP(w, r)
		case UserServiceChangePasswordProcedure:
			changePasswordHandler.ServeHTTP(w, r)
		case UserServiceListUserRecipesProcedure:
			listUserRecipesHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UserServiceClient is a client for the UserService.
type UserServiceClient interface {
	GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error)
	UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error)
	ChangePassword(context.Context, *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error)
	ListUserRecipes(context.Context, *connect.Request[api.ListUserRecipesRequest]) (*connect.Response[api.ListUserRecipesResponse], error)
}

type userServiceClient struct {
	getProfile      *connect.Client[api.GetProfileRequest, api.GetProfileResponse]
	updateProfile   *connect.Client[api.UpdateProfileRequest, api.UpdateProfileResponse]
	changePassword  *connect.Client[api.ChangePasswordRequest, api.ChangePasswordResponse]
	listUserRecipes *connect.Client[api.ListUserRecipesRequest, api.ListUserRecipesResponse]
}

// NewUserServiceClient constructs a client for the UserService. The baseURL is the
// scheme and host of the server, e.g. http://localhost:8080.
func NewUserServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) UserServiceClient {
	opts = clientOptions(opts)
	return &userServiceClient{
		getProfile:      connect.NewClient[api.GetProfileRequest, api.GetProfileResponse](httpClient, baseURL+UserServiceGetProfileProcedure, opts...),
		updateProfile:   connect.NewClient[api.UpdateProfileRequest, api.UpdateProfileResponse](httpClient, baseURL+UserServiceUpdateProfileProcedure, opts...),
		changePassword:  connect.NewClient[api.ChangePasswordRequest, api.ChangePasswordResponse](httpClient, baseURL+UserServiceChangePasswordProcedure, opts...),
		listUserRecipes: connect.NewClient[api.ListUserRecipesRequest, api.ListUserRecipesResponse](httpClient, baseURL+UserServiceListUserRecipesProcedure, opts...),
	}
}

func (c *userServiceClient) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	return c.getProfile.CallUnary(ctx, req)
}

func (c *userServiceClient) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	return c.updateProfile.CallUnary(ctx, req)
}

func (c *userServiceClient) ChangePassword(ctx context.Context, req *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error) {
	return c.changePassword.CallUnary(ctx, req)
}

func (c *userServiceClient) ListUserRecipes(ctx context.Context, req *connect.Request[api.ListUserRecipesRequest]) (*connect.Response[api.ListUserRecipesResponse], error) {
	return c.listUserRecipes.CallUnary(ctx, req)
}
