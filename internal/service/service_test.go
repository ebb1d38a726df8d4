package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartchef/smartchef/internal/auth"
	"github.com/smartchef/smartchef/internal/images"
	"github.com/smartchef/smartchef/internal/importer"
	"github.com/smartchef/smartchef/internal/middleware"
	"github.com/smartchef/smartchef/internal/storage/sqlite"
	"github.com/smartchef/smartchef/pkg/api"
	"github.com/smartchef/smartchef/pkg/api/apiconnect"
)

const testSecret = "test-secret-key-that-is-long-enough"

// testEnv holds clients for every service, served by one in-process server.
type testEnv struct {
	auth        apiconnect.AuthServiceClient
	users       apiconnect.UserServiceClient
	recipes     apiconnect.RecipeServiceClient
	plans       apiconnect.MealPlanServiceClient
	collections apiconnect.CollectionServiceClient

	store    *sqlite.SQLiteStore
	registry *prometheus.Registry
}

// setupTestServer wires the services the way the server does, against a
// temp-dir database.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to create store")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtManager := auth.NewJWTManager(testSecret, time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	optional := connect.WithInterceptors(middleware.OptionalAuth(jwtManager))
	required := connect.WithInterceptors(middleware.RequireAuth(jwtManager))

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, store, logger), optional))
	mux.Handle(apiconnect.NewUserServiceHandler(NewUserService(store, store, authenticator, logger), required))
	mux.Handle(apiconnect.NewRecipeServiceHandler(
		NewRecipeService(store, images.Default(), importer.New(nil, importer.Options{Timeout: 5 * time.Second}, logger), logger),
		optional,
	))
	mux.Handle(apiconnect.NewMealPlanServiceHandler(
		NewMealPlanService(store, MealPlanOptions{LookupConcurrency: 2, Metrics: metrics}, logger),
		required,
	))
	mux.Handle(apiconnect.NewCollectionServiceHandler(NewCollectionService(store, logger), required))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testEnv{
		auth:        apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		users:       apiconnect.NewUserServiceClient(http.DefaultClient, server.URL),
		recipes:     apiconnect.NewRecipeServiceClient(http.DefaultClient, server.URL),
		plans:       apiconnect.NewMealPlanServiceClient(http.DefaultClient, server.URL),
		collections: apiconnect.NewCollectionServiceClient(http.DefaultClient, server.URL),
		store:       store,
		registry:    registry,
	}
}

// register creates an account and returns its token and user ID.
func (e *testEnv) register(t *testing.T, email, displayName string) (string, string) {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:       email,
		DisplayName: displayName,
		Password:    "password123",
	}))
	require.NoError(t, err, "Register failed")
	return resp.Msg.Token, resp.Msg.User.Id
}

// createRecipe stores a recipe through the API and returns it.
func (e *testEnv) createRecipe(t *testing.T, token string, in *api.RecipeInput) *api.Recipe {
	t.Helper()
	resp, err := e.recipes.CreateRecipe(context.Background(), authed(&api.CreateRecipeRequest{Recipe: in}, token))
	require.NoError(t, err, "CreateRecipe failed")
	return resp.Msg.Recipe
}

// authed builds a request carrying a bearer token.
func authed[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func recipeInput(title string, public bool, ingredients ...*api.Ingredient) *api.RecipeInput {
	if len(ingredients) == 0 {
		ingredients = []*api.Ingredient{{Name: "Onion", Amount: "1"}}
	}
	return &api.RecipeInput{
		Title:           title,
		Ingredients:     ingredients,
		Instructions:    []string{"Prepare", "Cook"},
		PrepTimeMinutes: 10,
		CookTimeMinutes: 20,
		Servings:        2,
		IsPublic:        public,
	}
}

func requireCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	require.Error(t, err)
	var connectErr *connect.Error
	require.True(t, errors.As(err, &connectErr), "expected connect.Error, got %T", err)
	require.Equal(t, want, connectErr.Code(), "unexpected code: %v", err)
}
