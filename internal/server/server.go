// Package server assembles the SmartChef HTTP surface: Connect services,
// the plain-text export route, health and metrics endpoints and the
// frontend's static files.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/smartchef/smartchef/internal/auth"
	"github.com/smartchef/smartchef/internal/config"
	"github.com/smartchef/smartchef/internal/images"
	"github.com/smartchef/smartchef/internal/importer"
	"github.com/smartchef/smartchef/internal/middleware"
	"github.com/smartchef/smartchef/internal/service"
	"github.com/smartchef/smartchef/internal/storage"
	"github.com/smartchef/smartchef/pkg/api/apiconnect"
)

// shutdownTimeout bounds how long in-flight requests may take after a stop signal.
const shutdownTimeout = 10 * time.Second

// apiPrefix is the path prefix of every Connect procedure.
const apiPrefix = "/smartchef.v1."

// Server is the SmartChef HTTP server.
type Server struct {
	cfg     *config.Config
	handler http.Handler
	logger  *slog.Logger
}

// Options carries optional collaborators. Zero values get production defaults.
type Options struct {
	// Registry receives the RPC and runtime collectors. Defaults to a fresh registry.
	Registry *prometheus.Registry
	// HTTPClient is used by the recipe importer.
	HTTPClient *http.Client
	// BcryptCost overrides the password hashing cost.
	BcryptCost int
}

// New wires every service against store.
func New(cfg *config.Config, store storage.Store, opts Options, logger *slog.Logger) *Server {
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	metrics := middleware.NewMetrics(registry)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)
	if opts.BcryptCost > 0 {
		authenticator = authenticator.WithCost(opts.BcryptCost)
	}
	limiter := middleware.NewRateLimiter(cfg.Auth.LoginPerMinute, cfg.Auth.LoginBurst)
	recipeImporter := importer.New(opts.HTTPClient, importer.Options{
		Timeout:   cfg.Importer.Timeout,
		MaxBytes:  cfg.Importer.MaxBytes,
		UserAgent: cfg.Importer.UserAgent,
	}, logger.With("component", "importer"))

	// Metrics first so rejected calls are counted; logging last so it sees the user
	public := connect.WithInterceptors(
		metrics.Interceptor(),
		limiter.Interceptor(apiconnect.AuthServiceLoginProcedure),
		middleware.OptionalAuth(jwtManager),
		middleware.LoggingInterceptor(logger),
	)
	protected := connect.WithInterceptors(
		metrics.Interceptor(),
		middleware.RequireAuth(jwtManager),
		middleware.LoggingInterceptor(logger),
	)

	mealPlans := service.NewMealPlanService(store, service.MealPlanOptions{
		LookupConcurrency: cfg.Shopping.LookupConcurrency,
		Metrics:           metrics,
	}, logger.With("service", "mealplan"))

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(
		service.NewAuthService(authenticator, jwtManager, store, logger.With("service", "auth")), public))
	mux.Handle(apiconnect.NewUserServiceHandler(
		service.NewUserService(store, store, authenticator, logger.With("service", "user")), protected))
	mux.Handle(apiconnect.NewRecipeServiceHandler(
		service.NewRecipeService(store, images.Default(), recipeImporter, logger.With("service", "recipe")), public))
	mux.Handle(apiconnect.NewMealPlanServiceHandler(mealPlans, protected))
	mux.Handle(apiconnect.NewCollectionServiceHandler(
		service.NewCollectionService(store, logger.With("service", "collection")), protected))

	mux.Handle("GET /export/mealplans/{id}/shopping-list.txt",
		middleware.RequireAuthHTTP(jwtManager, exportHandler(mealPlans)))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.Handle("/", staticHandler(cfg.Server.StaticPath, logger))

	handler := middleware.Logging(logger, middleware.CORS(cfg.Server.CORSOrigin, mux))

	return &Server{
		cfg: cfg,
		// h2c serves HTTP/2 without TLS, which Connect clients use for streaming
		handler: h2c.NewHandler(handler, &http2.Server{}),
		logger:  logger,
	}
}

// Handler returns the fully wrapped root handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("Connect server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// exportHandler serves a plan's stored shopping list as text/plain.
// ?grouped=1 adds category headers.
func exportHandler(plans *service.MealPlanService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grouped := r.URL.Query().Get("grouped")
		text, err := plans.ExportText(r.Context(), r.PathValue("id"), grouped == "1" || grouped == "true")
		if err != nil {
			http.Error(w, err.Error(), httpStatus(connect.CodeOf(err)))
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="shopping-list.txt"`)
		fmt.Fprint(w, text)
	})
}

// httpStatus maps the Connect codes the services return to HTTP statuses.
func httpStatus(code connect.Code) int {
	switch code {
	case connect.CodeInvalidArgument:
		return http.StatusBadRequest
	case connect.CodeUnauthenticated:
		return http.StatusUnauthorized
	case connect.CodePermissionDenied:
		return http.StatusForbidden
	case connect.CodeNotFound:
		return http.StatusNotFound
	case connect.CodeAlreadyExists:
		return http.StatusConflict
	case connect.CodeResourceExhausted:
		return http.StatusTooManyRequests
	case connect.CodeCanceled:
		return 499
	case connect.CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	case connect.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// staticHandler serves the built frontend. Unknown paths get index.html so
// client-side routes work; unknown API paths get a 404.
func staticHandler(staticPath string, logger *slog.Logger) http.Handler {
	staticDir, err := filepath.Abs(staticPath)
	if err != nil {
		staticDir = staticPath
	}
	logger.Info("Serving static files", "path", staticDir)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, apiPrefix) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}
		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))

		info, err := os.Stat(filePath)
		if err != nil || info.IsDir() {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	})
}
