package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/hello-fullstack/internal/http/routes"
	"github.com/janisto/hello-fullstack/internal/platform/config"
	applog "github.com/janisto/hello-fullstack/internal/platform/logging"
	appmiddleware "github.com/janisto/hello-fullstack/internal/platform/middleware"
	"github.com/janisto/hello-fullstack/internal/platform/respond"
	"github.com/janisto/hello-fullstack/internal/platform/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}
	if err := config.LoadDotEnv(); err != nil {
		applog.LogWarn(context.Background(), "dotenv load error", zap.Error(err))
	}

	cfg, err := config.LoadBackend()
	if err != nil {
		applog.LogFatal(context.Background(), "invalid configuration", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg.Addr()); err != nil {
		applog.LogFatal(ctx, "backend failed", err, zap.String("addr", cfg.Addr()))
	}
}

// run binds addr, announces the port, and serves until ctx ends.
func run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	applog.LogInfo(ctx, fmt.Sprintf("Backend is running on port %d", server.Port(ln)))
	return server.Serve(ctx, server.New(newRouter()), ln)
}

func newRouter() http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(appmiddleware.ResourcePolicyCrossOrigin),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP and X-Forwarded-For; only run behind a trusted proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	cfg := huma.DefaultConfig("Hello Backend", Version)
	// The API answers a single path; no docs, schemas, or $schema links.
	cfg.OpenAPIPath = ""
	cfg.DocsPath = ""
	cfg.SchemasPath = ""
	cfg.CreateHooks = nil
	api := humachi.New(router, cfg)

	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	routes.Register(api)
	return router
}
