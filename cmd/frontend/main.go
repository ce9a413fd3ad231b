package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/hello-fullstack/internal/platform/config"
	applog "github.com/janisto/hello-fullstack/internal/platform/logging"
	appmiddleware "github.com/janisto/hello-fullstack/internal/platform/middleware"
	"github.com/janisto/hello-fullstack/internal/platform/respond"
	"github.com/janisto/hello-fullstack/internal/platform/server"
	"github.com/janisto/hello-fullstack/internal/service/message"
	"github.com/janisto/hello-fullstack/internal/web"
)

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

	cfg, err := config.LoadFrontend()
	if err != nil {
		applog.LogFatal(context.Background(), "invalid configuration", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := message.NewClient(http.DefaultClient, message.WithURL(cfg.APIURL))
	applog.LogInfo(ctx, "message api target", zap.String("url", svc.URL()))
	if err := run(ctx, cfg.Addr(), svc); err != nil {
		applog.LogFatal(ctx, "frontend failed", err, zap.String("addr", cfg.Addr()))
	}
}

func run(ctx context.Context, addr string, svc message.Service) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	applog.LogInfo(ctx, fmt.Sprintf("Frontend is running on port %d", server.Port(ln)))
	return server.Serve(ctx, server.New(newRouter(svc)), ln)
}

func newRouter(svc message.Service) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(appmiddleware.ResourcePolicySameOrigin),
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	web.NewHandler(svc, web.NewSessions(web.DefaultSessionTTL)).Register(router)
	return router
}
