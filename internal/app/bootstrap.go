package app

import (
	"context"
	"fmt"
	"strings"

	"skill-manager/internal/config"
	"skill-manager/internal/delivery/http/handler"
	"skill-manager/internal/delivery/http/middleware"
	"skill-manager/internal/delivery/http/routes"
	"skill-manager/internal/pkg/jwt"
	"skill-manager/internal/snapshot"
	"skill-manager/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
	Hub       *ws.Hub
	Registry  *prometheus.Registry
}

// ServerPolicy picks the checkpoint policy for a long running server. The
// command policy has no meaning there and falls back to mutation.
func ServerPolicy(cfg config.Config) snapshot.Policy {
	p, err := snapshot.ParsePolicy(cfg.Storage.Checkpoint)
	if err != nil || p == snapshot.PolicyCommand {
		return snapshot.PolicyMutation
	}
	return p
}

// Bootstrap builds the HTTP server. The returned cleanup flushes pending
// changes and releases connections; call it after the server stopped.
func Bootstrap(ctx context.Context, cfg config.Config, logger *zap.Logger, opts ...Option) (*App, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	hub := ws.NewHub(logger.Named("ws"))
	go hub.Run(hubCtx)

	opts = append(opts, WithChangeHook(hub))
	container, err := NewContainer(ctx, cfg, logger, ServerPolicy(cfg), opts...)
	if err != nil {
		stopHub()
		return nil, nil, err
	}

	app := New(cfg, container, hub, logger)

	cleanup := func() error {
		defer stopHub()
		flushErr := container.Flush(context.Background())
		if flushErr != nil {
			logger.Error("final flush failed", zap.Error(flushErr))
		}
		closeErr := container.Close()
		if flushErr != nil {
			return flushErr
		}
		return closeErr
	}
	return app, cleanup, nil
}

func New(cfg config.Config, container *Container, hub *ws.Hub, logger *zap.Logger) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	registerStoreGauges(reg, container, hub)

	registerGlobalMiddleware(f, reg, logger)
	registerRoutes(f, cfg, container, hub, reg, logger)

	return &App{Fiber: f, Container: container, Hub: hub, Registry: reg}
}

func registerGlobalMiddleware(app *fiber.App, reg prometheus.Registerer, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger.Named("http")).Middleware())
	app.Use(middleware.NewMetricsMiddleware(reg).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger.Named("http")).Middleware())
}

func registerRoutes(app *fiber.App, cfg config.Config, c *Container, hub *ws.Hub, reg *prometheus.Registry, logger *zap.Logger) {
	if app == nil {
		return
	}

	r := &routes.Registry{
		Health:    handler.NewHealthHandler(c.Pingers),
		Skills:    handler.NewSkillHandler(c.Skills),
		Projects:  handler.NewProjectHandler(c.Projects),
		Employees: handler.NewEmployeeHandler(c.Employees, c.Assignments),
		WS:        ws.NewHandler(hub, logger.Named("ws")),
		Metrics:   adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	}
	if strings.TrimSpace(cfg.Auth.TokenSecret) != "" {
		svc := jwt.NewHMACService(cfg.Auth.TokenSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
		r.Guard = middleware.NewAuthMiddleware(svc).Middleware()
	}
	r.Register(app)
}

func registerStoreGauges(reg prometheus.Registerer, c *Container, hub *ws.Hub) {
	sizes := map[string]func() int{
		DocSkills:    c.SkillStore.Len,
		DocProjects:  c.ProjectStore.Len,
		DocEmployees: c.EmployeeStore.Len,
	}
	for name, size := range sizes {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "skillmanager_store_records",
			Help:        "Number of records held by a store",
			ConstLabels: prometheus.Labels{"store": name},
		}, func() float64 { return float64(size()) }))
	}
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "skillmanager_store_dirty_documents",
		Help: "Number of snapshot documents with unsaved changes",
	}, func() float64 { return float64(len(c.Checkpointer.Dirty())) }))
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "skillmanager_ws_clients",
		Help: "Number of connected change-event clients",
	}, func() float64 { return float64(hub.ClientCount()) }))
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
