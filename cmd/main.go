package main

import (
	"context"
	"embed"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wheel/internal/config"
	"wheel/internal/handlers"
	"wheel/internal/metrics"
	"wheel/internal/store"
	"wheel/internal/wheel"
)

//go:embed all:assets
var assetsFS embed.FS

const shutdownTimeout = 10 * time.Second

func main() {
	// 1. Initialize logging
	lg := logger.Init("wheel", true, false, io.Discard)
	defer lg.Close()

	// 2. Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// 3. Build the store, selection engine and metrics
	memStore := store.NewMemStore()
	if cfg.SeedDefaults {
		n := memStore.SeedDefaults()
		logger.Infof("Seeded %d default wheel items", n)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.New(registry)

	spinner := wheel.NewSpinner(memStore,
		wheel.WithDuration(time.Duration(cfg.SpinDurationMS)*time.Millisecond),
		wheel.WithRemoveWinner(cfg.RemoveWinner),
	)

	// 4. Set up the Gin router
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(handlers.RequestID())
	r.Use(handlers.Metrics(m))

	// 5. Serve the embedded frontend
	indexHTML, err := assetsFS.ReadFile("assets/index.html")
	if err != nil {
		logger.Fatalf("Failed to read embedded index: %v", err)
	}
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	})
	assetsSubFS, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		logger.Fatalf("Failed to create assets sub-filesystem: %v", err)
	}
	r.StaticFS("/assets", http.FS(assetsSubFS))

	// 6. Register the API routes
	httpHandler := handlers.NewHTTPHandler(memStore, spinner, m)
	httpHandler.RegisterRoutes(r)

	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	// 7. Run the server until SIGINT/SIGTERM, then drain
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Shutdown error: %v", err)
	}
}
