package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-user-admin/config"
	"github.com/oksasatya/go-user-admin/internal/container"
	"github.com/oksasatya/go-user-admin/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-user-admin/internal/interface/http"
	"github.com/oksasatya/go-user-admin/internal/interface/middleware"
	"github.com/oksasatya/go-user-admin/internal/router"
	"github.com/oksasatya/go-user-admin/pkg/helpers"
	"github.com/oksasatya/go-user-admin/pkg/validation"
	"github.com/oksasatya/go-user-admin/pkg/views"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	// Connect Postgres through pgx and keep the schema in sync. Both are
	// fatal: without storage there is nothing to serve.
	db, err := postgres.Open(ctx, cfg.PostgresDSN(), cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		defer func() { _ = sqlDB.Close() }()
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("schema migration failed: %v", err)
	}

	// Form validation rules (trimmed-length checks) for gin's binding.
	validation.Init()

	tpl, err := views.Load()
	if err != nil {
		log.Fatalf("failed to load templates: %v", err)
	}

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetDB(db)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog(logger))
	r.SetHTMLTemplate(tpl)
	// CORS
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		corsCfg := cors.Config{
			AllowOrigins:  origins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}
		r.Use(cors.New(corsCfg))
	}
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	// Unmatched routes get the listing shell with a 404.
	r.NoRoute(handlers.NotFound)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
