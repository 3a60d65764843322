package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/uxpulse/ux-pulse-backend/config"
	"github.com/uxpulse/ux-pulse-backend/docs"
	adminHandler "github.com/uxpulse/ux-pulse-backend/internal/handler/admin"
	eventHandler "github.com/uxpulse/ux-pulse-backend/internal/handler/event"
	insightsHandler "github.com/uxpulse/ux-pulse-backend/internal/handler/insights"
	statsHandler "github.com/uxpulse/ux-pulse-backend/internal/handler/stats"
	"github.com/uxpulse/ux-pulse-backend/internal/repository"
	"github.com/uxpulse/ux-pulse-backend/internal/service/openrouter"
	"github.com/uxpulse/ux-pulse-backend/internal/service/report"
	"github.com/uxpulse/ux-pulse-backend/internal/service/telemetry"
	"github.com/uxpulse/ux-pulse-backend/middleware"
	"github.com/uxpulse/ux-pulse-backend/pkg/utils"
)

type RouterHandler struct {
	eventHandler    *eventHandler.EventHandler
	statsHandler    *statsHandler.StatsHandler
	insightsHandler *insightsHandler.InsightsHandler
	adminHandler    *adminHandler.AdminHandler
}

func RunServer(config *config.Config) {
	env := config.Env
	switch env {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
		log.Println("🚀 Starting server in PRODUCTION mode")
	case "dev", "development":
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode")
	default:
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode (default)")
	}

	utils.SetJWTSecret(config.Admin.JWTSecret)

	telemetryService, err := buildTelemetryService(config)
	if err != nil {
		log.Fatal("❌ Failed to build telemetry service:", err)
	}
	log.Printf("✅ Aggregation mode: %s", telemetryService.Mode())

	generator := openrouter.NewClient(config.Insights.APIKey, config.Insights.Model, config.Insights.Timeout)
	reportService := report.NewReportService(generator)

	routerHandler := &RouterHandler{
		eventHandler:    eventHandler.NewEventHandler(telemetryService),
		statsHandler:    statsHandler.NewStatsHandler(telemetryService),
		insightsHandler: insightsHandler.NewInsightsHandler(telemetryService, reportService),
		adminHandler:    adminHandler.NewAdminHandler(telemetryService, config.Admin.PasswordHash),
	}

	r := setupRouter(routerHandler)

	srv := &http.Server{
		Addr:    ":" + config.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("✅ Server starting on port %s", config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	gracefulShutdown(srv)
}

// buildTelemetryService picks the aggregation mode and its backing store
// from configuration.
func buildTelemetryService(cfg *config.Config) (telemetry.Service, error) {
	switch cfg.Telemetry.AggregationMode {
	case string(telemetry.ModeTally):
		switch cfg.Telemetry.TallyBackend {
		case "redis":
			client, err := newRedisClient(cfg.Redis)
			if err != nil {
				return nil, err
			}
			return telemetry.NewTallyService(repository.NewRedisTallyStore(client)), nil
		case "memory", "":
			return telemetry.NewTallyService(repository.NewMemoryTallyStore()), nil
		default:
			return nil, fmt.Errorf("unknown tally backend %q", cfg.Telemetry.TallyBackend)
		}
	case string(telemetry.ModeReplay), "":
		switch cfg.Telemetry.StoreDriver {
		case "postgres":
			db, err := repository.NewRepository(cfg.DB)
			if err != nil {
				return nil, err
			}
			return telemetry.NewReplayService(repository.NewPostgresEventStore(db)), nil
		case "memory", "":
			return telemetry.NewReplayService(repository.NewMemoryEventStore()), nil
		default:
			return nil, fmt.Errorf("unknown store driver %q", cfg.Telemetry.StoreDriver)
		}
	default:
		return nil, fmt.Errorf("unknown aggregation mode %q", cfg.Telemetry.AggregationMode)
	}
}

func newRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("✅ Connected to Redis at %s:%s", cfg.Host, cfg.Port)
	return client, nil
}

func gracefulShutdown(srv *http.Server) {
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("🔄 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}

	select {
	case <-ctx.Done():
		log.Println("⚠️ Server shutdown timeout exceeded")
	default:
		log.Println("✅ Server gracefully stopped")
	}
}

func setupRouter(routerHandler *RouterHandler) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && (strings.HasPrefix(origin, "http://localhost:") ||
			strings.HasPrefix(origin, "http://127.0.0.1:")) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   "ux-pulse-backend",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	docs.SwaggerInfo.Title = "UX Pulse API"
	docs.SwaggerInfo.Description = "User-interaction telemetry ingestion, aggregate statistics and generated UX insights"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = "/"

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/event", routerHandler.eventHandler.Ingest)
	r.GET("/counts", routerHandler.statsHandler.Counts)
	r.GET("/insights", routerHandler.insightsHandler.Insights)

	publicAdminRoutes := r.Group("/api/v1/admin")
	{
		publicAdminRoutes.POST("/auth", routerHandler.adminHandler.Login)
	}

	privateRoutes := r.Group("/api/v1/admin")
	privateRoutes.Use(middleware.AuthenticationMiddleware())
	{
		privateRoutes.GET("/events", routerHandler.adminHandler.ListEvents)
		privateRoutes.DELETE("/events", routerHandler.adminHandler.ResetEvents)
	}

	return r
}
