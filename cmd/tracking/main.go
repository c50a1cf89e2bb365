package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prakashv/minehaul/internal/pkg/config"
	"github.com/prakashv/minehaul/internal/pkg/database"
	"github.com/prakashv/minehaul/internal/pkg/health"
	"github.com/prakashv/minehaul/internal/pkg/logger"
	"github.com/prakashv/minehaul/internal/pkg/middleware"
	natspkg "github.com/prakashv/minehaul/internal/pkg/nats"
	nsqpkg "github.com/prakashv/minehaul/internal/pkg/nsq"
	"github.com/prakashv/minehaul/internal/pkg/server"
	wspkg "github.com/prakashv/minehaul/internal/pkg/websocket"
	"github.com/prakashv/minehaul/services/tracking/gateway"
	"github.com/prakashv/minehaul/services/tracking/handler"
	wsHandler "github.com/prakashv/minehaul/services/tracking/handler/websocket"
	"github.com/prakashv/minehaul/services/tracking/repository"
	"github.com/prakashv/minehaul/services/tracking/usecase"
)

func main() {
	appName := "tracking-service"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	zapLogger, err := logger.InitLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Initialize NSQ producer for push notifications
	nsqProducer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	// Closed in dependency order once the HTTP server has drained
	shutdownMgr := server.NewShutdownManager(zapLogger)
	shutdownMgr.Register(func(context.Context) error {
		nsqProducer.Stop()
		return nil
	})
	shutdownMgr.Register(func(context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownMgr.Register(func(context.Context) error { return redisClient.Close() })
	shutdownMgr.Register(func(context.Context) error { return postgresClient.Close() })

	// Initialize repositories
	tripRepo := repository.NewTripRepo(configs, postgresClient.GetDB())
	locationRepo := repository.NewLocationRepo(configs, redisClient)

	// Initialize gateway
	trackingGW := gateway.NewTrackingGW(natsClient, nsqProducer)

	// WebSocket manager doubles as the presence registry
	manager := wspkg.NewManager(configs.JWT)

	// Initialize usecase
	trackingUC := usecase.NewTrackingUC(tripRepo, locationRepo, trackingGW, manager, configs)

	// Handlers for WebSocket
	wsManager := wsHandler.NewWebSocketManager(trackingUC, manager)

	// Initialize handlers
	h := handler.NewHandler(wsManager, configs)

	// Initialize Echo router
	e := echo.New()
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	if err := srv.Start(); err != nil {
		logger.Error("Server shutdown with error",
			logger.String("app", appName),
			logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	shutdownMgr.Shutdown(ctx)
}
