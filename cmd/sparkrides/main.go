package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/sparkrides/internal/pkg/config"
	"github.com/piresc/sparkrides/internal/pkg/database"
	"github.com/piresc/sparkrides/internal/pkg/health"
	"github.com/piresc/sparkrides/internal/pkg/logger"
	"github.com/piresc/sparkrides/internal/pkg/middleware"
	nrpkg "github.com/piresc/sparkrides/internal/pkg/newrelic"
	"github.com/piresc/sparkrides/internal/pkg/retry"
	"github.com/piresc/sparkrides/internal/pkg/server"
	ridesHandler "github.com/piresc/sparkrides/services/rides/handler"
	ridesRepository "github.com/piresc/sparkrides/services/rides/repository"
	ridesUsecase "github.com/piresc/sparkrides/services/rides/usecase"
	routesGateway "github.com/piresc/sparkrides/services/routes/gateway"
	routesHandler "github.com/piresc/sparkrides/services/routes/handler"
	routesUsecase "github.com/piresc/sparkrides/services/routes/usecase"
)

func main() {
	appName := "sparkrides"
	configPath := "config/sparkrides.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("logger", func(context.Context) error {
		return zapLogger.Close()
	})
	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	ctx := context.Background()

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(ctx, configs.Database, retry.New(retry.DefaultConfig("postgres"), zapLogger))
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.Register("postgres", func(context.Context) error {
		return postgresClient.Close()
	})

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPingChecker(postgresClient))

	// Redis only backs the rate limiter
	var redisClient *redis.Client
	if configs.RateLimit.Enabled {
		rc, err := database.NewRedisClient(ctx, configs.Redis, retry.New(retry.DefaultConfig("redis"), zapLogger))
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdown.Register("redis", func(context.Context) error {
			return rc.Close()
		})
		healthService.AddChecker("redis", health.NewPingChecker(rc))
		redisClient = rc.GetClient()
	}

	// Road routes
	routeGW := routesGateway.NewHTTPGateway(configs.Routing, routesGateway.NewProviderClient(configs.Routing, zapLogger))
	routeUC := routesUsecase.NewRouteUC(routeGW, routesUsecase.NewRouteCache())
	healthService.AddInfo("routing_circuit_breakers", func() interface{} {
		return routeGW.CircuitBreakerStats()
	})
	routeHandler := routesHandler.NewHTTPHandler(routeUC, configs, redisClient, zapLogger)

	// Rides
	rideRepo := ridesRepository.NewRideRepository(configs, postgresClient.GetDB())
	rideUC := ridesUsecase.NewRideUC(rideRepo)
	rideHandler := ridesHandler.NewHandler(rideUC, configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	routeHandler.RegisterRoutes(e)
	rideHandler.RegisterRoutes(e)

	addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
	srv := server.NewGracefulServer(e, zapLogger, addr, time.Duration(configs.Server.ShutdownTimeout)*time.Second, shutdown)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
}
