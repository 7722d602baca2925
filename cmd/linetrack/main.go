package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/transitmv/linetrack/internal/pkg/config"
	"github.com/transitmv/linetrack/internal/pkg/database"
	"github.com/transitmv/linetrack/internal/pkg/health"
	"github.com/transitmv/linetrack/internal/pkg/logger"
	"github.com/transitmv/linetrack/internal/pkg/middleware"
	natspkg "github.com/transitmv/linetrack/internal/pkg/nats"
	"github.com/transitmv/linetrack/internal/pkg/server"
	cataloghandler "github.com/transitmv/linetrack/services/catalog/handler"
	cataloghttp "github.com/transitmv/linetrack/services/catalog/handler/http"
	catalogrepo "github.com/transitmv/linetrack/services/catalog/repository"
	catalogusecase "github.com/transitmv/linetrack/services/catalog/usecase"
	locationgw "github.com/transitmv/linetrack/services/location/gateway"
	locationhandler "github.com/transitmv/linetrack/services/location/handler"
	locationhttp "github.com/transitmv/linetrack/services/location/handler/http"
	locationrepo "github.com/transitmv/linetrack/services/location/repository"
	locationusecase "github.com/transitmv/linetrack/services/location/usecase"
)

func main() {
	appName := "linetrack"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Postgres is the system of record; without it there is no service.
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Redis and NATS are accelerators: the catalog cache and the event
	// fan-out degrade to no-ops when they are unreachable.
	var redisClient *database.RedisClient
	if rc, err := database.NewRedisClient(configs.Redis); err != nil {
		zapLogger.Warn("Redis unavailable, catalog cache disabled", logger.Err(err))
	} else {
		redisClient = rc
		defer redisClient.Close()
	}

	var natsClient *natspkg.Client
	if configs.NATS.URL != "" {
		if nc, err := natspkg.NewClient(configs.NATS.URL); err != nil {
			zapLogger.Warn("NATS unavailable, event publishing disabled", logger.Err(err))
		} else {
			natsClient = nc
			defer natsClient.Close()
		}
	}

	// Repositories
	locRepo := locationrepo.NewLocationRepo(postgresClient.GetDB())
	catRepo := catalogrepo.NewCatalogRepo(postgresClient.GetDB())

	// Gateway
	locGW := locationgw.NewLocationGW(natsClient)

	// Usecases
	locUC := locationusecase.NewLocationUC(locRepo, locGW)
	catUC := catalogusecase.NewCatalogUC(catRepo, redisClient)

	// Handlers
	locHandler := locationhandler.NewHandler(locationhttp.NewLocationHandler(locUC))
	catHandler := cataloghandler.NewHandler(cataloghttp.NewCatalogHandler(catUC))

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	// Open CORS: the MVP serves browser clients directly.
	e.Use(echomw.CORS())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Health stays outside the auth group
	health.RegisterHealthEndpoints(e)

	v1 := e.Group("/v1", middleware.BearerAuth(configs.Auth.APIKey))
	locHandler.RegisterRoutes(v1)
	catHandler.RegisterRoutes(v1)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error", logger.Err(err))
	}
}
