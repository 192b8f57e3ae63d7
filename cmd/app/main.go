package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airlines/api"
	"github.com/Domenick1991/airlines/config"
	waysapi "github.com/Domenick1991/airlines/internal/api/ways_service_api"
	"github.com/Domenick1991/airlines/internal/bootstrap"
	"github.com/Domenick1991/airlines/internal/cache"
	"github.com/Domenick1991/airlines/internal/kafka"
	"github.com/Domenick1991/airlines/internal/logger"
	"github.com/Domenick1991/airlines/internal/repository"
	"github.com/Domenick1991/airlines/internal/service/catalog"
	"github.com/Domenick1991/airlines/internal/service/flights"
	"github.com/Domenick1991/airlines/internal/service/orders"
	"github.com/Domenick1991/airlines/internal/service/ways"
	"github.com/Domenick1991/airlines/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.Log.Level)
	slog.SetDefault(log)
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := repository.Migrate(ctx, pool, migrations.FS); err != nil {
			log.Error("migrate database", "error", err)
			os.Exit(1)
		}
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Flights.CacheTTLSeconds)*time.Second)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		log.Warn("redis unavailable, cache and rate limiting degraded", "error", err)
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	if err := producer.CheckConnection(ctx); err != nil {
		log.Warn("kafka unavailable, events will be dropped", "error", err)
	}

	airportRepo := repository.NewAirportRepository(pool)
	routeRepo := repository.NewRouteRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	finder := ways.WithMetrics(ways.NewTransferFinder(airportRepo, routeRepo, flightRepo))
	flightService := flights.NewFlightService(flightRepo, redisCache)
	catalogService := catalog.NewCatalogService(airportRepo, routeRepo)
	orderService := orders.NewOrderService(
		orderRepo,
		flightRepo,
		redisCache,
		producer,
		cfg.Kafka.OrdersTopic,
		time.Duration(cfg.Orders.SeatLockSeconds)*time.Second,
		orders.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		orders.WithFlightsInvalidator(redisCache),
	)

	router := api.NewRouter(api.Handlers{
		Ways:     api.NewWaysHandler(finder),
		Flights:  api.NewFlightHandler(flightService),
		Airports: api.NewAirportHandler(catalogService),
		Routes:   api.NewRouteHandler(catalogService),
		Orders:   api.NewOrderHandler(orderService),
	}, api.RouterOptions{
		Limiter:             redisCache,
		SearchRatePerMinute: cfg.Search.RateLimitPerMinute,
		SwaggerDir:          cfg.HTTP.SwaggerDir,
	})

	servers := bootstrap.NewServers(cfg, router, waysapi.NewServer(finder))
	if err := servers.Run(ctx, cfg.GRPC.Address); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
