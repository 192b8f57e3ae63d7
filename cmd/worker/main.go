package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airlines/config"
	"github.com/Domenick1991/airlines/internal/cache"
	"github.com/Domenick1991/airlines/internal/email"
	"github.com/Domenick1991/airlines/internal/kafka"
	"github.com/Domenick1991/airlines/internal/logger"
	"github.com/Domenick1991/airlines/internal/metrics"
	"github.com/Domenick1991/airlines/internal/repository"
	"github.com/Domenick1991/airlines/internal/service/flights"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Flights.CacheTTLSeconds)*time.Second)
	defer redisCache.Close()

	flightService := flights.NewFlightService(
		repository.NewFlightRepository(pool),
		redisCache,
		flights.WithEvents(producer, cfg.Kafka.FlightsTopic),
	)

	metricsSrv := &http.Server{Addr: cfg.Worker.MetricsAddress, Handler: metrics.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		log.Info("worker metrics listening", "address", cfg.Worker.MetricsAddress)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", "error", err)
		}
	}()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender(log)
	go func() {
		err := consumer.ConsumeOrderEvents(ctx, func(ctx context.Context, event kafka.OrderEvent) error {
			if err := sender.Send(ctx, event); err != nil {
				log.Warn("skip notification", "order_id", event.OrderID, "error", err)
				return nil
			}
			metrics.IncNotificationsSent()
			return nil
		})
		if err != nil {
			log.Error("consumer stopped", "error", err)
		}
	}()

	ticker := time.NewTicker(time.Duration(cfg.Worker.CompletionSweepMinutes) * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			completed, err := flightService.CompleteDeparted(ctx, time.Now().UTC())
			if err != nil {
				log.Error("complete departed flights", "error", err)
				continue
			}
			if len(completed) > 0 {
				metrics.AddCompletedFlights(len(completed))
				log.Info("flights completed", "count", len(completed))
			}
		case <-ctx.Done():
			log.Info("shutting down worker")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = metricsSrv.Shutdown(shutdownCtx)
			cancel()
			return
		}
	}
}
