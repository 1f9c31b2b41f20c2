package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"reddys-kitchen/config"
	"reddys-kitchen/logger"
	httpapi "reddys-kitchen/storefront-svc/internal/api/http"
	"reddys-kitchen/storefront-svc/internal/service"
	"reddys-kitchen/storefront-svc/internal/storage"
)

func main() {
	cfg := config.LoadEnv("5000")
	log := logger.New(cfg, "storefront-svc")
	defer log.Sync()

	db := config.MustInitPostgres(cfg.Postgres, log)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema", zap.Error(err))
	}

	var (
		cache      service.CatalogCache
		popularity service.PopularityReader
	)
	if rdb := config.MustInitRedis(cfg.Redis, log); rdb != nil {
		defer rdb.Close()
		redisCache := storage.NewRedisCache(rdb, cfg.Redis.CatalogTTL)
		cache, popularity = redisCache, redisCache
		log.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	var publisher service.OrderPublisher
	if writer := config.NewKafkaWriter(cfg.Kafka); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		log.Info("Publishing order events", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.OrdersTopic))
	}

	catalogSvc := service.NewCatalogService(storage.NewFileCatalog(cfg.Catalog.Path), cache, popularity, log)
	orderSvc := service.NewOrderService(repo, publisher, service.DefaultQRGenerator{BaseURL: cfg.Server.PublicURL}, log)

	handler := httpapi.NewHandler(catalogSvc, orderSvc, log)
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Storefront service starting", zap.String("addr", server.Addr), zap.String("catalog", cfg.Catalog.Path))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
