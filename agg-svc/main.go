package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"reddys-kitchen/agg-svc/internal/service"
	"reddys-kitchen/agg-svc/internal/storage"
	"reddys-kitchen/config"
	"reddys-kitchen/logger"
)

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"healthy","service":"agg-svc"}`))
}

func main() {
	cfg := config.LoadEnv("8084")
	log := logger.New(cfg, "agg-svc")
	defer log.Sync()

	rdb := config.MustInitRedis(cfg.Redis, log)
	if rdb == nil {
		log.Fatal("REDIS_ADDR is required")
	}
	defer rdb.Close()

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal("KAFKA_BROKERS is required")
	}
	reader := config.NewKafkaReader(cfg.Kafka)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb), log)
	go consumer.Start(ctx)

	r := mux.NewRouter()
	r.HandleFunc("/health", healthCheck).Methods("GET")
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Aggregation service starting", zap.String("addr", server.Addr), zap.String("topic", cfg.Kafka.OrdersTopic))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
