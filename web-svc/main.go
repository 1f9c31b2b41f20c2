package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"reddys-kitchen/config"
	"reddys-kitchen/logger"
	"reddys-kitchen/web-svc/internal/app"
	"reddys-kitchen/web-svc/internal/client"
	"reddys-kitchen/web-svc/internal/gateway"
)

func main() {
	cfg := config.LoadEnv("8080")
	log := logger.New(cfg, "web-svc")
	defer log.Sync()

	httpClient := &http.Client{}
	store := client.NewStoreClient(cfg.Storefront.BaseURL, httpClient)

	application := app.New(store, log, time.Local)
	application.LoadCatalog(context.Background())
	application.RefreshOrders(context.Background())

	gw := gateway.NewGateway(gateway.Config{
		StorefrontURL: cfg.Storefront.BaseURL,
		StaticDir:     cfg.Server.StaticDir,
	}, httpClient, application, log)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(gw.SetupRoutes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Web service starting", zap.String("addr", server.Addr), zap.String("storefront", cfg.Storefront.BaseURL))
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
