package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/cart"
	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/catalog"
	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/checkout"
	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/config"
	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/db"
	httpserver "github.com/nhutquangnguyen/beautipick-booking-sub001/internal/http"
	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/theme"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lshortfile)

	if cfg.DatabaseDSN == "" {
		logger.Fatal("STOREFRONT_DB_DSN not set")
	}
	if err := db.RunMigrations(cfg.DatabaseDSN, logger); err != nil {
		logger.Fatalf("run migrations: %v", err)
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatalf("open db pool: %v", err)
	}
	defer pool.Close()

	snapshots := cart.NewPostgresSnapshotRepository(pool)

	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	catalogClient, err := catalog.NewClient(cfg.CatalogURL, httpClient)
	if err != nil {
		logger.Fatalf("catalog client: %v", err)
	}
	orderClient, err := checkout.NewHTTPOrderClient(cfg.OrderURL, httpClient)
	if err != nil {
		logger.Fatalf("order client: %v", err)
	}

	rabbitConn, err := amqp.Dial(cfg.RabbitURL)
	if err != nil {
		logger.Fatalf("connect to RabbitMQ: %v", err)
	}
	defer rabbitConn.Close()

	publisher, err := checkout.NewRabbitEventPublisher(rabbitConn)
	if err != nil {
		logger.Fatalf("create event publisher: %v", err)
	}

	registry := theme.NewRegistry(logger)
	handoff := checkout.NewHandoff(orderClient, publisher, logger)

	mux := httpserver.NewRouter(
		httpserver.NewStorefrontHandler(catalogClient, snapshots, registry, logger),
		httpserver.NewCartHandler(catalogClient, snapshots, logger),
		httpserver.NewCheckoutHandler(snapshots, handoff, logger),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("storefront listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-runCtx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Printf("publisher close error: %v", err)
	}
}
