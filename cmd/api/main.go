package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lyra-storefront/internal/client"
	"lyra-storefront/internal/config"
	"lyra-storefront/internal/repository"
	"lyra-storefront/internal/server"
	"lyra-storefront/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	initLogger(&cfg.Log)

	db := client.InitMysqlClient(cfg.DatabaseURL)
	stripeClient := client.NewStripeClient(&cfg.Stripe)
	emailClient := client.NewEmailClient(&cfg.Email)

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	draftRepo := repository.NewCheckoutDraftRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)

	catalogService := service.NewCatalogService(productRepo)
	checkoutService := service.NewCheckoutService(
		stripeClient, productRepo, draftRepo,
		cfg.Stripe.MinimumCharge, cfg.Stripe.MetadataValueLimit,
	)
	webhookService := service.NewWebhookService(
		db, stripeClient, emailClient,
		productRepo, orderRepo, draftRepo, profileRepo,
	)
	orderService := service.NewOrderService(orderRepo)
	wishlistService := service.NewWishlistService(wishlistRepo, productRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(
		cfg.Auth.JWTSecret,
		catalogService,
		checkoutService,
		webhookService,
		orderService,
		wishlistService,
		inventoryService,
	)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}

func initLogger(cfg *config.Log) {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
