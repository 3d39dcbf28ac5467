// Command gateway is the entry point for the lendhub client-facing
// tier.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lendhub/internal/cache"
	"lendhub/internal/config"
	"lendhub/internal/gateway"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gw := gateway.NewGateway(cfg)

	app := gateway.NewApp()
	gw.SetupMiddleware(app)
	gw.SetupRoutes(app)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down gateway...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Gateway shutdown error: %v", err)
		}
		if err := cache.Close(); err != nil {
			log.Printf("Redis close error: %v", err)
		}
	}()

	log.Printf("Gateway starting on port %s (server at %s)...", cfg.GatewayPort, cfg.ServerURL)
	log.Fatal(app.Listen(":" + cfg.GatewayPort))
}
