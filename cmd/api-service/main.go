package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DeepakUp9/linkedin-system-sub001/internal/api"
	"github.com/DeepakUp9/linkedin-system-sub001/internal/connection"
	"github.com/DeepakUp9/linkedin-system-sub001/internal/notifier"
	"github.com/DeepakUp9/linkedin-system-sub001/pkg/config"
	"github.com/DeepakUp9/linkedin-system-sub001/pkg/postgres"
	"github.com/DeepakUp9/linkedin-system-sub001/pkg/rabbitmq"

	_ "github.com/DeepakUp9/linkedin-system-sub001/docs"
)

// @title           Connections API
// @version         1.0
// @description     Professional connection lifecycle API. Mutations publish connection events to RabbitMQ for async notification fan-out.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[API] Starting api-service...")

	cfg := config.LoadForService("API")

	// Connect to PostgreSQL (connection records)
	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[API] Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, "api"); err != nil {
		log.Fatalf("[API] Failed to run migrations: %v", err)
	}

	// The notification read surface lives in the notifier service's database.
	// With the default single-database setup both URLs coincide.
	notifierCfg := config.LoadForService("NOTIFIER")
	notifierDB, err := postgres.Connect(notifierCfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[API] Failed to connect to notifier PostgreSQL: %v", err)
	}
	defer notifierDB.Close()

	// Connect to RabbitMQ
	rmqConn, err := rabbitmq.Connect(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("[API] Failed to connect to RabbitMQ: %v", err)
	}
	defer rmqConn.Close()

	publisher, err := rabbitmq.NewPublisher(rmqConn)
	if err != nil {
		log.Fatalf("[API] Failed to create publisher: %v", err)
	}
	defer publisher.Close()

	// Wire handlers and router
	service := connection.NewService(connection.NewStore(db), publisher)
	notificationStore := notifier.NewStore(notifierDB)
	preferences := notifier.NewPreferenceResolver(notifierDB)

	router := api.NewRouter(
		api.NewConnectionHandler(service),
		api.NewNotificationHandler(notificationStore),
		api.NewPreferenceHandler(preferences),
	)

	// HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: router,
	}

	go func() {
		log.Printf("[API] Listening on port %s", cfg.APIPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[API] Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[API] Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[API] Server forced to shutdown: %v", err)
	}
	log.Println("[API] Server exited gracefully")
}
