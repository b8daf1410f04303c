package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DeepakUp9/linkedin-system-sub001/internal/notifier"
	"github.com/DeepakUp9/linkedin-system-sub001/internal/userdirectory"
	"github.com/DeepakUp9/linkedin-system-sub001/pkg/config"
	"github.com/DeepakUp9/linkedin-system-sub001/pkg/models"
	"github.com/DeepakUp9/linkedin-system-sub001/pkg/postgres"
	"github.com/DeepakUp9/linkedin-system-sub001/pkg/rabbitmq"

	"github.com/redis/go-redis/v9"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[Notifier] Starting notification-consumer...")

	cfg := config.LoadForService("NOTIFIER")

	// Connect to PostgreSQL
	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[Notifier] Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, "notifier"); err != nil {
		log.Fatalf("[Notifier] Failed to run migrations: %v", err)
	}

	// Connect to RabbitMQ
	rmqConn, err := rabbitmq.Connect(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("[Notifier] Failed to connect to RabbitMQ: %v", err)
	}
	defer rmqConn.Close()

	// Optional Redis client for realtime in-app fan-out
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("[Notifier] Invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()
	}

	store := notifier.NewStore(db)
	preferences := notifier.NewPreferenceResolver(db)
	users := userdirectory.NewClient(cfg.UserServiceURL, 3*time.Second)

	registry, err := notifier.NewRegistry(
		&notifier.InAppStrategy{Store: store, Redis: redisClient},
		&notifier.EmailStrategy{
			Store: store,
			Users: users,
			Sender: &notifier.SMTPSender{
				Addr:        cfg.SMTPAddr,
				From:        cfg.SMTPFrom,
				DialTimeout: 5 * time.Second,
			},
		},
		&notifier.PushStrategy{
			Store:      store,
			GatewayURL: cfg.PushGatewayURL,
			HTTP:       &http.Client{Timeout: 5 * time.Second},
		},
		&notifier.SMSStrategy{Store: store},
	)
	if err != nil {
		log.Fatalf("[Notifier] Invalid strategy registry: %v", err)
	}

	dispatcher := notifier.NewDispatcher(registry, cfg.DeliveryWorkers, 15*time.Second)
	defer dispatcher.Close()

	consumer := notifier.NewConsumer(store, preferences, dispatcher, users)

	consumerCfg := rabbitmq.ConsumerConfig{
		QueueName:    "notifications.connection.events",
		DLQName:      "dlq.notifications.connection.events",
		RoutingKeys:  models.AllEventTypes(),
		ConsumerName: "notification-consumer",
		Prefetch:     cfg.DeliveryWorkers,
	}

	if err := rabbitmq.SetupConsumer(rmqConn, consumerCfg, consumer.HandleMessage); err != nil {
		log.Fatalf("[Notifier] Failed to setup consumer: %v", err)
	}

	log.Println("[Notifier] Consumer is running. Waiting for messages...")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[Notifier] Shutting down...")
}
