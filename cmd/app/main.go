package main

import (
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/ledgerkit/transfer-service/pkg/events"
	"github.com/ledgerkit/transfer-service/pkg/handlers/transfers"
	"github.com/ledgerkit/transfer-service/pkg/ledger"
	"github.com/ledgerkit/transfer-service/pkg/middleware"
	"github.com/ledgerkit/transfer-service/pkg/models"
	"github.com/ledgerkit/transfer-service/pkg/storage"
	"github.com/ledgerkit/transfer-service/pkg/storage/memory"
	"github.com/ledgerkit/transfer-service/pkg/storage/postgres"
	_ "github.com/lib/pq"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	store := newStore()

	// Kafka publishing is optional; without brokers the engine runs silent.
	var publisher events.Publisher
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		topic := os.Getenv("KAFKA_TOPIC")
		if topic == "" {
			topic = "ledger-transfers"
		}
		kafkaPublisher := events.NewKafkaPublisher(strings.Split(brokers, ","), topic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	engine := ledger.NewEngine(store, publisher)
	handler := transfers.NewTransfersHandler(engine)

	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(logger))
	handler.RegisterRoutes(router)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newStore opens the Postgres store when DATABASE_URL is set and otherwise
// falls back to the in-memory store with a pair of demo accounts.
func newStore() storage.Store {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Println("DATABASE_URL not set, using in-memory store")
		memStore := memory.New()
		memStore.SeedAccount(models.Account{ID: "alice", Email: "alice@example.com", Name: "Alice", BalanceInCents: 100_000})
		memStore.SeedAccount(models.Account{ID: "bob", Email: "bob@example.com", Name: "Bob", BalanceInCents: 100_000})
		return memStore
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to reach database: %v", err)
	}
	return postgres.New(db)
}
