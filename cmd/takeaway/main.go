package main

import (
	"context"
	"log"
	"os"

	"takeaway/config"
	"takeaway/internal/export"
	"takeaway/internal/menu"
	"takeaway/internal/service"
	"takeaway/internal/storage"
)

func main() {
	log.Println("Starting Takeaway Order Management System...")
	ctx := context.Background()
	cfg := config.Load()

	store, closeStore := mustInitStore(ctx, cfg)
	defer closeStore()

	var publisher service.EventPublisher
	if writer := config.NewKafkaWriter(cfg); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		log.Printf("Publishing order events to %s (topic %s)", cfg.KafkaBroker, cfg.KafkaTopic)
	}

	ledger, err := service.NewLedger(ctx, store, publisher)
	if err != nil {
		log.Fatal("Failed to load saved orders: ", err)
	}

	session := NewSession(ledger, menu.NewCatalog(), os.Stdin, os.Stdout, cfg.ExportDir, export.DefaultSlipGenerator{})
	if err := session.Run(ctx); err != nil {
		log.Printf("Session ended with error: %v", err)
	}

	log.Println("Application terminated successfully.")
}

func mustInitStore(ctx context.Context, cfg config.Config) (service.OrderStore, func()) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db := config.MustInitPostgres(cfg)
		store := storage.NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to prepare database: ", err)
		}
		log.Printf("Using postgres store at %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
		return store, func() { db.Close() }
	case config.BackendRedis:
		client := config.MustInitRedis(cfg)
		log.Printf("Using redis store at %s", cfg.RedisAddr())
		return storage.NewRedisStore(client, cfg.RedisPrefix), func() { client.Close() }
	case config.BackendFile:
		log.Printf("Using file store in %s", cfg.DataDir)
		return storage.NewFileStore(cfg.DataDir), func() {}
	default:
		log.Fatalf("Unknown STORE_BACKEND %q", cfg.StoreBackend)
		return nil, nil
	}
}
