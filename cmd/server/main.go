package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"forensics/internal/ai"
	"forensics/internal/config"
	"forensics/internal/db"
	"forensics/internal/handlers"
	"forensics/internal/services"
	"forensics/internal/store"
	"forensics/internal/websocket"
)

func main() {
	cfg := config.Load()
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer database.Close()

	entities := store.NewEntityStore(database)
	posts := store.NewPostStore(database)
	wallets := store.NewWalletStore(database)
	links := store.NewLinkStore(database)
	transactions := store.NewTransactionStore(database)
	reports := store.NewReportStore(database)
	extracted := store.NewExtractedEntityStore(database)
	analysts := store.NewAnalystStore(database)
	audit := store.NewAuditStore(database)
	txRunner := db.NewTxRunner(database)
	hub := websocket.NewHub()

	reportService := services.NewReportService(txRunner, entities, posts, wallets, transactions, reports)
	seedService := services.NewSeedService(txRunner, entities, posts, wallets, transactions, links, extracted)

	var analyzer handlers.Analyzer
	if cfg.OpenAIAPIKey != "" {
		client, err := ai.NewClient(ai.Config{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		})
		if err != nil {
			log.Fatalf("failed to build AI client: %v", err)
		}
		analyzer = client
	} else {
		log.Println("OPENAI_API_KEY not set, AI analysis disabled")
	}

	handler := handlers.New(txRunner, cfg, entities, posts, wallets, links, transactions, reports, extracted, analysts, audit, reportService, seedService, analyzer, hub)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("forensics API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
