// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command nlp starts the TaskGenie NLP API server.
//
// The server provides deterministic task analysis:
//   - Classification (category, priority, keywords, due date, suggestions)
//   - Subtask breakdown by archetype
//   - Keyword frequency extraction
//
// Usage:
//
//	go run ./cmd/nlp
//	go run ./cmd/nlp -port 8080
//
// With the alternative stemmer:
//
//	NLP_LEMMATIZER=snowball go run ./cmd/nlp
//
// Example requests:
//
//	# Health check
//	curl http://localhost:5001/health
//
//	# Classify a task
//	curl -X POST http://localhost:5001/api/nlp/classify \
//	  -H "Content-Type: application/json" \
//	  -d '{"text": "Urgent: send the budget report before tomorrow"}'
//
//	# Break a task into subtasks
//	curl -X POST http://localhost:5001/api/nlp/breakdown \
//	  -H "Content-Type: application/json" \
//	  -d '{"text": "Plan the team offsite"}'
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/Akchhya1108/TaskGenie/services/nlp"
)

func main() {
	// .env is optional; environment variables win when both are set.
	if err := godotenv.Load(); err == nil {
		slog.Debug("Loaded .env file")
	}

	port := flag.Int("port", defaultPort(), "Port to listen on")
	debug := flag.Bool("debug", false, "Enable debug mode")
	flag.Parse()

	if *debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// W3C TraceContext propagation so trace context flows from incoming
	// HTTP headers through all handlers.
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	cfg := nlp.DefaultServiceConfig()
	if lemmatizer := os.Getenv("NLP_LEMMATIZER"); lemmatizer != "" {
		cfg.Lemmatizer = lemmatizer
	}
	svc, err := nlp.NewService(cfg)
	if err != nil {
		slog.Error("Failed to initialize NLP service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers := nlp.NewHandlers(svc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("taskgenie-nlp"))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
	}))
	if *debug {
		router.Use(gin.Logger())
	}

	router.GET("/health", handlers.HandleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	nlp.RegisterRoutes(api, handlers)

	printBanner(*port)

	// Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		slog.Info("Shutting down TaskGenie NLP server")
		os.Exit(0)
	}()

	addr := fmt.Sprintf(":%d", *port)
	slog.Info("Starting TaskGenie NLP server", slog.String("address", addr))
	if err := router.Run(addr); err != nil && err != http.ErrServerClosed {
		slog.Error("Failed to start server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// defaultPort resolves the listen port from the PORT environment
// variable, falling back to 5001.
func defaultPort() int {
	if raw := os.Getenv("PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil && port > 0 {
			return port
		}
		slog.Warn("Ignoring invalid PORT value", slog.String("value", raw))
	}
	return 5001
}

// printBanner prints the startup banner with quick-start commands.
func printBanner(port int) {
	banner := `
╔═══════════════════════════════════════════════════════════════════╗
║                     TASKGENIE NLP SERVER                          ║
╠═══════════════════════════════════════════════════════════════════╣
║                                                                   ║
║  Deterministic task triage: classify, break down, extract.        ║
║                                                                   ║
║  Quick Start:                                                     ║
║  ┌─────────────────────────────────────────────────────────────┐  ║
║  │ # Health check                                              │  ║
║  │ curl http://localhost:%d/health                           │  ║
║  │                                                             │  ║
║  │ # Classify a task                                           │  ║
║  │ curl -X POST http://localhost:%d/api/nlp/classify \       │  ║
║  │   -H "Content-Type: application/json" \                     │  ║
║  │   -d '{"text": "Buy groceries tomorrow"}'                   │  ║
║  └─────────────────────────────────────────────────────────────┘  ║
║                                                                   ║
║  Endpoints:                                                       ║
║  ├── POST /api/nlp/classify                                       ║
║  ├── POST /api/nlp/breakdown                                      ║
║  ├── POST /api/nlp/extract-keywords                               ║
║  ├── GET  /health                                                 ║
║  └── GET  /metrics                                                ║
║                                                                   ║
║  Press Ctrl+C to stop                                             ║
╚═══════════════════════════════════════════════════════════════════╝
`
	fmt.Printf(banner, port, port)
}
