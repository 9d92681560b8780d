package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"codeleap/internal/config"
	"codeleap/internal/database"
	"codeleap/internal/handlers"
	"codeleap/internal/localstore"
	"codeleap/internal/middleware"
	"codeleap/internal/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	middleware.Configure(cfg.JWTSecret)

	db, err := database.NewMongoDB(cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			log.Printf("Error disconnecting from database: %v", err)
		}
	}()

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureIndexes(indexCtx); err != nil {
		log.Printf("Warning: failed to create indexes: %v", err)
	}
	cancel()

	local := localstore.Open(cfg.LocalStorePath)
	metrics := utils.NewMetricsCollector()
	server := handlers.NewServer(db, local, metrics)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", server.HandleHealth())
	mux.HandleFunc("/auth/register", server.HandleRegister())
	mux.HandleFunc("/auth/login", server.HandleLogin())

	// Forum and editor routes accept anonymous reads; the handlers require
	// an identity where one is needed (creates and deletes), and the
	// snippet/challenge handlers route anonymous callers to local storage.
	mux.HandleFunc("/posts", middleware.OptionalAuth(server.HandlePosts()))
	mux.HandleFunc("/post", middleware.OptionalAuth(server.HandlePost()))
	mux.HandleFunc("/comments", middleware.OptionalAuth(server.HandleComments()))
	mux.HandleFunc("/snippets", middleware.OptionalAuth(server.HandleSnippets()))
	mux.HandleFunc("/challenges", middleware.OptionalAuth(server.HandleChallenges()))
	mux.HandleFunc("/history", server.HandleRunHistory())

	corsConfig := middleware.DefaultCORSConfig(cfg.AllowedOrigins)
	handler := middleware.CORSMiddleware(corsConfig)(mux)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting server on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
