package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"askai-gateway/internal/config"
	"askai-gateway/internal/database"
	"askai-gateway/internal/handlers"
	"askai-gateway/internal/middleware"
	"askai-gateway/internal/repository"
	"askai-gateway/internal/router"
	"askai-gateway/internal/services"
)

func main() {
	log.Println("🚀 Starting AskAI Gateway...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Printf("✓ Environment variables loaded (%s)", cfg.Env)

	ctx := context.Background()

	// Released after the HTTP server has drained.
	var closers []func()

	// ──── Step 2: Initialize Chat Provider ────
	var chat services.ChatProvider
	switch cfg.ChatProvider {
	case "gemini":
		gemini, err := services.NewGeminiChat(ctx, cfg.GeminiAPIKey, cfg.ChatModel)
		if err != nil {
			log.Fatalf("✗ Gemini client initialization failed: %v", err)
		}
		closers = append(closers, gemini.Close)
		chat = gemini
	default:
		chat = services.NewOpenAIChat(cfg.OpenAIToken, cfg.OpenAIBaseURL, cfg.ChatModel, &http.Client{})
	}
	log.Printf("✓ Chat provider initialized (%s, %s)", chat.Name(), cfg.ChatModel)

	// ──── Step 3: Initialize Speech Synthesis ────
	var speech services.SpeechSynthesizer
	switch cfg.TTSProvider {
	case "google":
		google, err := services.NewGoogleSpeech(ctx, cfg.TTSAPIKey, cfg.TTSBaseURL)
		if err != nil {
			log.Fatalf("✗ Text-to-Speech client initialization failed: %v", err)
		}
		speech = google
	default:
		speech = services.NewTranslateSpeech(cfg.TTSBaseURL, &http.Client{})
	}
	log.Printf("✓ Speech synthesis initialized (%s)", speech.Name())

	// ──── Step 4: Initialize Audio Store ────
	var audioStore repository.AudioStore
	switch cfg.AudioStore {
	case "redis":
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		closers = append(closers, func() { redisClient.Close() })
		audioStore = repository.NewRedisAudioStore(redisClient, time.Duration(cfg.AudioTTLMinutes)*time.Minute)
		log.Println("✓ Redis audio store connected")
	default:
		audioStore = repository.NewFileAudioStore(cfg.AudioDir)
		log.Printf("✓ File audio store at %s", cfg.AudioDir)
	}

	// ──── Initialize Services & Handlers ────
	askService := services.NewAskService(chat, speech, audioStore)
	bearerAuth := middleware.NewBearerAuth(cfg.SecretToken)

	askHandler := handlers.NewAskHandler(
		askService,
		cfg.PublicBaseURL,
		cfg.TrustForwardedHeaders,
		cfg.StrictStatusCodes,
		time.Duration(cfg.ProviderTimeoutSeconds)*time.Second,
	)
	audioHandler := handlers.NewAudioHandler(audioStore, cfg.StrictStatusCodes)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(bearerAuth, askHandler, audioHandler)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := gracefulShutdown(ctx, server, closers...); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("✓ AskAI Gateway ready on http://localhost:%s (%s)", cfg.Port, cfg.Env)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
	<-stopped
	log.Println("✓ Shutdown complete")
}

// gracefulShutdown drains the server, then runs closers in order. Closers run
// even when the drain times out.
func gracefulShutdown(ctx context.Context, server *http.Server, closers ...func()) error {
	err := server.Shutdown(ctx)
	for _, closeFn := range closers {
		closeFn()
	}
	return err
}
