package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ainews/app/api"
	"ainews/app/cfg"
	"ainews/app/database"
)

func main() {
	opts, err := cfg.ParseServerOpts()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if opts == nil {
		// Help was shown
		return
	}

	cfg.SetupLogging(opts.Debug)
	slog.Info("Starting server", "version", cfg.GetVersion())

	db, err := database.Open(opts.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", opts.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("Database ready", "path", opts.DBPath)

	handler := api.NewHandler(database.NewArticleRepository(db))
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + opts.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", opts.Port)
		slog.Info("Endpoints available",
			"index", fmt.Sprintf("http://localhost:%s/", opts.Port),
			"articles", fmt.Sprintf("http://localhost:%s/api/articles", opts.Port),
			"health", fmt.Sprintf("http://localhost:%s/health", opts.Port))

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}
