package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/HamzaLatif02/portfolio/internal/config"
	"github.com/HamzaLatif02/portfolio/internal/page"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	gin.SetMode(cfg.GinMode)

	store, err := loadProjects(cfg.ProjectsPath)
	if err != nil {
		log.Fatal("Failed to load projects:", err)
	}
	log.Printf("Loaded %d projects", store.Len())

	registry := page.NewRegistry(store, page.Options{
		CarouselInterval: cfg.CarouselInterval,
		ConfirmationTTL:  cfg.ContactConfirmationTTL,
		IdleTTL:          cfg.PageIdleTTL,
		MaxPages:         cfg.MaxPages,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Unmount idle pages in background
	go registry.Run(ctx, cfg.PageSweepInterval)

	r, err := newRouter(cfg, registry)
	if err != nil {
		log.Fatal("Failed to build router:", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		// Request contexts end on shutdown so open event streams return.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down: %v", err)
		}
	}()

	log.Printf("Portfolio listening on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Server failed:", err)
	}
}
