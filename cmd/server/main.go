package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdf-intake/internal/config"
	"pdf-intake/internal/handler"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
	// headroom on top of the parse timeout for upload and rendering
	writeTimeoutSlack = 15 * time.Second
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: .env file could not be loaded: %v", err)
	}
	// Wiring
	container := config.NewContainer()

	pdfHandler := handler.NewPDFHandler(
		container.PDFService,
		container.Logger,
	)

	requestMiddleware := handler.NewRequestMiddleware(
		container.Logger,
	)

	// Router
	router := handler.NewRouter(
		pdfHandler,
		container.Config.GetAllowedOrigins(),
		requestMiddleware.Middleware,
	)

	server := &http.Server{
		Addr:              ":" + container.Config.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      container.Config.GetParseTimeout() + writeTimeoutSlack,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		container.Logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		container.Logger.Error("Server stopped with error", err)
		os.Exit(1)
	}

	container.Logger.Info("Server exited")
}
