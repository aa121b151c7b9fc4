// main.go
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

	"github.com/gin-gonic/gin"

	"xtrnia/assets"
	"xtrnia/auth"
	"xtrnia/config"
	"xtrnia/database"
	"xtrnia/logger"
	"xtrnia/metrics"
	"xtrnia/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := run(cfg); err != nil {
		logger.Error.Fatalf("Server stopped: %v", err)
	}
}

func run(cfg *config.Config) error {
	if err := logger.InitLogger(cfg.LogDir); err != nil {
		return err
	}
	logger.SetLogLevel(cfg.Env)

	// Set Gin to release mode for production
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	host, err := assets.New(cfg.Assets)
	if err != nil {
		return err
	}
	pub, err := metrics.New(cfg.Metrics, cfg.Assets.AWSRegion)
	if err != nil {
		return err
	}
	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	engine := router.New(router.Deps{
		Config:  cfg,
		DB:      db,
		Tokens:  tokens,
		Assets:  host,
		Metrics: pub,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info.Printf("Starting server on %s (env=%s, assets=%s)", cfg.HTTPAddr, cfg.Env, cfg.Assets.Host)
	return serve(ctx, newHTTPServer(cfg.HTTPAddr, engine))
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		// uploads of up to 20MB need a generous body window
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
