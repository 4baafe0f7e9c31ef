package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oakline-partners/pkg/logger"
)

// how long in-flight requests get to finish on shutdown
const drainTimeout = 5 * time.Second

// build the HTTP server around the configured router
func (a *App) InitializeServer() {
	a.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// serve until SIGINT/SIGTERM, then drain
func (a *App) StartServer() {
	errs := make(chan error, 1)
	go func() {
		logger.GlobalLogger.Printf("HTTP server listening on %s", a.Server.Addr)
		logger.GlobalLogger.Printf("Swagger UI: http://localhost%s/swagger/index.html", a.Server.Addr)
		errs <- a.Server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		if err != nil && err != http.ErrServerClosed {
			logger.GlobalLogger.Errorf("Server failed: %v", err)
			os.Exit(1)
		}
	case sig := <-quit:
		logger.GlobalLogger.Printf("Received %s, draining connections", sig)
		ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
		defer cancel()
		if err := a.Server.Shutdown(ctx); err != nil {
			logger.GlobalLogger.Errorf("Forced shutdown: %v", err)
			os.Exit(1)
		}
		logger.GlobalLogger.Println("Shutdown complete")
	}
}
