package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/youpower/youpower-api/api/handlers"
	"github.com/youpower/youpower-api/api/scheduler"
	"github.com/youpower/youpower-api/config"
)

const shutdownTimeout = 15 * time.Second

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	//initialize database and router
	if err := a.Initialize(); err != nil {
		zap.S().Fatalw("failed to initialize", "error", err)
	}

	s := scheduler.NewScheduler(a.Users(), a.Config.PendingReleaseSchedule)
	if err := s.Start(); err != nil {
		zap.S().Fatalw("failed to start scheduler", "error", err)
	}

	port := a.Config.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", port),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.S().Infow("youpower-api is up and running",
			"port", port,
			"url", a.Config.BaseURL,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.S().Info("shutting down youpower-api")

	s.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.S().Errorw("server shutdown failed", "error", err)
	}
	if err := a.Close(ctx); err != nil {
		zap.S().Errorw("failed to disconnect from database", "error", err)
	}
}
