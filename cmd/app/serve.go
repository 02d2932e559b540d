package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpin "ordersheet/internal/adapters/in/http"
)

const shutdownTimeout = 15 * time.Second

func (a *app) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server, err := a.root.CreateHTTPServer()
	if err != nil {
		return err
	}
	e, err := httpin.NewRouter(server, a.root.Registry(), a.logger)
	if err != nil {
		return err
	}

	jobManager := a.root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "component", "http", "port", a.config.HTTPPort)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", a.config.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.logger.Info("http server shutting down", "component", "http")
	return e.Shutdown(shutdownCtx)
}
