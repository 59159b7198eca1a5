// Package main wires the HTTP server for the user management service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"user-management/config"
	"user-management/internal/repository"
	handlers_fiber "user-management/internal/transport/http/server/handlers-fiber"
	"user-management/internal/transport/http/middleware"
	"user-management/internal/usecase"
	"user-management/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, cfg.Storage.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err, "backend", cfg.Storage.Backend)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
		BodyLimit:    cfg.HTTP.BodyLimit,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))
	serv.Use(middleware.RateLimiter(cfg.HTTP.RateLimit))

	h := handlers_fiber.NewHandler(log, uc)
	handlers_fiber.RegisterHandlers(serv, h)

	go func() {
		log.Infow("listening", "addr", cfg.ServerAddr(), "backend", cfg.Storage.Backend)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
