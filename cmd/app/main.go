package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/krish-maurya/Daily-Planner/internal/config"
	"github.com/krish-maurya/Daily-Planner/internal/database"
	"github.com/krish-maurya/Daily-Planner/internal/handler"
	"github.com/krish-maurya/Daily-Planner/internal/repo"
	"github.com/krish-maurya/Daily-Planner/internal/service"
	"github.com/krish-maurya/Daily-Planner/pkg/logger"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, zlog); err != nil {
			zlog.Fatal("migrations failed", zap.Error(err))
		}
	}

	pool, err := database.NewPool(context.Background(), cfg.DatabaseURL, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	taskHandler := handler.NewTaskHandler(service.NewTaskService(repo.NewTaskRepo(pool)), zlog)
	goalHandler := handler.NewGoalHandler(service.NewGoalService(repo.NewGoalRepo(pool)), zlog)

	r := handler.NewRouter(taskHandler, goalHandler, cfg.JWTSecret, zlog)

	srv := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		zlog.Info("server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	zlog.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("shutdown error", zap.Error(err))
	}
	zlog.Info("server stopped")
}
