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

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/bot"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/client"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/config"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/handler"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/repository"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/service"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/storage/cache"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/storage/db"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func purgeSessions(ctx context.Context, c *cache.Cache, every time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.PurgeExpired(); n > 0 {
				logger.Debug("purged expired quizzes", zap.Int("count", n))
			}
		}
	}
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
	}

	logger := setupLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.InitDB(ctx, cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer conn.Close()

	if cfg.DB.MigrationsPath != "" {
		if err := db.Migrate(ctx, conn, cfg.DB.MigrationsPath, logger); err != nil {
			logger.Fatal("failed to apply migrations", zap.Error(err))
		}
	}

	repos := repository.NewRepository(conn)
	clients := client.InitClients(cfg.Clients)
	sessions := cache.NewCache()
	services := service.InitServices(clients, repos, sessions, cfg.Quiz, logger)

	go purgeSessions(ctx, sessions, cfg.Quiz.PurgeInterval, logger)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler.NewHandler(services, logger).InitRoutes(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("http server started", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	var telegram *bot.TelegramAPI
	if cfg.Bot.Enabled {
		telegram, err = bot.NewTelegramAPI(cfg.Bot.Token, cfg.Env, services, sessions, cfg.Bot, logger)
		if err != nil {
			logger.Fatal("failed init telegram bot", zap.Error(err))
		}
		go telegram.Start()
	}

	<-ctx.Done()
	logger.Info("shutting down")

	if telegram != nil {
		telegram.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down http server", zap.Error(err))
	}
}
