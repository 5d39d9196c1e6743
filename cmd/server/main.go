package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aditya26raj01/status-app-backend/internal/changefeed"
	"github.com/aditya26raj01/status-app-backend/internal/di"
	"github.com/aditya26raj01/status-app-backend/internal/handler"
	"github.com/aditya26raj01/status-app-backend/pkg/config"
	"github.com/aditya26raj01/status-app-backend/pkg/database"
	"github.com/aditya26raj01/status-app-backend/pkg/logger"
	"github.com/aditya26raj01/status-app-backend/pkg/middleware"
	"github.com/aditya26raj01/status-app-backend/pkg/telemetry"
	"github.com/aditya26raj01/status-app-backend/pkg/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	level := "info"
	if cfg.App.Debug {
		level = "debug"
	}
	if err := logger.Init(&logger.Config{
		Level:       level,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
		OutputPath:  "stdout",
	}); err != nil {
		logger.Fatal("init logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Telemetry
	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	}); err != nil {
		logger.Fatal("init telemetry", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = telemetry.Shutdown(shutdownCtx)
	}()

	// Database
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxConns),
		MinConns:        int32(cfg.Database.MinConns),
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		MaxRetries:      3,
		RetryInterval:   2 * time.Second,
		ConnectTimeout:  cfg.Database.ConnectTimeout,
	}
	if err := database.Migrate(dbCfg); err != nil {
		logger.Fatal("run migrations", zap.Error(err))
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer db.Close()
	logger.Info("connected to postgres", zap.String("host", cfg.Database.Host))

	// Redis cache for the public status page; optional
	var cache *redis.Client
	if cfg.Redis.Host != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err := cache.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, status cache disabled", zap.Error(err))
			cache = nil
		}
	}
	if cache != nil {
		defer func() { _ = cache.Close() }()
	}

	// Kafka changefeed; optional
	var feed *changefeed.Publisher
	if cfg.Kafka.Enabled {
		feed, err = changefeed.NewPublisher(changefeed.Config{
			Brokers:  cfg.Kafka.Brokers,
			Topic:    cfg.Kafka.Topic,
			ClientID: cfg.Kafka.ClientID,
		})
		if err != nil {
			logger.Fatal("init changefeed", zap.Error(err))
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			feed.Close(closeCtx)
		}()
		logger.Info("changefeed enabled", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	container := di.NewContainer(&di.ContainerConfig{
		DB:             db,
		Cache:          cache,
		StatusCacheTTL: cfg.Redis.StatusCacheTTL,
		Feed:           feed,
		WSOriginAllows: cfg.Server.WSAllowedOrigins,
	})

	router := handler.NewRouter(&handler.RouterConfig{
		Auth: &middleware.AuthConfig{
			Verifier: token.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer),
			Users:    container.UserRepo,
		},
		CORS:     middleware.DefaultCORSConfig(),
		Health:   container.HealthHandler,
		Org:      container.OrgHandler,
		User:     container.UserHandler,
		Team:     container.TeamHandler,
		Service:  container.ServiceHandler,
		Incident: container.IncidentHandler,
		Status:   container.StatusHandler,
		Log:      container.LogHandler,
		WS:       container.WSHandler,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", zap.Error(err))
	}
}
