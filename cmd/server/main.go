package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"article_cms/internal/api"
	"article_cms/internal/config"
	"article_cms/internal/pagination"
	"article_cms/internal/publisher"
	"article_cms/internal/service"
	"article_cms/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// A nil interface disables publish events; a typed nil would not.
	var events service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	} else {
		logger.Info("publish events disabled")
	}

	articleStore := postgres.NewArticleStore(db)
	userStore := postgres.NewUserStore(db)
	organizationStore := postgres.NewOrganizationStore(db)
	txManager := postgres.NewTransactionManager(db)

	articlePaginator, err := pagination.New(service.ArticlePaginateConfig(postgres.ArticleSchema, cfg.Pagination))
	if err != nil {
		logger.Error("invalid article pagination config", "error", err)
		os.Exit(1)
	}
	userPaginator, err := pagination.New(service.UserPaginateConfig(postgres.UserSchema, cfg.Pagination))
	if err != nil {
		logger.Error("invalid user pagination config", "error", err)
		os.Exit(1)
	}
	organizationPaginator, err := pagination.New(service.OrganizationPaginateConfig(postgres.OrganizationSchema, cfg.Pagination))
	if err != nil {
		logger.Error("invalid organization pagination config", "error", err)
		os.Exit(1)
	}

	articleService := service.NewArticleService(articleStore, txManager, events, articlePaginator, logger)
	userService := service.NewUserService(userStore, userPaginator, logger)
	organizationService := service.NewOrganizationService(organizationStore, organizationPaginator, logger)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(api.Handlers{
		Articles:      api.NewArticleHandler(articleService, logger),
		Users:         api.NewUserHandler(userService, logger),
		Organizations: api.NewOrganizationHandler(organizationService, logger),
	}, cfg.HTTP.AllowedOrigins, logger)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting article cms", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
