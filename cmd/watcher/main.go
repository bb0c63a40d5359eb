package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"post_watcher/internal/bot"
	"post_watcher/internal/config"
	"post_watcher/internal/identity"
	"post_watcher/internal/notifier/telegram"
	"post_watcher/internal/publisher"
	"post_watcher/internal/scheduler"
	"post_watcher/internal/service"
	"post_watcher/internal/source/xapi"
	"post_watcher/internal/storage/postgres"
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

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	catalog, err := identity.LoadCatalog(cfg.Source.FingerprintsPath)
	if err != nil {
		logger.Error("failed to load fingerprint catalog", "error", err)
		os.Exit(1)
	}
	selector, err := identity.NewSelector(catalog)
	if err != nil {
		logger.Error("failed to build identity selector", "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fingerprint catalog", "fingerprints", len(catalog))

	var events service.EventPublisher
	if cfg.RabbitMQ.URL != "" {
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
	}

	tweetStore := postgres.NewTweetStore(db)
	userStore := postgres.NewUserStore(db)

	client := xapi.New(xapi.Config{
		BaseURL: cfg.Source.BaseURL,
		Timeout: cfg.Source.Timeout,
	}, logger)

	notify := telegram.NewNotifier(telegram.Config{
		BotToken:   cfg.Telegram.BotToken,
		APIBaseURL: cfg.Telegram.APIBaseURL,
		Timeout:    cfg.Source.Timeout,
	}, logger)

	coordinator := service.NewCoordinator(
		client,
		client,
		selector,
		cfg.Watch.Concurrency,
		cfg.Watch.TopN,
		logger,
	)

	monitor := service.NewMonitorService(
		tweetStore,
		coordinator,
		notify,
		events,
		logger,
	)

	sched := scheduler.NewScheduler(monitor, cfg.Watch.Interval, logger)

	commandBot := bot.New(bot.Config{
		BotToken:    cfg.Telegram.BotToken,
		APIBaseURL:  cfg.Telegram.APIBaseURL,
		PollTimeout: cfg.Telegram.PollTimeout,
	}, userStore, tweetStore, notify, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	go func() {
		if err := commandBot.Run(ctx); err != nil && err != context.Canceled {
			logger.Error("command bot error", "error", err)
		}
	}()

	logger.Info("starting post watcher",
		"interval", cfg.Watch.Interval,
		"concurrency", cfg.Watch.Concurrency,
		"top_n", cfg.Watch.TopN,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
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
