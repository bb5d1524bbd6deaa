package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oficina/internal/api"
	"oficina/internal/bot"
	"oficina/internal/config"
	"oficina/internal/events"
	"oficina/internal/logging"
	"oficina/internal/metrics"
	"oficina/internal/repository"
	"oficina/internal/service"
	"oficina/internal/worker"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const placeholderToken = "YOUR_BOT_TOKEN_HERE"

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func(c io.Closer) { _ = c.Close() })(closer)
	}

	if err := os.MkdirAll(cfg.Exports.Path, 0o755); err != nil {
		logger.Error().Err(err).Str("path", cfg.Exports.Path).Msg("create exports directory")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, stateService := initStateService(ctx, cfg, logger)
	if redisClient != nil {
		defer func() { _ = repository.Close(redisClient) }()
	}

	office := service.NewOffice(cfg.Hotel)
	eventBus := events.NewEventBus()
	subscribeAuditLog(eventBus, logging.Component(logger, "events"))

	hotelService := service.NewHotelService(office.Roster, eventBus, logging.Component(logger, "hotel"))
	payrollService := service.NewPayrollService(office.Payroll, eventBus, logging.Component(logger, "payroll"))
	contactService := service.NewContactService(office.Contacts, eventBus, logging.Component(logger, "contacts"))

	if cfg.Exports.Autosave {
		exportWorker := worker.NewExportWorker(payrollService, cfg.Exports.Path, worker.RetryPolicy{
			MaxRetries:    5,
			InitialDelay:  2 * time.Second,
			MaxDelay:      time.Minute,
			BackoffFactor: 2,
		}, logging.Component(logger, "export-worker"))
		exportWorker.Subscribe(eventBus)
		go exportWorker.Start(ctx)
	}

	startMetrics(ctx, cfg, logger)

	if cfg.API.Enabled {
		apiServer := api.NewHTTPServer(cfg.API, api.Services{
			Hotel:    hotelService,
			Payroll:  payrollService,
			Contacts: contactService,
		}, cfg.Exports.Path, logging.Component(logger, "api"))
		go func() {
			if err := apiServer.Start(); err != nil {
				logger.Error().Err(err).Msg("API server error")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = apiServer.Shutdown(shutdownCtx)
		}()
	}

	return startBot(ctx, cfg, stateService, hotelService, payrollService, contactService, logger)
}

func loadConfigAndLogger() (*config.Config, *zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	return cfg, logging.Component(baseLogger, "bot-main"), closer, nil
}

// initStateService keeps form drafts in Redis when it is configured and falls
// back to process memory whenever Redis is unreachable.
func initStateService(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*redis.Client, *service.StateService) {
	ttl := time.Duration(cfg.Bot.StateTTL) * time.Second

	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = repository.NewRedisClient(cfg.Redis)
		if errPing := repository.Ping(ctx, redisClient); errPing != nil {
			logger.Warn().Err(errPing).Msg("Redis unavailable")
		}
	}

	primaryRepo := repository.NewRedisStateRepository(redisClient, ttl)
	fallbackRepo := repository.NewMemoryStateRepository(ttl)
	stateRepo := repository.NewFailoverStateRepository(primaryRepo, fallbackRepo, logging.Component(logger, "state"))
	return redisClient, service.NewStateService(stateRepo, logger)
}

func startBot(
	ctx context.Context,
	cfg *config.Config,
	stateService *service.StateService,
	hotelService *service.HotelService,
	payrollService *service.PayrollService,
	contactService *service.ContactService,
	logger *zerolog.Logger,
) error {
	if cfg.Telegram.BotToken == "" || cfg.Telegram.BotToken == placeholderToken {
		logger.Error().Msg("Set telegram.bot_token in config.yaml")
		return os.ErrInvalid
	}

	botWrapper, err := bot.Connect(cfg.Telegram.BotToken, cfg.Telegram.Debug)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create BotAPI")
		return err
	}
	tgService := service.NewTelegramService(botWrapper)

	var botMetrics *bot.Metrics
	if cfg.Monitoring.PrometheusEnabled {
		botMetrics = bot.NewMetrics(nil)
	}

	telegramBot := bot.NewBot(
		tgService, cfg, stateService,
		hotelService, payrollService, contactService,
		botMetrics, logging.Component(logger, "bot"),
	)

	logger.Info().Msg("Bot started")
	telegramBot.Start(ctx)

	logger.Info().Msg("Shutdown complete.")
	return nil
}

func subscribeAuditLog(bus *events.EventBus, logger *zerolog.Logger) {
	audit := func(ev *events.Event) error {
		logger.Info().
			Str("event_id", ev.ID.String()).
			Str("event", ev.Type).
			RawJSON("payload", ev.Payload).
			Msg("office event")
		return nil
	}
	for _, t := range []string{
		events.EventRoomCheckedIn,
		events.EventRoomCheckedOut,
		events.EventEmployeeAdded,
		events.EventContactAdded,
		events.EventPayrollExported,
	} {
		bus.Subscribe(t, audit)
	}
}

func startMetrics(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) {
	if !cfg.Monitoring.PrometheusEnabled {
		return
	}

	metrics.Register()
	go startMetricsServer(ctx, cfg.Monitoring.PrometheusPort, logger)
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
