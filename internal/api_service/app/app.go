package app

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/langowen/cnbrates/deploy/config"
	"github.com/langowen/cnbrates/internal/api_service/adapter/notifier/redis"
	"github.com/langowen/cnbrates/internal/api_service/ports/http/public"
	"github.com/langowen/cnbrates/internal/api_service/service"
	"github.com/langowen/cnbrates/internal/currency_fetcher/adapter/api_client/cnb"
	"github.com/langowen/cnbrates/internal/currency_fetcher/processor"
	"github.com/langowen/cnbrates/internal/entities"
	"github.com/langowen/cnbrates/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	redisPack "github.com/redis/go-redis/v9"
)

type App struct {
	cfg      *config.Config
	metrics  *metrics.Metrics
	notifier *redis.Notifier
}

func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

// Start wires the rate service and serves it until ctx is done. The returned
// channel is closed once the server has stopped.
func (a *App) Start(ctx context.Context) <-chan struct{} {
	InitLogger(a.cfg.Log.Level)
	slog.Info("Logger initialized")

	slog.With("config", a.cfg.Redacted()).Info("starting server")

	a.metrics = metrics.New(prometheus.DefaultRegisterer)

	a.notifier = InitNotifier(ctx, a.cfg)

	rateService := a.initService()
	slog.Info("Service initialized")

	serverDone := public.StartServer(ctx, rateService, a.cfg)
	slog.Info("server started", "port", a.cfg.HTTPServer.Port)

	done := make(chan struct{})
	go func() {
		<-serverDone
		a.close()
		close(done)
	}()

	return done
}

// InitLogger installs a text slog handler as the process default.
func InitLogger(level string) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: false,
	}))
	slog.SetDefault(logger)
}

// ParseLevel falls back to debug for unknown names.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

func (a *App) initService() *service.Service {
	var notifier service.Notifier
	if a.notifier != nil {
		notifier = a.notifier
	}

	rateService, err := NewRateService(a.cfg, a.metrics, notifier)
	if err != nil {
		log.Fatalln("Failed to initialize service rate", "error", err)
	}

	return rateService
}

// NewRateService builds the service from configuration. m and notifier may
// be nil.
func NewRateService(cfg *config.Config, m *metrics.Metrics, notifier service.Notifier) (*service.Service, error) {
	supported, err := entities.NewSupportedCurrencies(cfg.Currencies.SupportedCodes(), cfg.Currencies.Base)
	if err != nil {
		return nil, err
	}

	source, err := cnb.NewHTTPClient(cnb.Options{
		BaseURL:        cfg.CNB.BaseURL,
		DailyRatesPath: cfg.CNB.DailyRatesPath,
		Lang:           cfg.CNB.Lang,
		Timeout:        cfg.CNB.Timeout,
		RetryAttempts:  cfg.CNB.RetryAttempts,
		RetryDelay:     cfg.CNB.RetryDelay,
	}, m)
	if err != nil {
		return nil, err
	}

	var observer processor.Observer
	if m != nil {
		observer = m
	}

	return service.NewService(source, notifier, supported, observer)
}

// InitNotifier returns nil when REDIS_HOST is empty or Redis is unreachable.
func InitNotifier(ctx context.Context, cfg *config.Config) *redis.Notifier {
	if cfg.Redis.Host == "" {
		slog.Info("Redis host not set, fetch events disabled")
		return nil
	}

	options := &redisPack.Options{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	notifier, err := redis.InitNotifier(ctx, options, cfg.Redis.Channel)
	if err != nil {
		slog.Warn("Failed to initialize Redis notifier, fetch events disabled", "error", err)
		return nil
	}

	slog.Info("Redis notifier initialized", "channel", cfg.Redis.Channel)
	return notifier
}

func (a *App) close() {
	if a.notifier == nil {
		return
	}
	if err := a.notifier.Close(); err != nil {
		slog.Error("Failed to close Redis notifier", "error", err)
	}
}
