package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hibiken/asynq"
	"github.com/mymmrac/telego"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"guess_game/internal/config"
	"guess_game/internal/domain/service/game"
	"guess_game/internal/infrastructure/notifier"
	"guess_game/internal/infrastructure/persistence"
	"guess_game/internal/infrastructure/sessions"
	"guess_game/internal/server"
	"guess_game/internal/transport/bot"
	"guess_game/internal/transport/bot/handler"
	"guess_game/internal/worker"
	"guess_game/pkg/application/connectors"
	"guess_game/pkg/application/modules"
	"guess_game/pkg/contextx"
	"guess_game/pkg/httpx"
	"guess_game/pkg/logx"
	"guess_game/pkg/middlewarex"
	"guess_game/pkg/probe"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const metricsNamespace = "guess_game"

// Run поднимает HTTP API, воркер записи результатов и (если задан токен)
// Telegram-бота и ждёт, пока ctx не будет отменён.
func Run(ctx context.Context, cfg config.Config) error {
	// Database
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	defer pg.Close(ctx)

	if err := pg.Ping(ctx); err != nil {
		return fmt.Errorf("pg.Ping: %w", err)
	}

	// Redis: сессии и очередь asynq
	rdb := &connectors.Redis{
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		Address:            cfg.Redis.Address,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	defer rdb.Close(ctx)

	if err := rdb.Ping(ctx); err != nil {
		return fmt.Errorf("rdb.Ping: %w", err)
	}

	asynqClient := asynq.NewClient(rdb.AsynqOpt())
	defer func() {
		if err := asynqClient.Close(); err != nil {
			logger(ctx).Error("asynqClient.Close", logx.Error(err))
		}
	}()

	// Repositories
	gameRepo := persistence.NewGameRepository(pg.Client(ctx))

	store, err := newSessionStore(ctx, cfg.Session, rdb)
	if err != nil {
		return err
	}

	// Services
	svc := game.NewGameService(store, game.UniformSource{}).
		WithRecorder(worker.NewResultQueue(asynqClient)).
		WithResults(gameRepo)

	masker := logx.NewSensitiveDataMasker()
	telegramClient := &http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(masker),
			httpx.WithLogFieldMaxLen(cfg.HTTP.LogFieldMaxLen),
			httpx.WithLevel(slog.LevelDebug),
		),
	}

	resultHandler := worker.NewResultHandler(gameRepo)

	if cfg.Bot.NotifyEnabled() {
		announcer, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.NotifyChatID,
			telego.WithHTTPClient(telegramClient),
		)
		if err != nil {
			return fmt.Errorf("notifier.NewTelegramBot: %w", err)
		}

		resultHandler = resultHandler.WithAnnouncer(announcer)
	}

	zapLogger, err := newZapLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("newZapLogger: %w", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:     cfg.HTTP.ListenAddress,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, server.NewHandler(
		server.NewServer(server.NewGameServer(svc)),
		masker,
		cfg.HTTP.LogFieldMaxLen,
		middlewarex.Metrics(metricsNamespace, prometheus.DefaultRegisterer),
	))

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Checks: map[string]probe.Check{
			"postgres": pg.Ping,
			"redis":    rdb.Ping,
		},
	}.Run(ctx, g)

	inspector := asynq.NewInspector(rdb.AsynqOpt())
	defer inspector.Close() //nolint:errcheck

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsListenAddress,
		Collectors: []prometheus.Collector{
			worker.NewQueueCollector(metricsNamespace, inspector, worker.QueueResults),
		},
	}.Run(ctx, g)

	modules.AsynqServer{
		Redis:           rdb.AsynqOpt(),
		Concurrency:     cfg.Redis.ResultsConcurrency,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		Logger:          zapLogger,
	}.Run(ctx, g,
		modules.AsynqQueues{worker.QueueResults: 1},
		modules.AsynqHandler{Pattern: worker.TypeRecordResult, Handle: resultHandler.Handle},
	)

	if cfg.Bot.Enabled() {
		telegramBot, err := telego.NewBot(cfg.Bot.Token, telego.WithHTTPClient(telegramClient))
		if err != nil {
			return fmt.Errorf("telego.NewBot: %w", err)
		}

		modules.Bot{}.Run(ctx, g, bot.New(telegramBot, handler.New(svc), cfg.Bot.AllowedChatIDs))
	} else {
		logger(ctx).Info("bot disabled, BOT_TOKEN is empty")
	}

	logger(ctx).Info("application started",
		slog.String("name", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("session-store", cfg.Session.Store),
	)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func newSessionStore(ctx context.Context, cfg config.Session, rdb *connectors.Redis) (game.SessionStore, error) {
	switch cfg.Store {
	case config.SessionStoreMemory:
		return sessions.NewMemoryStore(cfg.TTL), nil
	case config.SessionStoreRedis:
		return sessions.NewRedisStore(rdb.Client(ctx), cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}

func newZapLogger(level slog.Level) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()

	switch {
	case level <= slog.LevelDebug:
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case level >= slog.LevelError:
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	case level >= slog.LevelWarn:
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	return zapConfig.Build()
}
