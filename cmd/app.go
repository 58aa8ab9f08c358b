package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/vagas/internal/config"
	"github.com/spigell/vagas/internal/logger"
	"github.com/spigell/vagas/internal/store"
	"github.com/spigell/vagas/internal/vagas"
	"github.com/spigell/vagas/internal/workflow"
)

// application holds everything a command needs. It is built once per command
// run from the loaded configuration.
type application struct {
	config  *config.Config
	logger  *zap.Logger
	client  *vagas.Client
	cache   store.IDCache
	history *store.History
	service *workflow.Service
	json    bool
}

func newApplication(ctx context.Context) (*application, error) {
	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(cfg, "", "  ")
	log.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	client, err := vagas.New(cfg.API, log)
	if err != nil {
		return nil, err
	}

	cache, err := openCache(ctx, cfg.Cache, log)
	if err != nil {
		return nil, err
	}

	history, err := store.NewHistory(cfg.HistoryFile)
	if err != nil {
		cache.Close()
		return nil, err
	}

	validator := newValidator(cfg)

	return &application{
		config:  cfg,
		logger:  log,
		client:  client,
		cache:   cache,
		history: history,
		service: workflow.New(client, validator, cache, history, log),
		json:    viper.GetBool("json"),
	}, nil
}

func openCache(ctx context.Context, cfg *config.CacheConfig, log *zap.Logger) (store.IDCache, error) {
	if cfg.Backend == store.BackendRedis {
		cache, err := store.NewRedisIDCache(ctx, cfg.RedisURL, cfg.RedisKey)
		if err != nil {
			return nil, err
		}
		log.Debug("using redis résumé id cache", zap.String("key", cfg.RedisKey))
		return cache, nil
	}

	log.Debug("using file résumé id cache", zap.String("path", cfg.Path))
	return store.NewFileIDCache(cfg.Path)
}

func (a *application) Close() {
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("closing résumé id cache", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// commandContext is cancelled on SIGINT or SIGTERM, which aborts in-flight
// requests and backoff waits.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// runWithApp builds the application, runs fn and reports its error through
// the logger before returning it.
func runWithApp(cmd *cobra.Command, fn func(ctx context.Context, a *application) error) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	a, err := newApplication(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := fn(ctx, a); err != nil {
		a.logger.Error(cmd.CommandPath()+" failed",
			zap.String("category", string(vagas.CategoryOf(err))),
			zap.Error(err),
		)
		return err
	}

	return nil
}
