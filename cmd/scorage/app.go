package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/KirkDiggler/scorage/internal/common/uuid"
	"github.com/KirkDiggler/scorage/internal/repositories/store"
	"github.com/KirkDiggler/scorage/internal/services/scorekeeper"
	"github.com/redis/go-redis/v9"
)

// app carries the state shared by every subcommand of one invocation
type app struct {
	configPath string
	ledgerID   string
	noColor    bool

	cfg     *cliConfig
	service scorekeeper.Service
	closers []io.Closer
}

// scores returns the scorekeeper service, building it from the config on
// first use so commands like version never touch the store
func (a *app) scores(ctx context.Context) (scorekeeper.Service, error) {
	if a.service != nil {
		return a.service, nil
	}

	cfg, err := a.config()
	if err != nil {
		return nil, err
	}

	repo, err := a.openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc, err := scorekeeper.New(&scorekeeper.Config{
		Store:         repo,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return nil, err
	}

	a.service = svc
	return svc, nil
}

func (a *app) config() (*cliConfig, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return nil, err
	}
	a.cfg = &cfg
	return a.cfg, nil
}

func (a *app) openStore(ctx context.Context, cfg *cliConfig) (store.Repository, error) {
	switch cfg.Store.Backend {
	case backendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.closers = append(a.closers, client)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Addr, err)
		}

		return store.NewRedis(&store.Config{
			RedisClient: client,
			Prefix:      cfg.Redis.Prefix,
			Disabled:    cfg.Store.Disabled,
		})
	default:
		return store.NewFile(&store.FileConfig{
			Dir:      cfg.Store.Dir,
			Disabled: cfg.Store.Disabled,
		})
	}
}

func (a *app) colorEnabled() bool {
	if a.noColor {
		return false
	}
	cfg, err := a.config()
	if err != nil {
		return true
	}
	return cfg.UI.Color
}

func (a *app) close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
