package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/pixelsmith/server/internal/accounts"
	"github.com/pixelsmith/server/internal/banlist"
	"github.com/pixelsmith/server/internal/config"
	"github.com/pixelsmith/server/internal/logger"
	"github.com/pixelsmith/server/internal/policy"
	"github.com/pixelsmith/server/internal/ratelimit"
)

const (
	// per-IP request budget across all API routes
	requestsPerMinute = 30
	requestBurst      = 10
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	var db *pgxpool.Pool
	var store accounts.Store

	if cfg.DatabaseURL != "" {
		pool, err := newDatabasePool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}

		db = pool
		store = accounts.NewPostgresStore(db)
	} else {
		// no database configured: accounts live in process memory and
		// reset on restart
		logger.Warn("DATABASE_URL not set, using in-memory account store")
		store = accounts.NewMemoryStore()
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			if db != nil {
				db.Close()
			}
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}

		redisClient = redis.NewClient(opts)

		if err := redisClient.Ping(ctx).Err(); err != nil {
			// the limiter carries a local fallback, so a cold Redis is
			// not fatal at startup
			logger.ErrorErr(err, "redis unreachable at startup, rate limits are process-local until it recovers")
		}
	} else {
		logger.Warn("REDIS_URL not set, rate limits are process-local")
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		if redisClient != nil {
			redisClient.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		}
		if db != nil {
			db.Close()
		}
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	registry := banlist.New()
	gate := policy.NewGate(registry, store, services.Classifier, policy.DefaultConfig())
	limiter := ratelimit.New(redisClient, ratelimit.PerMinute(requestsPerMinute, requestBurst))

	router := gin.Default()

	server := &Server{
		db:       db,
		redis:    redisClient,
		config:   cfg,
		registry: registry,
		store:    store,
		gate:     gate,
		limiter:  limiter,
		services: services,
		router:   router,
	}

	RegisterRoutes(router, server)

	return server, nil
}

func newDatabasePool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// hosted poolers hand out few connections, keep our pool small
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
