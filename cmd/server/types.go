package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/pixelsmith/server/internal/accounts"
	"github.com/pixelsmith/server/internal/banlist"
	"github.com/pixelsmith/server/internal/config"
	"github.com/pixelsmith/server/internal/policy"
	"github.com/pixelsmith/server/internal/ratelimit"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	redis    *redis.Client
	config   *config.Config
	registry *banlist.Registry
	store    accounts.Store
	gate     *policy.Gate
	limiter  *ratelimit.Limiter
	services *Services
	router   *gin.Engine
}
