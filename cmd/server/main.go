// Command server runs the simulation engine's HTTP API.
package main

import (
	"log"
	"net/http"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/mdruszcz/econ/internal/config"
	"github.com/mdruszcz/econ/internal/engine"
	"github.com/mdruszcz/econ/internal/logging"
	"github.com/mdruszcz/econ/internal/server"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	eng := engine.New(cfg.DataDir, logger)
	if err := eng.LoadBaseline(); err != nil {
		logger.Fatal("failed to load baseline", zap.Error(err))
	}

	auth := server.NewAuthenticator(cfg.JWTSecret)
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	limiter := server.NewRateLimiter(redisClient, config.RateLimitPerMinute())

	srv := server.New(eng, logger, auth, limiter)

	logger.Info("starting econ server", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, srv); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
