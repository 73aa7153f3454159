// Command eduapi serves the portal API: auth, student education
// records, and the admin verification flow.
package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"edudesk/internal/cache"
	"edudesk/internal/server"
	"edudesk/internal/store"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET is not set")
		os.Exit(1)
	}

	db, err := store.Open()
	if err != nil {
		logger.Error("database connect", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := store.Bootstrap(db); err != nil {
		logger.Error("database bootstrap", "err", err)
		os.Exit(1)
	}

	// Caching is optional: no REDIS_ADDR means a nil cache, which the
	// handlers treat as always-miss.
	var c *cache.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c, err = cache.New(addr)
		if err != nil {
			logger.Error("redis connect", "addr", addr, "err", err)
			os.Exit(1)
		}
		defer c.Close()
		logger.Info("education cache enabled", "addr", addr)
	}

	minutes := 0
	if v := os.Getenv("ACCESS_TOKEN_MINUTES"); v != "" {
		minutes, err = strconv.Atoi(v)
		if err != nil {
			logger.Error("invalid ACCESS_TOKEN_MINUTES", "value", v)
			os.Exit(1)
		}
	}

	app := server.New(server.Config{
		JWTSecret:          secret,
		AccessTokenMinutes: minutes,
		AllowOrigins:       os.Getenv("CORS_ALLOW_ORIGINS"),
	}, &store.StudentQueries{DB: db}, &store.EducationQueries{DB: db}, c, logger)

	addr := os.Getenv("EDUAPI_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	logger.Info("listening", "addr", addr)
	if err := app.Listen(addr); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
