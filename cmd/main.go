package main

import (
	"context"
	"fmt"
	"os"

	"expensedesk/auth/cache"
	memcache "expensedesk/auth/cache/mem"
	rediscache "expensedesk/auth/cache/redis"
	authservice "expensedesk/auth/service"
	authsqlite "expensedesk/auth/storage/sqlite"
	"expensedesk/internal/config"
	"expensedesk/internal/logger"
	"expensedesk/internal/service"
	"expensedesk/internal/storage/sqlite"
	"expensedesk/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	log := logger.New()

	cfg, err := config.New()
	if err != nil {
		return err
	}

	authStorage, err := authsqlite.New(log, cfg.Server)
	if err != nil {
		return err
	}

	var accountCache cache.AccountCache
	if cfg.Server.RedisAddr != "" {
		accountCache = rediscache.New(log, cfg.Server.RedisAddr)
		log.Info("using redis account cache")
	} else {
		accountCache = memcache.New()
		log.Info("redis address not set, using in-memory account cache")
	}

	authService, err := authservice.New(ctx, log, cfg.Auth, authStorage, accountCache)
	if err != nil {
		return err
	}

	customerStorage, err := sqlite.New(log, cfg.Server)
	if err != nil {
		return err
	}
	customerService := service.New(log, customerStorage)

	server := web.New(log, customerService, cfg.Server, authService)
	return server.Serve()
}
