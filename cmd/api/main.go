package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "nextgear-contracts/internal/adapter/http"
	"nextgear-contracts/internal/adapter/metrics"
	idemp "nextgear-contracts/internal/adapter/middleware"
	"nextgear-contracts/internal/adapter/repository/mysql"
	"nextgear-contracts/internal/config"
	"nextgear-contracts/internal/infrastructure/cache"
	"nextgear-contracts/internal/infrastructure/db"
	contractUC "nextgear-contracts/internal/usecase/contract"
	"nextgear-contracts/pkg/id"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN(), db.ParseLogLevel(cfg.DBLogLevel))
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer sqlDB.Close()

	var m *metrics.Collector
	if cfg.MetricsEnabled {
		m = metrics.NewCollector()
	}

	e := httpadp.NewEcho()
	e.Use(
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: id.NewID32}),
		middleware.Logger(),
		middleware.Recover(),
		m.Middleware(),
	)

	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
		cancel()
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rdb.Close()
		ttl := time.Duration(cfg.IdempTTLSecs) * time.Second
		e.Use(idemp.Idempotency(idemp.NewRedisStore(rdb), ttl))
		log.Printf("idempotent replay enabled (ttl %s)", ttl)
	}

	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	repo := mysql.NewContractRepository(gdb)
	uc := contractUC.NewUsecase(repo)
	httpadp.RegisterRoutes(e, httpadp.NewHandler(sqlDB), httpadp.NewContractHandler(uc, m))

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
