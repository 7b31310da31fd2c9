package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/bulletinhq/bulletin-api/internal/api"
	"github.com/bulletinhq/bulletin-api/internal/core/service"
	"github.com/bulletinhq/bulletin-api/internal/infrastructure/config"
	"github.com/bulletinhq/bulletin-api/internal/infrastructure/httpd"
	"github.com/bulletinhq/bulletin-api/internal/infrastructure/memstore"
	"github.com/bulletinhq/bulletin-api/internal/ops"
	"github.com/bulletinhq/bulletin-api/pkg/logger"
)

func main() {
	// .env is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store := memstore.New(memstore.Options{SessionTTL: cfg.Session.TTL})
	if cfg.SeedDemo {
		if err := memstore.Seed(store, log); err != nil {
			log.Fatal().Err(err).Msg("seeding demo data failed")
		}
	}

	authService := service.NewAuthService(store, store, log)
	boardService := service.NewBoardService(store, log)
	router := api.NewRouter(authService, boardService, httpd.NewStaticFiles(cfg.StaticDir), log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go ops.Serve(ctx, ":"+cfg.OpsPort, log)

	server := httpd.NewServer(httpd.Options{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		Logger:       log,
		Workers:      cfg.Server.Workers,
		QueueSize:    cfg.Server.QueueSize,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})
	if err := server.ListenAndServe(ctx); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
