package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/groenwerk/groenwerk/internal/app"
	"github.com/groenwerk/groenwerk/internal/catalog"
	"github.com/groenwerk/groenwerk/internal/offerte"
	"github.com/groenwerk/groenwerk/internal/platform/cache"
	"github.com/groenwerk/groenwerk/internal/platform/db"
	"github.com/groenwerk/groenwerk/internal/rates/factors"
	"github.com/groenwerk/groenwerk/internal/rates/normhours"
	"github.com/groenwerk/groenwerk/internal/settings"
	"github.com/groenwerk/groenwerk/internal/shared"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	if err := db.Migrate(cfg.PGDSN); err != nil {
		logger.Error("run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	validate := validator.New()
	lock := &shared.KeyLock{Client: redisClient}

	factorsService := factors.NewService(factors.NewRepository(pool), lock, logger)
	normService := normhours.NewService(normhours.NewRepository(pool), logger)
	catalogService := catalog.NewService(catalog.NewRepository(pool), logger)
	settingsService := settings.NewService(settings.NewRepository(pool), logger)
	offerteService := offerte.NewService(
		offerte.NewRepository(pool),
		factorsService,
		normService,
		catalogService,
		settingsService,
		logger,
	).WithNummerBron(settingsService)

	if aantal, err := factorsService.InitialiseerStandaarden(ctx); err != nil {
		logger.Error("seed systeemstandaarden", slog.Any("error", err))
		os.Exit(1)
	} else if aantal > 0 {
		logger.Info("systeemstandaarden gezaaid", slog.Int("aantal", aantal))
	}

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		Pool:             pool,
		FactorsHandler:   factors.NewHandler(logger, factorsService, validate),
		NormHoursHandler: normhours.NewHandler(logger, normService, validate),
		CatalogHandler:   catalog.NewHandler(logger, catalogService, validate),
		SettingsHandler:  settings.NewHandler(logger, settingsService, validate),
		OfferteHandler:   offerte.NewHandler(logger, offerteService, validate),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
