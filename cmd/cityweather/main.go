package main

import (
	"context"
	"github.com/evanhutnik/cityweather-service/internal/caiyun"
	"github.com/evanhutnik/cityweather-service/internal/cityweather"
	"github.com/evanhutnik/cityweather-service/internal/config"
	"github.com/evanhutnik/cityweather-service/internal/history"
	"github.com/evanhutnik/cityweather-service/internal/iplocation"
	"github.com/evanhutnik/cityweather-service/internal/qweather"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	"log"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := cfg.Logger()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	opts := []cityweather.ServiceOption{
		cityweather.LoggerOption(logger),
		cityweather.GeocoderOption(qweather.New(
			qweather.ApiKeyOption(cfg.QWeatherApiKey),
			qweather.BaseUrlOption(cfg.QWeatherBaseUrl),
			qweather.TimeoutOption(cfg.HTTPTimeout),
		)),
		cityweather.ForecasterOption(caiyun.New(
			caiyun.TokenOption(cfg.CaiyunToken),
			caiyun.BaseUrlOption(cfg.CaiyunBaseUrl),
			caiyun.DailyStepsOption(cfg.ForecastDays),
			caiyun.TimeoutOption(cfg.HTTPTimeout),
		)),
		cityweather.DisableRedisOption(cfg.DisableRedis),
	}
	if cfg.IpLocationUrl != "" {
		opts = append(opts, cityweather.LocatorOption(iplocation.New(
			iplocation.BaseUrlOption(cfg.IpLocationUrl),
			iplocation.TimeoutOption(cfg.HTTPTimeout),
		)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !cfg.DisableRedis {
		rc := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddress,
		})
		defer rc.Close()

		store := history.NewRedisStore(rc)
		if err := store.Ping(ctx); err != nil {
			logger.Warnf("Redis at %v not reachable, recent searches may fail: %v", cfg.RedisAddress, err.Error())
		}
		opts = append(opts, cityweather.RecentStoreOption(store))
	}

	app := cityweather.New(opts...).App()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infow("starting server", "port", cfg.Port, "env", cfg.Env)
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Errorw(err.Error(), "action", "Serve")
	}
}
