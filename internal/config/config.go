package config

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
	"strconv"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

var validate = validator.New()

type AppConfig struct {
	QWeatherApiKey  string `validate:"required"`
	QWeatherBaseUrl string `validate:"required,url"`
	CaiyunToken     string `validate:"required"`
	CaiyunBaseUrl   string `validate:"required,url"`
	IpLocationUrl   string `validate:"omitempty,url"`

	HTTPTimeout  time.Duration `validate:"gt=0"`
	ForecastDays int           `validate:"min=1,max=15"`

	RedisAddress string `validate:"required_without=DisableRedis"`
	DisableRedis bool

	Port     string `validate:"required,numeric"`
	Env      string `validate:"oneof=development testing production"`
	LogLevel string `validate:"omitempty,oneof=debug info warn error"`
	LogFile  string
}

// Load reads configuration from environment with defaults for everything
// except the upstream credentials.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		QWeatherApiKey:  os.Getenv("qweather_apikey"),
		QWeatherBaseUrl: getenvDefault("qweather_baseurl", "https://geoapi.qweather.com/v2/city/lookup"),
		CaiyunToken:     os.Getenv("caiyun_token"),
		CaiyunBaseUrl:   getenvDefault("caiyun_baseurl", "https://api.caiyunapp.com/v2.6"),
		IpLocationUrl:   os.Getenv("iplocation_url"),
		ForecastDays:    getenvInt("forecast_days", 4),
		RedisAddress:    os.Getenv("redis_address"),
		Port:            getenvDefault("port", "8080"),
		Env:             getenvDefault("env", EnvProduction),
		LogLevel:        os.Getenv("log_level"),
		LogFile:         os.Getenv("log_file"),
	}

	timeout, err := time.ParseDuration(getenvDefault("http_timeout", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid http_timeout: %w", err)
	}
	cfg.HTTPTimeout = timeout

	disableRedis, err := strconv.ParseBool(os.Getenv("disable_redis"))
	if err == nil {
		cfg.DisableRedis = disableRedis
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Logger builds the zap logger for the configured environment. The testing
// environment only reports warnings and above unless log_level says otherwise.
func (c *AppConfig) Logger() (*zap.SugaredLogger, error) {
	var zc zap.Config
	switch c.Env {
	case EnvDevelopment:
		zc = zap.NewDevelopmentConfig()
	case EnvTesting:
		zc = zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	default:
		zc = zap.NewProductionConfig()
	}

	if c.LogLevel != "" {
		level, err := zapcore.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log_level: %w", err)
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}
	if c.LogFile != "" {
		zc.OutputPaths = append(zc.OutputPaths, c.LogFile)
	}

	baseLogger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("error building logger: %w", err)
	}
	return baseLogger.Sugar(), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
