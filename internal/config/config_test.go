package config

import (
	"go.uber.org/zap/zapcore"
	"path/filepath"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("qweather_apikey", "key")
	t.Setenv("caiyun_token", "token")
	t.Setenv("redis_address", "localhost:6379")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.HTTPTimeout)
	}
	if cfg.ForecastDays != 4 {
		t.Errorf("forecast days = %d", cfg.ForecastDays)
	}
	if cfg.Port != "8080" || cfg.Env != EnvProduction {
		t.Errorf("port = %q, env = %q", cfg.Port, cfg.Env)
	}
	if cfg.DisableRedis {
		t.Error("redis should be enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("http_timeout", "750ms")
	t.Setenv("forecast_days", "7")
	t.Setenv("disable_redis", "true")
	t.Setenv("redis_address", "")
	t.Setenv("env", EnvDevelopment)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPTimeout != 750*time.Millisecond || cfg.ForecastDays != 7 {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.DisableRedis {
		t.Error("expected redis disabled")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string][2]string{
		"missing token":   {"caiyun_token", ""},
		"bad timeout":     {"http_timeout", "soon"},
		"too many days":   {"forecast_days", "30"},
		"bad env":         {"env", "staging"},
		"bad log level":   {"log_level", "loud"},
		"no redis":        {"redis_address", ""},
		"bad caiyun url":  {"caiyun_baseurl", "not a url"},
		"non-number port": {"port", "http"},
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", kv[0], kv[1])
			}
		})
	}
}

func TestLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "weather.log")
	for _, env := range []string{EnvDevelopment, EnvTesting, EnvProduction} {
		cfg := &AppConfig{Env: env, LogFile: logFile}
		logger, err := cfg.Logger()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", env, err)
		}
		logger.Infow("started", "env", env)
	}

	cfg := &AppConfig{Env: EnvTesting}
	logger, err := cfg.Logger()
	if err != nil {
		t.Fatal(err)
	}
	if logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("testing env should not log debug")
	}

	cfg.LogLevel = "debug"
	logger, err = cfg.Logger()
	if err != nil {
		t.Fatal(err)
	}
	if !logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("log_level should override env level")
	}
}
