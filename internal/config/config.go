// Package config は環境変数ベースのアプリケーション設定を提供する。
package config

import (
	"os"
	"strconv"
	"time"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Database
	DatabasePath string

	// Session
	LoginDelay time.Duration

	// Geocode
	GeocodeEndpoint        string
	GeocodeTimeout         time.Duration
	GeocodeMaxResponseSize int64
	GeocodeRatePerSecond   float64

	// Logging
	LogLevel string
}

// Load は環境変数からConfigを読み込む。
// すべての項目にデフォルト値があるため、必須環境変数は存在しない。
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.DatabasePath = getEnvString("DATABASE_PATH", "civicpulse.db")
	cfg.LoginDelay = getEnvDuration("LOGIN_DELAY", time.Second)
	cfg.GeocodeEndpoint = getEnvString("GEOCODE_ENDPOINT", "https://nominatim.openstreetmap.org/reverse")
	cfg.GeocodeTimeout = getEnvDuration("GEOCODE_TIMEOUT", 5*time.Second)
	cfg.GeocodeMaxResponseSize = getEnvInt64("GEOCODE_MAX_RESPONSE_SIZE", 1048576)
	cfg.GeocodeRatePerSecond = getEnvFloat("GEOCODE_RATE_PER_SECOND", 1.0)
	cfg.LogLevel = getEnvString("LOG_LEVEL", "info")

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvFloat(key string, defaultVal float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
