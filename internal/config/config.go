// Package config loads widget configuration from the environment, with an
// optional .env file for local overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the widget needs at startup.
type Config struct {
	// AreaCode selects the JMA forecast area (default Tokyo).
	AreaCode string

	// ClockInterval is the clock refresh period.
	ClockInterval time.Duration
	// WeatherInterval is the weather refresh period.
	WeatherInterval time.Duration

	// DemoOnly serves demo weather without any network access.
	DemoOnly bool

	// RollbackOnToggleFailure reverts the optimistic notification flag when
	// the remote preference write fails. Off by default: the original
	// behavior keeps the flag set regardless of outcome.
	RollbackOnToggleFailure bool

	LogFile  string
	LogLevel string
}

// Load reads configuration from the environment with defaults.
func Load() (*Config, error) {
	// A missing .env file is fine; env vars alone are enough.
	_ = godotenv.Load()

	cfg := &Config{
		AreaCode: getenvDefault("DESKCLOCK_AREA_CODE", "130000"),
		LogFile:  getenvDefault("DESKCLOCK_LOG_FILE", "deskclock.log"),
		LogLevel: getenvDefault("DESKCLOCK_LOG_LEVEL", "info"),
	}

	var err error
	cfg.ClockInterval, err = getenvDuration("DESKCLOCK_CLOCK_INTERVAL", time.Second)
	if err != nil {
		return nil, err
	}
	cfg.WeatherInterval, err = getenvDuration("DESKCLOCK_WEATHER_INTERVAL", 30*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.DemoOnly, err = getenvBool("DESKCLOCK_DEMO", false)
	if err != nil {
		return nil, err
	}
	cfg.RollbackOnToggleFailure, err = getenvBool("DESKCLOCK_ROLLBACK_ON_TOGGLE_FAILURE", false)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
