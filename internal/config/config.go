package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Venue    VenueConfig    `toml:"venue"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Accounts AccountsConfig `toml:"accounts"`
}

// ServerConfig настройки HTTP-сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// VenueConfig настройки площадки и реестра бронирований
type VenueConfig struct {
	Name                 string `toml:"name"`
	BookingWindowDays    int    `toml:"booking_window_days"`
	HoldTimeoutMinutes   int    `toml:"hold_timeout_minutes"`
	SweepIntervalSeconds int    `toml:"sweep_interval_seconds"`
}

// CatalogConfig справочник видов спорта, тарифов и кортов
type CatalogConfig struct {
	Sports []SportConfig `toml:"sports"`
}

// SportConfig один вид спорта в справочнике
type SportConfig struct {
	Name          string   `toml:"name"`
	HourlyRateUSD float64  `toml:"hourly_rate_usd"`
	Courts        []string `toml:"courts"`
}

// AccountsConfig преднастроенные аккаунты пользователей и администраторов
type AccountsConfig struct {
	Users  []AccountConfig `toml:"users"`
	Admins []AccountConfig `toml:"admins"`
}

// AccountConfig один аккаунт
type AccountConfig struct {
	Username   string  `toml:"username"`
	BalanceUSD float64 `toml:"balance_usd"`
}

// Load загружает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}

	if c.Venue.BookingWindowDays < 0 {
		return fmt.Errorf("config: venue.booking_window_days must be non-negative, got %d", c.Venue.BookingWindowDays)
	}
	if c.Venue.HoldTimeoutMinutes <= 0 {
		return fmt.Errorf("config: venue.hold_timeout_minutes must be positive, got %d", c.Venue.HoldTimeoutMinutes)
	}
	if c.Venue.SweepIntervalSeconds <= 0 {
		return fmt.Errorf("config: venue.sweep_interval_seconds must be positive, got %d", c.Venue.SweepIntervalSeconds)
	}

	if len(c.Catalog.Sports) == 0 {
		return fmt.Errorf("config: catalog must define at least one sport")
	}

	seenSports := make(map[string]struct{}, len(c.Catalog.Sports))
	seenCourts := make(map[string]struct{})
	for _, sport := range c.Catalog.Sports {
		if sport.Name == "" {
			return fmt.Errorf("config: sport with empty name in catalog")
		}
		if _, ok := seenSports[sport.Name]; ok {
			return fmt.Errorf("config: duplicate sport %q in catalog", sport.Name)
		}
		seenSports[sport.Name] = struct{}{}

		if sport.HourlyRateUSD < 0 {
			return fmt.Errorf("config: sport %q has negative hourly rate", sport.Name)
		}
		if len(sport.Courts) == 0 {
			return fmt.Errorf("config: sport %q has no courts", sport.Name)
		}
		for _, courtID := range sport.Courts {
			if _, ok := seenCourts[courtID]; ok {
				return fmt.Errorf("config: duplicate court %q in catalog", courtID)
			}
			seenCourts[courtID] = struct{}{}
		}
	}

	seenUsers := make(map[string]struct{})
	for _, acc := range append(append([]AccountConfig{}, c.Accounts.Users...), c.Accounts.Admins...) {
		if acc.Username == "" {
			return fmt.Errorf("config: account with empty username")
		}
		if _, ok := seenUsers[acc.Username]; ok {
			return fmt.Errorf("config: duplicate account %q", acc.Username)
		}
		seenUsers[acc.Username] = struct{}{}

		if acc.BalanceUSD < 0 {
			return fmt.Errorf("config: account %q has negative balance", acc.Username)
		}
	}

	return nil
}
