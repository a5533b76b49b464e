package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
)

const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Database DatabaseConfig `toml:"database"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=0"`     // секунды
	WriteTimeout    int `toml:"write_timeout" validate:"min=0"`    // секунды
	IdleTimeout     int `toml:"idle_timeout" validate:"min=0"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=0"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file"` // пусто - stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

type BookingConfig struct {
	SubmitLatencyMs int `toml:"submit_latency_ms" validate:"min=0,max=60000"`
	FlowTTLSeconds  int `toml:"flow_ttl_seconds" validate:"min=1"` // простой процесса до удаления
}

// FlowTTL время жизни процесса бронирования без изменений
func (b BookingConfig) FlowTTL() time.Duration {
	return time.Duration(b.FlowTTLSeconds) * time.Second
}

// SubmitLatency задержка перед подтверждением бронирования
func (b BookingConfig) SubmitLatency() time.Duration {
	return time.Duration(b.SubmitLatencyMs) * time.Millisecond
}

type CatalogConfig struct {
	Source string `toml:"source" validate:"oneof=file postgres"`
	File   string `toml:"file"` // пусто - встроенный каталог
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port" validate:"min=0,max=65535"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=0"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "appointment-booking",
		},
		Booking: BookingConfig{
			SubmitLatencyMs: domain.DefaultSubmitLatencyMs,
			FlowTTLSeconds:  domain.DefaultFlowTTLSeconds,
		},
		Catalog: CatalogConfig{
			Source: CatalogSourceFile,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    5,
			MaxIdleConns:    2,
			ConnMaxLifetime: 300,
		},
	}
}

// Load читает конфигурацию: значения по умолчанию, затем TOML файл
// (если path не пустой), затем .env и переменные окружения BOOKING_*.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Catalog.Source == CatalogSourcePostgres && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("config validation failed: database host and dbname are required for catalog source %q",
			CatalogSourcePostgres)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("BOOKING_HTTP_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BOOKING_HTTP_PORT %q: %w", v, err)
		}
		cfg.Server.HTTPPort = port
	}

	if v, ok := os.LookupEnv("BOOKING_SUBMIT_LATENCY_MS"); ok {
		latency, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BOOKING_SUBMIT_LATENCY_MS %q: %w", v, err)
		}
		cfg.Booking.SubmitLatencyMs = latency
	}

	if v, ok := os.LookupEnv("BOOKING_LOG_LEVEL"); ok {
		cfg.Logs.Level = v
	}
	if v, ok := os.LookupEnv("BOOKING_CATALOG_SOURCE"); ok {
		cfg.Catalog.Source = v
	}
	if v, ok := os.LookupEnv("BOOKING_CATALOG_FILE"); ok {
		cfg.Catalog.File = v
	}
	if v, ok := os.LookupEnv("BOOKING_DATABASE_PASSWORD"); ok {
		cfg.Database.Password = v
	}

	return nil
}
