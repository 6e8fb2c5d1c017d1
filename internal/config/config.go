package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// DefaultClinicPhone запасной номер WhatsApp клиники, если он не задан
// ни в конфиге, ни в окружении
const DefaultClinicPhone = "+201110215455"

// Config конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Backend BackendConfig `toml:"backend"`
	Clinic  ClinicConfig  `toml:"clinic"`
	Session SessionConfig `toml:"session"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
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

// BackendConfig настройки клиента REST-бэкенда клиники.
// AdminToken задаётся только через окружение и никогда через toml.
type BackendConfig struct {
	URL        string `toml:"url"`
	Timeout    int    `toml:"timeout"` // seconds
	AdminToken string `toml:"-"`
}

// ClinicConfig параметры клиники
type ClinicConfig struct {
	Phone           string  `toml:"phone"`             // WhatsApp контакт клиники
	AveragePriceEGP float64 `toml:"average_price_egp"` // для оценки выручки в дашборде
}

// SessionConfig настройки хранилища сессий мастера бронирования
type SessionConfig struct {
	TTLMinutes           int `toml:"ttl_minutes"`
	SweepIntervalMinutes int `toml:"sweep_interval_minutes"`
}

// envOverrides переменные окружения, читаются один раз при старте процесса
// и перекрывают значения из toml
type envOverrides struct {
	APIURL     string `env:"CLINIC_API_URL"`
	AdminToken string `env:"CLINIC_ADMIN_TOKEN"`
	Phone      string `env:"CLINIC_PHONE"`
}

// Load читает конфигурацию из toml-файла и применяет переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment: %w", err)
	}
	if ov.APIURL != "" {
		cfg.Backend.URL = ov.APIURL
	}
	if ov.AdminToken != "" {
		cfg.Backend.AdminToken = ov.AdminToken
	}
	if ov.Phone != "" {
		cfg.Clinic.Phone = ov.Phone
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     false,
			ServiceName: "booking-web",
			Path:        "/metrics",
		},
		Backend: BackendConfig{
			URL:     "http://localhost:8000/api/v1",
			Timeout: 15,
		},
		Clinic: ClinicConfig{
			Phone:           DefaultClinicPhone,
			AveragePriceEGP: 3500,
		},
		Session: SessionConfig{
			TTLMinutes:           30,
			SweepIntervalMinutes: 5,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Backend.URL == "" {
		return fmt.Errorf("config: backend.url is required")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("config: backend.timeout must be positive")
	}
	if c.Clinic.Phone == "" {
		c.Clinic.Phone = DefaultClinicPhone
	}
	if c.Session.TTLMinutes <= 0 {
		return fmt.Errorf("config: session.ttl_minutes must be positive")
	}
	return nil
}
