package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса.
// Структурные настройки читаются из config.toml, секреты и опциональные
// интеграции - из переменных окружения (.env подхватывается, если есть).
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Store    StoreConfig    `toml:"store"`
	Notifier NotifierConfig `toml:"notifier"`
	Admin    AdminConfig    `toml:"-"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// StoreConfig настройки key-value хранилища.
// Addr и Password приходят только из окружения (REDIS_ADDR, REDIS_PASSWORD).
// Если REDIS_ADDR не задан, хранилище отключено: чтение деградирует до
// пустого списка, запись завершается ошибкой.
type StoreConfig struct {
	BookingsKey string `toml:"bookings_key"`
	Timeout     int    `toml:"timeout"` // seconds, per operation

	Addr     string `toml:"-"`
	Password string `toml:"-"`
}

// Enabled reports whether the store is configured
func (c StoreConfig) Enabled() bool {
	return c.Addr != ""
}

// NotifierConfig настройки email-уведомлений.
// APIKey и From приходят из окружения (RESEND_API_KEY, RESEND_FROM).
// Без API ключа уведомления молча пропускаются.
type NotifierConfig struct {
	NotifyEmail string `toml:"notify_email"`
	Timeout     int    `toml:"timeout"` // seconds

	APIKey string `toml:"-"`
	From   string `toml:"-"`
}

// AdminConfig настройки доступа к админским эндпоинтам.
// Секрет приходит из окружения (ASTB_ADMIN_SECRET). Если секрет не задан,
// админские эндпоинты открыты - задокументированный небезопасный дефолт.
type AdminConfig struct {
	Secret string
}

// Значения по умолчанию
const (
	defaultHTTPPort        = 8080
	defaultReadTimeout     = 15
	defaultWriteTimeout    = 15
	defaultIdleTimeout     = 60
	defaultShutdownTimeout = 10
	defaultMetricsPath     = "/metrics"
	defaultBookingsKey     = "astb:bookings"
	defaultStoreTimeout    = 5
	defaultNotifierTimeout = 10

	// Resend требует верифицированный домен для продакшена;
	// onboarding-адрес работает для тестов
	defaultNotifierFrom = "ASTB Prep <onboarding@resend.dev>"
)

// Load reads config.toml and overlays environment variables
func Load(path string) (*Config, error) {
	// .env необязателен, ошибки загрузки игнорируем
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(cfg)
	applyEnv(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = defaultHTTPPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = defaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = defaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = defaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "astb-booking-service"
	}
	if cfg.Store.BookingsKey == "" {
		cfg.Store.BookingsKey = defaultBookingsKey
	}
	if cfg.Store.Timeout == 0 {
		cfg.Store.Timeout = defaultStoreTimeout
	}
	if cfg.Notifier.Timeout == 0 {
		cfg.Notifier.Timeout = defaultNotifierTimeout
	}
}

func applyEnv(cfg *Config) {
	cfg.Store.Addr = os.Getenv("REDIS_ADDR")
	cfg.Store.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Admin.Secret = os.Getenv("ASTB_ADMIN_SECRET")
	cfg.Notifier.APIKey = os.Getenv("RESEND_API_KEY")

	cfg.Notifier.From = os.Getenv("RESEND_FROM")
	if cfg.Notifier.From == "" {
		cfg.Notifier.From = defaultNotifierFrom
	}
}
