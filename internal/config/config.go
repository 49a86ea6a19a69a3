package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса бронирования студии
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Studio    StudioConfig    `toml:"studio"`
	Rates     RatesConfig     `toml:"rates"`
	Payment   PaymentConfig   `toml:"payment"`
	Contact   ContactConfig   `toml:"contact"`
	Cache     CacheConfig     `toml:"cache"`
	Redis     RedisConfig     `toml:"redis"`
	Admin     AdminConfig     `toml:"admin"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StudioConfig параметры календаря студии
type StudioConfig struct {
	Name               string `toml:"name"`
	Timezone           string `toml:"timezone"`
	BookingWindowDays  int    `toml:"booking_window_days"`
	ClosedWeekday      string `toml:"closed_weekday"`
	MinLeadTimeMinutes int    `toml:"min_lead_time_minutes"`
}

// Location таймзона студии
func (c StudioConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Weekday закрытый день недели
func (c StudioConfig) Weekday() (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == c.ClosedWeekday {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", c.ClosedWeekday)
}

// RatesConfig тарифы по умолчанию, в XOF
type RatesConfig struct {
	Currency string `toml:"currency"`
	Hourly   int64  `toml:"hourly"`
	Mix      int64  `toml:"mix"`
	Master   int64  `toml:"master"`
}

type PaymentConfig struct {
	WaveURL        string `toml:"wave_url"`
	PaytechURL     string `toml:"paytech_url"`
	PaytechTimeout int    `toml:"paytech_timeout"`
}

type ContactConfig struct {
	Phone    string `toml:"phone"`
	WhatsApp string `toml:"whatsapp"`
}

// CacheConfig кеш занятых слотов: "memory", "redis" или "none"
type CacheConfig struct {
	Driver     string `toml:"driver"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type AdminConfig struct {
	Login         string `toml:"login"`
	PasswordHash  string `toml:"password_hash"`
	HashKey       string `toml:"hash_key"`
	BlockKey      string `toml:"block_key"`
	CookieName    string `toml:"cookie_name"`
	SessionTTLMin int    `toml:"session_ttl_minutes"`
	SecureCookie  bool   `toml:"secure_cookie"`
}

// RateLimitConfig лимит запросов с одного IP
type RateLimitConfig struct {
	RPS            float64  `toml:"rps"`
	Burst          int      `toml:"burst"`
	TrustedProxies []string `toml:"trusted_proxies"`
}

// TrustedNets доверенные прокси, адрес без маски считается одиночным хостом
func (c RateLimitConfig) TrustedNets() ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(c.TrustedProxies))
	for _, entry := range c.TrustedProxies {
		entry = strings.TrimSpace(entry)
		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				return nil, fmt.Errorf("invalid trusted proxy %q", entry)
			}
			bits := 32
			if ip.To4() == nil {
				bits = 128
			}
			entry = fmt.Sprintf("%s/%d", entry, bits)
		}
		_, n, err := net.ParseCIDR(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
		}
		nets = append(nets, n)
	}
	return nets, nil
}

// Load читает конфигурацию из TOML файла, проставляет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "studio_booking"
	}

	if c.Studio.Timezone == "" {
		c.Studio.Timezone = "Africa/Dakar"
	}
	if c.Studio.BookingWindowDays == 0 {
		c.Studio.BookingWindowDays = 14
	}
	if c.Studio.ClosedWeekday == "" {
		c.Studio.ClosedWeekday = time.Sunday.String()
	}
	if c.Studio.MinLeadTimeMinutes == 0 {
		c.Studio.MinLeadTimeMinutes = 20
	}

	if c.Rates.Currency == "" {
		c.Rates.Currency = "XOF"
	}
	if c.Rates.Hourly == 0 {
		c.Rates.Hourly = 30000
	}
	if c.Rates.Mix == 0 {
		c.Rates.Mix = 150000
	}
	if c.Rates.Master == 0 {
		c.Rates.Master = 70000
	}

	if c.Payment.PaytechTimeout == 0 {
		c.Payment.PaytechTimeout = 10
	}

	if c.Cache.Driver == "" {
		c.Cache.Driver = "memory"
	}
	if c.Cache.TTLSeconds == 0 {
		c.Cache.TTLSeconds = 60
	}

	if c.Admin.CookieName == "" {
		c.Admin.CookieName = "studio_admin"
	}
	if c.Admin.SessionTTLMin == 0 {
		c.Admin.SessionTTLMin = 480
	}

	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 1
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 5
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return errors.New("database host and dbname are required")
	}
	if _, err := c.Studio.Location(); err != nil {
		return fmt.Errorf("studio timezone: %w", err)
	}
	if _, err := c.Studio.Weekday(); err != nil {
		return fmt.Errorf("studio closed_weekday: %w", err)
	}
	if c.Studio.BookingWindowDays < 1 {
		return errors.New("studio booking_window_days must be positive")
	}
	if c.Rates.Hourly < 0 || c.Rates.Mix < 0 || c.Rates.Master < 0 {
		return errors.New("rates must be positive")
	}
	if c.Payment.WaveURL == "" {
		return errors.New("payment wave_url is required")
	}
	switch c.Cache.Driver {
	case "memory", "none":
	case "redis":
		if c.Redis.Addr == "" {
			return errors.New("redis addr is required for redis cache driver")
		}
	default:
		return fmt.Errorf("unknown cache driver %q", c.Cache.Driver)
	}
	if _, err := c.RateLimit.TrustedNets(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	if c.Admin.Login == "" || c.Admin.PasswordHash == "" {
		return errors.New("admin login and password_hash are required")
	}
	if len(c.Admin.HashKey) < 32 {
		return errors.New("admin hash_key must be at least 32 bytes")
	}
	switch len(c.Admin.BlockKey) {
	case 0, 16, 24, 32:
	default:
		return errors.New("admin block_key must be 16, 24 or 32 bytes")
	}
	return nil
}
