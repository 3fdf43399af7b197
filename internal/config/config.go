package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // образ без системной базы часовых поясов

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/artizaho/workshop-booking/internal/domain"
	"github.com/artizaho/workshop-booking/pkg/types"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	CatalogService CatalogServiceConfig `toml:"catalog_service"`
	Booking        BookingConfig        `toml:"booking"`
	Auth           AuthConfig           `toml:"auth"`
	Jobs           JobsConfig           `toml:"jobs"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CatalogServiceConfig настройки клиента каталога мастер-классов
type CatalogServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// BookingConfig платформенные правила бронирования
// Используются, если у мастерской и у мастера нет собственной конфигурации
type BookingConfig struct {
	Timezone              string   `toml:"timezone"`
	SlotTimes             []string `toml:"slot_times"`
	MinParticipants       uint     `toml:"min_participants"`
	AlmostFullThreshold   uint     `toml:"almost_full_threshold"`
	NonOperatingWeekdays  []string `toml:"non_operating_weekdays"`
	AdvanceBookingDays    int      `toml:"advance_booking_days"`
	MinNoticeBusinessDays int      `toml:"min_notice_business_days"`
}

// AuthConfig настройки аутентификации
type AuthConfig struct {
	JWTSecret      string   `toml:"jwt_secret"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// JobsConfig настройки фоновых задач (cron-выражения)
type JobsConfig struct {
	Enabled              bool   `toml:"enabled"`
	ExpireCustomRequests string `toml:"expire_custom_requests"`
}

// Load читает конфигурацию из TOML файла
// Переменные окружения (и .env, если есть) переопределяют значения из файла
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	// .env опционален
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	policy := domain.DefaultPlatformPolicy()

	slotTimes := make([]string, len(policy.SlotTimes))
	for i, t := range policy.SlotTimes {
		slotTimes[i] = t.String()
	}

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "artizaho_booking",
		},
		CatalogService: CatalogServiceConfig{Timeout: 5},
		Booking: BookingConfig{
			Timezone:              "Indian/Antananarivo",
			SlotTimes:             slotTimes,
			MinParticipants:       policy.MinParticipants,
			AlmostFullThreshold:   policy.AlmostFullThreshold,
			NonOperatingWeekdays:  []string{"saturday", "sunday"},
			AdvanceBookingDays:    policy.AdvanceBookingDays,
			MinNoticeBusinessDays: policy.MinNoticeBusinessDays,
		},
		Jobs: JobsConfig{
			Enabled:              true,
			ExpireCustomRequests: "@daily",
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Database.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.DBName = v
	}
	if v := os.Getenv("CATALOG_SERVICE_URL"); v != "" {
		c.CatalogService.URL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.CatalogService.URL == "" {
		return fmt.Errorf("%w: catalog_service.url is required", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required (or JWT_SECRET)", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Booking.Policy(); err != nil {
		return fmt.Errorf("%w: booking: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Location временная зона, по которой определяется "сегодня"
func (b BookingConfig) Location() (*time.Location, error) {
	if b.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(b.Timezone)
}

// Policy преобразует секцию [booking] в доменную платформенную политику
func (b BookingConfig) Policy() (domain.PlatformPolicy, error) {
	slotTimes := make([]types.TimeString, 0, len(b.SlotTimes))
	for _, s := range b.SlotTimes {
		t, err := types.NewTimeStringFromString(s)
		if err != nil {
			return domain.PlatformPolicy{}, err
		}
		if err := domain.ValidateSlotTime(t); err != nil {
			return domain.PlatformPolicy{}, err
		}
		slotTimes = append(slotTimes, t)
	}

	weekdays := make([]time.Weekday, 0, len(b.NonOperatingWeekdays))
	for _, s := range b.NonOperatingWeekdays {
		wd, err := ParseWeekday(s)
		if err != nil {
			return domain.PlatformPolicy{}, err
		}
		weekdays = append(weekdays, wd)
	}

	return domain.PlatformPolicy{
		SlotTimes:             slotTimes,
		MinParticipants:       b.MinParticipants,
		AlmostFullThreshold:   b.AlmostFullThreshold,
		NonOperatingWeekdays:  weekdays,
		AdvanceBookingDays:    b.AdvanceBookingDays,
		MinNoticeBusinessDays: b.MinNoticeBusinessDays,
	}, nil
}

// ParseWeekday принимает английское название дня недели в любом регистре
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.ToLower(wd.String()) == name {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}
