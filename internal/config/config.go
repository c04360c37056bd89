package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bsmobile/salon-booking/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Salon    SalonConfig    `toml:"salon"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN возвращает строку подключения к базе данных
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SalonConfig режим работы салона
type SalonConfig struct {
	OpenHour        int      `toml:"open_hour"`
	CloseHour       int      `toml:"close_hour"`
	SlotStepMinutes int      `toml:"slot_step_minutes"`
	ClosureWeekday  int      `toml:"closure_weekday"`
	Holidays        []string `toml:"holidays"`
}

// Load загружает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port %d out of range", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if _, err := c.SalonSchedule(); err != nil {
		return err
	}
	return nil
}

// SalonSchedule преобразует секцию [salon] в доменное расписание.
// Незаполненные поля заменяются значениями по умолчанию.
func (c *Config) SalonSchedule() (domain.SalonSchedule, error) {
	schedule := domain.DefaultSchedule()

	if c.Salon.OpenHour != 0 {
		schedule.OpenHour = c.Salon.OpenHour
	}
	if c.Salon.CloseHour != 0 {
		schedule.CloseHour = c.Salon.CloseHour
	}
	if c.Salon.SlotStepMinutes != 0 {
		schedule.SlotStepMinutes = c.Salon.SlotStepMinutes
	}
	if c.Salon.ClosureWeekday != 0 {
		if c.Salon.ClosureWeekday < 0 || c.Salon.ClosureWeekday > 6 {
			return domain.SalonSchedule{}, fmt.Errorf("salon.closure_weekday %d out of range", c.Salon.ClosureWeekday)
		}
		schedule.ClosureWeekday = time.Weekday(c.Salon.ClosureWeekday)
	}

	if len(c.Salon.Holidays) > 0 {
		holidays := make([]domain.MonthDay, 0, len(c.Salon.Holidays))
		for _, raw := range c.Salon.Holidays {
			md, err := domain.ParseMonthDay(raw)
			if err != nil {
				return domain.SalonSchedule{}, fmt.Errorf("salon.holidays: %w", err)
			}
			holidays = append(holidays, md)
		}
		schedule.Holidays = holidays
	}

	if err := schedule.Validate(); err != nil {
		return domain.SalonSchedule{}, fmt.Errorf("salon schedule: %w", err)
	}

	return schedule, nil
}
