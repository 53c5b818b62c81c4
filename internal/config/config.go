package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/HMS-TriageService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Dispatch  DispatchConfig  `toml:"dispatch"`
	Equipment []EquipmentSeed `toml:"equipment"`
}

// ServerConfig настройки HTTP сервера
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

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// DispatchConfig настройки диспетчеризации
type DispatchConfig struct {
	// Задержка до автоматического освобождения оборудования после
	// диспетчеризации, в секундах
	ReleaseDelaySeconds int `toml:"release_delay_seconds"`
}

// EquipmentSeed статическая запись оборудования.
// Это конфигурация на старте процесса, а не персистентное состояние.
type EquipmentSeed struct {
	ID                     int64  `toml:"id"`
	Name                   string `toml:"name"`
	Status                 string `toml:"status"`
	ServiceDurationMinutes int    `toml:"service_duration_minutes"`
}

// ToDomain конвертирует запись конфигурации в domain.Equipment
func (s *EquipmentSeed) ToDomain() *domain.Equipment {
	return &domain.Equipment{
		ID:                     s.ID,
		Name:                   s.Name,
		Status:                 domain.EquipmentStatus(s.Status),
		ServiceDurationMinutes: s.ServiceDurationMinutes,
	}
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "hms-triage-service"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Dispatch.ReleaseDelaySeconds == 0 {
		c.Dispatch.ReleaseDelaySeconds = 10
	}
}

func (c *Config) validate() error {
	if len(c.Equipment) == 0 {
		return fmt.Errorf("config: at least one [[equipment]] entry is required")
	}

	seen := make(map[int64]bool, len(c.Equipment))
	for _, eq := range c.Equipment {
		if eq.ID <= 0 {
			return fmt.Errorf("config: equipment %q has invalid id %d", eq.Name, eq.ID)
		}
		if seen[eq.ID] {
			return fmt.Errorf("config: duplicate equipment id %d", eq.ID)
		}
		seen[eq.ID] = true

		switch domain.EquipmentStatus(eq.Status) {
		case domain.EquipmentAvailable, domain.EquipmentInUse, domain.EquipmentMaintenance:
		default:
			return fmt.Errorf("config: equipment id=%d has unknown status %q", eq.ID, eq.Status)
		}
	}

	return nil
}

// SeedEquipment конвертирует все записи конфигурации в domain модели
func (c *Config) SeedEquipment() []*domain.Equipment {
	result := make([]*domain.Equipment, 0, len(c.Equipment))
	for i := range c.Equipment {
		result = append(result, c.Equipment[i].ToDomain())
	}
	return result
}
