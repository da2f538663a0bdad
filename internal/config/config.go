package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "CHOREO_"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr            string        `koanf:"addr"`
	LogLevel        string        `koanf:"log_level"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	Database DatabaseConfig `koanf:",squash"`
	Timeline TimelineConfig `koanf:",squash"`
}

type DatabaseConfig struct {
	Host     string `koanf:"db_host"`
	Port     string `koanf:"db_port"`
	User     string `koanf:"db_user"`
	Password string `koanf:"db_password"`
	DBName   string `koanf:"db_name"`
	SSLMode  string `koanf:"db_sslmode"`
}

// TimelineConfig - параметры движка построений
type TimelineConfig struct {
	MatLanes    int     `koanf:"mat_lanes"`
	DefaultRowY float64 `koanf:"default_row_y"`
	BeatsPerBar int     `koanf:"beats_per_bar"`

	// MaxFrameWindow - сколько счетов максимум отдает один запрос кадров
	MaxFrameWindow int `koanf:"max_frame_window"`
}

func Default() *Config {
	return &Config{
		Addr:            ":8080",
		LogLevel:        "info",
		ShutdownTimeout: 5 * time.Second,
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "choreo",
			Password: "choreo",
			DBName:   "choreo_timeline",
			SSLMode:  "disable",
		},
		Timeline: TimelineConfig{
			MatLanes:    7,
			DefaultRowY: 10,
			BeatsPerBar: 8,

			MaxFrameWindow: 512,
		},
	}
}

// Load собирает конфиг: значения по умолчанию -> YAML из CHOREO_CONFIG -> переменные CHOREO_*.
// .env, если есть, подгружается в окружение до чтения переменных.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// CHOREO_DB_HOST -> db_host
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.Timeline.MatLanes <= 0 {
		return fmt.Errorf("%w: mat_lanes must be positive, got %d", ErrInvalidConfig, c.Timeline.MatLanes)
	}
	if c.Timeline.BeatsPerBar <= 0 {
		return fmt.Errorf("%w: beats_per_bar must be positive, got %d", ErrInvalidConfig, c.Timeline.BeatsPerBar)
	}
	if c.Timeline.MaxFrameWindow <= 0 {
		return fmt.Errorf("%w: max_frame_window must be positive, got %d", ErrInvalidConfig, c.Timeline.MaxFrameWindow)
	}
	if c.Timeline.DefaultRowY < 0 || c.Timeline.DefaultRowY > 100 {
		return fmt.Errorf("%w: default_row_y must be within [0,100], got %v", ErrInvalidConfig, c.Timeline.DefaultRowY)
	}
	return nil
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}
