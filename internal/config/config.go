// Package config loads agenda settings from defaults, an optional YAML
// file and AGENDA_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Mr-Dark-debug/agenda/pkg/timeutil"
	"gopkg.in/yaml.v3"
)

// Config defines agenda configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	DB      DBConfig      `yaml:"db"`
	Log     LogConfig     `yaml:"log"`
	Meeting MeetingConfig `yaml:"meeting"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// SessionTTL is how long a browser session survives without
	// requests, e.g. "12h".
	SessionTTL time.Duration `yaml:"session_ttl"`
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DBConfig struct {
	// Path is the SQLite session store. ":memory:" keeps sessions in
	// the process only.
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// Path is where the TUI writes its log. Empty discards it.
	Path string `yaml:"path"`
}

// MeetingConfig holds the defaults a fresh session starts with.
type MeetingConfig struct {
	Title     string `yaml:"title"`
	StartTime string `yaml:"start_time"`
}

// Default returns the built-in configuration.
func Default() Config {
	logPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		logPath = filepath.Join(home, ".agenda", "agenda-tui.log")
	}

	return Config{
		Server: ServerConfig{
			Host:       "127.0.0.1",
			Port:       8501,
			SessionTTL: 12 * time.Hour,
		},
		DB: DBConfig{
			Path: ":memory:",
		},
		Log: LogConfig{
			Level: "info",
			Path:  logPath,
		},
		Meeting: MeetingConfig{
			Title:     "Coordination meeting",
			StartTime: "09:00",
		},
	}
}

// Load reads configuration from path (or AGENDA_CONFIG_PATH when path
// is empty) and then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("AGENDA_CONFIG_PATH")
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("AGENDA_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("AGENDA_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid AGENDA_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if ttlStr := os.Getenv("AGENDA_SESSION_TTL"); ttlStr != "" {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid AGENDA_SESSION_TTL: %w", err)
		}
		cfg.Server.SessionTTL = ttl
	}
	if dbPath := os.Getenv("AGENDA_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("AGENDA_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath, ok := os.LookupEnv("AGENDA_LOG_PATH"); ok {
		cfg.Log.Path = logPath
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Server.SessionTTL <= 0 {
		return fmt.Errorf("invalid session ttl %s", c.Server.SessionTTL)
	}
	if _, err := timeutil.ParseClock(c.Meeting.StartTime); err != nil {
		return fmt.Errorf("meeting.start_time: %w", err)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
