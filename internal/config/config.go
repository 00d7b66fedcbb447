package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           int     `envconfig:"PORT" default:"8080"`
	JWTSecret      string  `envconfig:"JWT_SECRET" default:"dev-secret-change-in-production"`
	AllowedOrigins string  `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	CanvasWidth    float64 `envconfig:"CANVAS_WIDTH" default:"800"`
	CanvasHeight   float64 `envconfig:"CANVAS_HEIGHT" default:"400"`
	LogLevel       string  `envconfig:"LOG_LEVEL" default:"info"`

	// SessionIdleTTL is how long a session with no clients is kept.
	SessionIdleTTL time.Duration `envconfig:"SESSION_IDLE_TTL" default:"30m"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.CanvasWidth <= 0 || cfg.CanvasHeight <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %gx%g", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if cfg.SessionIdleTTL <= 0 {
		return nil, fmt.Errorf("session idle ttl must be positive, got %s", cfg.SessionIdleTTL)
	}
	return &cfg, nil
}

// Origins splits AllowedOrigins into its entries.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// OriginHosts returns the host[:port] part of every allowed origin, the form
// websocket origin patterns expect.
func (c *Config) OriginHosts() []string {
	origins := c.Origins()
	hosts := make([]string, 0, len(origins))
	for _, o := range origins {
		if _, rest, ok := strings.Cut(o, "://"); ok {
			o = rest
		}
		hosts = append(hosts, o)
	}
	return hosts
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
