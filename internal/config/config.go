package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap/zapcore"

	"github.com/monasquad/keepalive/internal/domain"
)

// DefaultPort is used whenever PORT is unset or cannot be parsed.
const DefaultPort Port = 3000

// Port is a TCP port read from the environment.
// Parsing never fails: anything that is not an integer in 1..65535
// falls back to DefaultPort.
type Port uint16

func (p *Port) UnmarshalText(text []byte) error {
	n, err := strconv.Atoi(strings.TrimSpace(string(text)))
	if err != nil || n < 1 || n > 65535 {
		*p = DefaultPort
		return nil
	}
	*p = Port(n)
	return nil
}

func (p Port) String() string {
	return strconv.Itoa(int(p))
}

// Config holds all runtime configuration loaded from environment variables.
// Every field has a default, so an empty environment is a valid one.
type Config struct {
	// Listener
	Port            Port          `env:"PORT"             envDefault:"3000"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT"     envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"    envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Optional status surface on the listener. Off by default: the listener
	// then serves no routes at all.
	EnableStatusRoutes bool `env:"ENABLE_STATUS_ROUTES" envDefault:"false"`
	StatusRateLimit    int  `env:"STATUS_RATE_LIMIT"    envDefault:"20"`

	// Health check
	HealthCheckURL      string        `env:"HEALTH_CHECK_URL"      envDefault:"https://ticket-sale-2.onrender.com/health"`
	HealthCheckSchedule string        `env:"HEALTH_CHECK_SCHEDULE" envDefault:"*/5 * * * *"`
	HealthCheckTimeout  time.Duration `env:"HEALTH_CHECK_TIMEOUT"  envDefault:"0s"`

	LogLevel zapcore.Level `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if _, err := cfg.Schedule(); err != nil {
		return nil, err
	}

	if err := validateURL(cfg.HealthCheckURL); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port.String()
}

// Schedule parses HealthCheckSchedule as a standard 5-field cron expression.
func (c *Config) Schedule() (cron.Schedule, error) {
	sched, err := cron.ParseStandard(c.HealthCheckSchedule)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidSchedule, c.HealthCheckSchedule, err)
	}
	return sched, nil
}

func validateURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", domain.ErrInvalidURL, raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", domain.ErrInvalidURL, raw)
	}
	return nil
}
