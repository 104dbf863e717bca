package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.Notifier.validate(),
		c.Telemetry.validate(),
		c.Transfer.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverSQLite:
		if s.DSN == "" {
			return errors.New("store.dsn must not be empty when driver is sqlite")
		}
		return nil
	default:
		return fmt.Errorf("store.driver must be one of: memory, sqlite; got %q", s.Driver)
	}
}

func (n *NotifierConfig) validate() error {
	if !n.Enabled {
		return nil
	}

	var errs []error

	if n.BaseURL == "" {
		errs = append(errs, errors.New("notifier.base_url must not be empty"))
	} else if u, err := url.Parse(n.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("notifier.base_url must be an absolute URL, got %q", n.BaseURL))
	}
	if n.Timeout <= 0 {
		errs = append(errs, errors.New("notifier.timeout must be positive"))
	}
	if n.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("notifier.circuit_breaker.max_failures must be >= 1, got %d",
			n.CircuitBreaker.MaxFailures))
	}
	if n.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("notifier.rate_limit.requests_per_second must not be negative, got %f",
			n.RateLimit.RequestsPerSecond))
	}
	if n.RateLimit.RequestsPerSecond > 0 && n.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("notifier.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			n.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (t *TransferConfig) validate() error {
	if t.RequestTimeout <= 0 {
		return errors.New("transfer.request_timeout must be positive")
	}
	return nil
}
