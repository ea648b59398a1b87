package httpapi

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultListenAddr         = ":9090"
	defaultReservationAddr    = "localhost:7000"
	defaultAllowedOrigin      = "http://localhost:8000"
	defaultSessionIssuer      = "tauth"
	defaultSessionCookie      = "app_session"
	defaultServiceIssuer      = "reservel"
	defaultReservationTimeout = 3 * time.Second
)

// Config aggregates runtime settings for the HTTP gateway.
type Config struct {
	ListenAddr          string
	ReservationAddress  string
	ReservationInsecure bool
	ReservationTimeout  time.Duration
	AllowedOrigins      []string
	SessionSigningKey   string
	SessionIssuer       string
	SessionCookieName   string
	ServiceSigningKey   string
	ServiceIssuer       string
}

// Validate fills defaults and ensures the configuration contains sane values.
func (cfg *Config) Validate() error {
	cfg.ListenAddr = defaultIfEmpty(cfg.ListenAddr, defaultListenAddr)
	cfg.ReservationAddress = defaultIfEmpty(cfg.ReservationAddress, defaultReservationAddr)
	if cfg.ReservationTimeout <= 0 {
		cfg.ReservationTimeout = defaultReservationTimeout
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{defaultAllowedOrigin}
	}
	cfg.SessionIssuer = defaultIfEmpty(cfg.SessionIssuer, defaultSessionIssuer)
	cfg.SessionCookieName = defaultIfEmpty(cfg.SessionCookieName, defaultSessionCookie)
	cfg.ServiceIssuer = defaultIfEmpty(cfg.ServiceIssuer, defaultServiceIssuer)
	if len(cfg.SessionSigningKey) == 0 {
		return fmt.Errorf("session signing key is required")
	}
	if len(cfg.ServiceSigningKey) == 0 {
		return fmt.Errorf("service signing key is required")
	}
	return nil
}

func defaultIfEmpty(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// ParseAllowedOrigins splits comma-delimited origins into a slice.
func ParseAllowedOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	normalized := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}
