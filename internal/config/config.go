// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and PLENUM_ env vars.
// - External errors must be wrapped via this package's error helpers.
package config

import "context"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":5000".
	Addr string `koanf:"addr"`

	// AllowedOrigins lists CORS origins permitted to call the API.
	AllowedOrigins []string `koanf:"allowed_origins"`

	// SeedData controls whether the store starts with demo conference data.
	SeedData bool `koanf:"seed_data"`

	// RequestTimeoutMS bounds handler execution per request.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`

	// Currency and CurrencySymbol seed the app settings singleton when the
	// store creates it on first use.
	Currency       string `koanf:"currency"`
	CurrencySymbol string `koanf:"currency_symbol"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":5000",
		AllowedOrigins:   []string{"*"},
		SeedData:         true,
		RequestTimeoutMS: 30_000,
		Currency:         "USD",
		CurrencySymbol:   "$",
	}
}
