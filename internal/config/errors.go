package config

import (
	"errors"
)

// Sentinel error kinds returned by Load, so callers can tell a bad value
// from a failed source via errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
