package csp

import (
	"time"

	"github.com/ezex-io/gopkg/csp/internal/env"
)

// DefaultConfig holds process-wide defaults read from the environment,
// applied by callers that want their channels to follow ops-configured
// sizing rather than hardcoded constants.
type DefaultConfig struct {
	// Capacity is the buffer capacity new channels should use when the
	// caller doesn't have a more specific value in mind.
	Capacity int
	// IdleCloseAfter is how long a producer-less channel should be left
	// open before CloseAfter reclaims it.
	IdleCloseAfter time.Duration
}

// LoadDefaultConfig reads CSP_DEFAULT_CAPACITY and
// CSP_IDLE_CLOSE_AFTER from the environment (optionally loaded from
// envFile first via godotenv), falling back to 0 (unbuffered) and 5
// minutes respectively when unset.
func LoadDefaultConfig(envFile ...string) (DefaultConfig, error) {
	if len(envFile) > 0 {
		if err := env.LoadEnvsFromFile(envFile...); err != nil {
			return DefaultConfig{}, err
		}
	}

	return DefaultConfig{
		Capacity:       env.GetEnv[int]("CSP_DEFAULT_CAPACITY", env.WithDefault("0")),
		IdleCloseAfter: env.GetEnv[time.Duration]("CSP_IDLE_CLOSE_AFTER", env.WithDefault("5m")),
	}, nil
}
