package csp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaultConfigUsesDefaultsWhenUnset(t *testing.T) {
	t.Setenv("CSP_DEFAULT_CAPACITY", "")
	t.Setenv("CSP_IDLE_CLOSE_AFTER", "")

	cfg, err := LoadDefaultConfig()
	assert.NoError(t, err)
	assert.Equal(t, 0, cfg.Capacity)
	assert.Equal(t, 5*time.Minute, cfg.IdleCloseAfter)
}

func TestLoadDefaultConfigHonorsEnv(t *testing.T) {
	t.Setenv("CSP_DEFAULT_CAPACITY", "64")
	t.Setenv("CSP_IDLE_CLOSE_AFTER", "30s")

	cfg, err := LoadDefaultConfig()
	assert.NoError(t, err)
	assert.Equal(t, 64, cfg.Capacity)
	assert.Equal(t, 30*time.Second, cfg.IdleCloseAfter)
}
