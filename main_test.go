package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInitMonitorConfigDefaults(t *testing.T) {
	viper.Reset()

	cfg := initMonitorConfig()
	assert.Equal(t, 3, cfg.IntervalMinutes)
	assert.Equal(t, 10, cfg.FetchTimeoutSeconds)
	assert.Equal(t, 60, cfg.CycleTimeoutSeconds)
}

func TestInitMonitorConfigOverrides(t *testing.T) {
	viper.Reset()
	viper.Set("monitor", map[string]any{
		"interval_minutes":      1,
		"cycle_timeout_seconds": 30,
	})

	cfg := initMonitorConfig()
	assert.Equal(t, 1, cfg.IntervalMinutes)
	assert.Equal(t, 30, cfg.CycleTimeoutSeconds)
	// untouched keys keep their defaults
	assert.Equal(t, 10, cfg.FetchTimeoutSeconds)
}
