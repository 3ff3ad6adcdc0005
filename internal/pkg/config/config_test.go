//go:build unit

package config_test

import (
	"testing"
	"time"

	"room-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "3000", cfg.Server.Port)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "legacy", cfg.Booking.OverlapPolicy)
		assert.True(t, cfg.RateLimit.Enabled())
		assert.Equal(t, 10*time.Minute, cfg.RateLimit.IdleTTL)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("BOOKING_OVERLAP_POLICY", "strict")
		t.Setenv("RATE_LIMIT_RPS", "0")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "strict", cfg.Booking.OverlapPolicy)
		assert.False(t, cfg.RateLimit.Enabled())
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}
