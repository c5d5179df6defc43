package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	width int
	name  string
	calls []string
}

func withWidth(w int) Option[*testConfig] {
	return Named("width", func(c *testConfig) error {
		if w <= 0 {
			return errors.New("must be positive")
		}
		c.width = w
		c.calls = append(c.calls, "width")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("steel"), withWidth(3), withName("fury"))

		require.NoError(t, err)
		require.Equal(t, 3, cfg.width)
		require.Equal(t, "fury", cfg.name)
		require.Equal(t, []string{"name", "width", "name"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withWidth(-1), withName("never"))

		require.Error(t, err)
		require.Equal(t, "width: must be positive", err.Error())
		require.Empty(t, cfg.calls)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withWidth(2)))
		require.Equal(t, 2, cfg.width)
	})

	t.Run("unnamed error is not prefixed", func(t *testing.T) {
		sentinel := errors.New("rejected")
		opt := New(func(*testConfig) error { return sentinel })

		err := Apply(&testConfig{}, Option[*testConfig](opt))
		require.ErrorIs(t, err, sentinel)
		require.Equal(t, "rejected", err.Error())
	})
}
