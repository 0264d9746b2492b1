package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/pkg/config"
)

type defaultsConfig struct {
	Addr    string        `env:"CFG_TEST_DEFAULT_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"CFG_TEST_DEFAULT_TIMEOUT" envDefault:"5s"`
}

type overrideConfig struct {
	Name  string `env:"CFG_TEST_OVERRIDE_NAME" envDefault:"signup"`
	Debug bool   `env:"CFG_TEST_OVERRIDE_DEBUG" envDefault:"false"`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED_VALUE" envDefault:"first"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED_VALUE,required"`
}

type nestedConfig struct {
	Name string `env:"CFG_TEST_NESTED_NAME" envDefault:"outer"`
	HTTP struct {
		Addr string `env:"CFG_TEST_NESTED_ADDR" envDefault:":9090"`
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("CFG_TEST_OVERRIDE_NAME", "custom")
		t.Setenv("CFG_TEST_OVERRIDE_DEBUG", "true")

		var cfg overrideConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "custom", cfg.Name)
		assert.True(t, cfg.Debug)
	})

	t.Run("cached per type", func(t *testing.T) {
		var first cachedConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "first", first.Value)

		t.Setenv("CFG_TEST_CACHED_VALUE", "second")
		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Value)
	})

	t.Run("nested structs", func(t *testing.T) {
		var cfg nestedConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "outer", cfg.Name)
		assert.Equal(t, ":9090", cfg.HTTP.Addr)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("failed parse is retried", func(t *testing.T) {
		var cfg requiredConfig
		require.Error(t, config.Load(&cfg))

		t.Setenv("CFG_TEST_REQUIRED_VALUE", "present")
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "present", cfg.Value)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[defaultsConfig](nil), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on error", func(t *testing.T) {
		type mustRequired struct {
			Value string `env:"CFG_TEST_MUST_REQUIRED,required"`
		}
		var cfg mustRequired
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("loads", func(t *testing.T) {
		var cfg defaultsConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, ":8080", cfg.Addr)
	})
}
