package patterns_test

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrymomot/regexkit/pkg/patterns"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"REGEXKIT_MATCH_TIMEOUT", "REGEXKIT_MAX_INPUT_LENGTH"} {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		os.Unsetenv("REGEXKIT_MATCH_TIMEOUT")
		os.Unsetenv("REGEXKIT_MAX_INPUT_LENGTH")
	})
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetConfigEnv(t)

	cfg, err := patterns.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, patterns.DefaultMatchTimeout, cfg.MatchTimeout)
	assert.Equal(t, 0, cfg.MaxInputLength)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	unsetConfigEnv(t)
	t.Setenv("REGEXKIT_MATCH_TIMEOUT", "250ms")
	t.Setenv("REGEXKIT_MAX_INPUT_LENGTH", "1024")

	cfg, err := patterns.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.MatchTimeout)
	assert.Equal(t, 1024, cfg.MaxInputLength)
}

func TestLoadConfig_FromFile(t *testing.T) {
	unsetConfigEnv(t)

	cfg, err := patterns.LoadConfig("testdata/regexkit.env")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.MatchTimeout)
	assert.Equal(t, 4096, cfg.MaxInputLength)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	unsetConfigEnv(t)
	t.Setenv("REGEXKIT_MAX_INPUT_LENGTH", "16")

	cfg, err := patterns.LoadConfig("testdata/regexkit.env")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.MatchTimeout)
	assert.Equal(t, 16, cfg.MaxInputLength)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		unsetConfigEnv(t)
		_, err := patterns.LoadConfig("testdata/does_not_exist.env")
		require.Error(t, err)
		assert.ErrorIs(t, err, patterns.ErrLoadingEnvFile)
	})

	t.Run("invalid value", func(t *testing.T) {
		unsetConfigEnv(t)
		t.Setenv("REGEXKIT_MAX_INPUT_LENGTH", "lots")
		_, err := patterns.LoadConfig()
		require.Error(t, err)
		assert.ErrorIs(t, err, patterns.ErrParsingConfig)
	})
}

func TestWithConfig(t *testing.T) {
	reg, err := patterns.New(patterns.WithConfig(patterns.Config{
		MatchTimeout:   50 * time.Millisecond,
		MaxInputLength: 8,
	}))
	require.NoError(t, err)

	ok, err := reg.Test(patterns.Text, "numbersOnly", "12345678")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = reg.Test(patterns.Text, "numbersOnly", "123456789")
	require.NoError(t, err)
	assert.False(t, ok)
}
