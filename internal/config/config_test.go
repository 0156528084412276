package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	c, err := FromEnv(env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, 1.10, c.GammaM0)
	assert.Equal(t, 360.0, c.DeflectionLimitRatio)
	assert.False(t, c.TLS())
}

func TestFromEnvOverrides(t *testing.T) {
	c, err := FromEnv(env(map[string]string{
		"ADDR":                   ":9000",
		"TLS_CERT":               "server.crt",
		"TLS_KEY":                "server.key",
		"RATE_LIMIT":             "2.5",
		"RATE_BURST":             "4",
		"SHUTDOWN_TIMEOUT":       "10s",
		"GAMMA_M0":               "1.15",
		"DEFLECTION_LIMIT_RATIO": "300",
	}))
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.Addr)
	assert.True(t, c.TLS())
	assert.Equal(t, 2.5, c.RateLimit)
	assert.Equal(t, 4, c.RateBurst)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.Equal(t, 1.15, c.GammaM0)
	assert.Equal(t, 300.0, c.DeflectionLimitRatio)
}

func TestFromEnvInvalid(t *testing.T) {
	for _, m := range []map[string]string{
		{"RATE_LIMIT": "fast"},
		{"RATE_BURST": "0"},
		{"GAMMA_M0": "-1"},
		{"DEFLECTION_LIMIT_RATIO": "0"},
		{"SHUTDOWN_TIMEOUT": "soon"},
		{"TLS_CERT": "only.crt"},
	} {
		_, err := FromEnv(env(m))
		assert.Error(t, err, "%v", m)
	}
}

func TestLoadMissingFileIsFine(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("STEELCHECK_TEST_ONLY=1\nDEFLECTION_LIMIT_RATIO=250\n"), 0o600))
	// godotenv never overrides a set variable
	t.Setenv("DEFLECTION_LIMIT_RATIO", "")
	os.Unsetenv("DEFLECTION_LIMIT_RATIO")
	t.Cleanup(func() { os.Unsetenv("STEELCHECK_TEST_ONLY") })

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250.0, c.DeflectionLimitRatio)
}
