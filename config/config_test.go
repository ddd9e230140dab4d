package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	t.Setenv("PORT", "9090")
	c, err = Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "local", c.Storage.Backend)
	assert.NotEmpty(t, c.CORS.AllowedOrigins)
	assert.Contains(t, c.DSN(), "sslmode=")
}

func TestLoadRejectsUnknownStorageBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "ftp")

	_, err := Load()
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList("a, b"))
	assert.Equal(t, []string{"https://example.com"}, splitList("https://example.com,"))
}
