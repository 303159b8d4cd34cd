package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	opts, err := Options(Config{URL: "redis://:secret@cache.internal"})
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Nil(t, opts.TLSConfig)

	opts, err = Options(Config{URL: "rediss://cache.internal:6380", Password: "explicit"})
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "explicit", opts.Password)
	assert.NotNil(t, opts.TLSConfig)

	_, err = Options(Config{URL: "http://cache.internal"})
	assert.Error(t, err)
}

func TestHealthCheckWithoutClient(t *testing.T) {
	assert.Nil(t, Client())
	assert.Error(t, HealthCheck(context.Background()))
}
