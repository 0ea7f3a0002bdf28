package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skillstat/pkg/cache"
)

func TestNewParsesURL(t *testing.T) {
	c, err := New(cache.Options{RedisURL: "redis://:secret@localhost:6379/2"})
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, 5*time.Minute, c.defaultTTL)
	assert.Equal(t, "localhost:6379", c.client.Options().Addr)
	assert.Equal(t, 2, c.client.Options().DB)
}

func TestNewRejectsBadURL(t *testing.T) {
	_, err := New(cache.Options{RedisURL: "http://localhost"})
	assert.Error(t, err)
}

func TestEmptyKey(t *testing.T) {
	c, err := New(cache.Options{RedisURL: "redis://localhost:6379/0", DefaultTTL: time.Minute})
	require.NoError(t, err)
	defer c.Close()

	assert.ErrorIs(t, c.Set(context.Background(), "", []byte("x"), 0), cache.ErrInvalidKey)
	_, err = c.Get(context.Background(), "")
	assert.ErrorIs(t, err, cache.ErrInvalidKey)
}
