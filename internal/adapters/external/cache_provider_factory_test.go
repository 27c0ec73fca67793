package external

import (
	"testing"

	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheProviderFactory_CreateCacheProvider(t *testing.T) {
	factory := NewCacheProviderFactory(nil)

	t.Run("memory", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(ports.CacheConfig{Type: CacheTypeMemory})
		require.NoError(t, err)
		assert.IsType(t, &MemoryCacheProvider{}, provider)
	})

	t.Run("redis", func(t *testing.T) {
		_, redisCfg := setupMockRedis(t)
		provider, err := factory.CreateCacheProvider(ports.CacheConfig{Type: CacheTypeRedis, Redis: redisCfg})
		require.NoError(t, err)
		assert.IsType(t, &RedisCacheProviderAdapter{}, provider)
		require.NoError(t, provider.(*RedisCacheProviderAdapter).Close())
	})

	t.Run("unsupported", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(ports.CacheConfig{Type: "memcached"})
		require.Error(t, err)
		assert.Nil(t, provider)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "unsupported cache type: memcached")
	})
}
