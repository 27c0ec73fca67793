package external

import (
	"fmt"

	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	"github.com/jonboulle/clockwork"
)

const (
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
)

type CacheProviderFactory struct {
	clock clockwork.Clock
}

func NewCacheProviderFactory(clock clockwork.Clock) *CacheProviderFactory {
	return &CacheProviderFactory{clock: clock}
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg ports.CacheConfig) (ports.CacheProvider, error) {
	switch cfg.Type {
	case CacheTypeMemory:
		return NewMemoryCacheProvider(f.clock), nil
	case CacheTypeRedis:
		return NewRedisCacheProviderAdapter(cfg.Redis)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type), nil)
	}
}
