package cards

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ptcgtools/ptcg-companion/internal/ptcg/cards/tcgio"
)

// SetFetcher fetches a whole set from the live API. *tcgio.Client
// satisfies it; tests substitute fixtures.
type SetFetcher interface {
	CardsBySet(ctx context.Context, setCode string) ([]*tcgio.Card, error)
}

// ServiceConfig holds configuration for the card data service.
type ServiceConfig struct {
	// EnableCache enables in-memory caching of fetched sets.
	EnableCache bool

	// CacheSize is the maximum number of sets to cache in memory.
	CacheSize int

	// CacheTTL is the time-to-live for cached sets.
	CacheTTL time.Duration

	// FallbackToAPI enables API fetches on cache and store misses.
	FallbackToAPI bool
}

// DefaultServiceConfig returns a ServiceConfig with sensible defaults.
func DefaultServiceConfig() *ServiceConfig {
	return &ServiceConfig{
		EnableCache:   true,
		CacheSize:     16,
		CacheTTL:      24 * time.Hour,
		FallbackToAPI: true,
	}
}

// Service supplies card data for whole sets, layered cache over store
// over API. Every layer is optional; tests usually run store-only or
// with a fixture fetcher. Service implements Provider.
type Service struct {
	fetcher SetFetcher
	store   *Store
	cache   *Cache
	config  *ServiceConfig
}

// NewService creates a card data service. fetcher and store may be nil.
func NewService(fetcher SetFetcher, store *Store, config *ServiceConfig) *Service {
	if config == nil {
		config = DefaultServiceConfig()
	}

	var cache *Cache
	if config.EnableCache {
		cache = NewCache(config.CacheSize, config.CacheTTL)
	}

	return &Service{
		fetcher: fetcher,
		store:   store,
		cache:   cache,
		config:  config,
	}
}

// SetCards returns the card data for a set, checking cache, then store,
// then the live API. A set that no layer can supply yields an empty
// slice; only transport failures are errors.
func (s *Service) SetCards(ctx context.Context, setCode string) ([]*CardData, error) {
	if s.cache != nil {
		if data := s.cache.Get(setCode); data != nil {
			return data, nil
		}
	}

	if s.store != nil {
		data, err := s.store.SetCards(ctx, setCode)
		if err != nil {
			return nil, err
		}
		if len(data) > 0 {
			if s.cache != nil {
				s.cache.Set(setCode, data)
			}
			return data, nil
		}
	}

	if s.fetcher == nil || !s.config.FallbackToAPI {
		return []*CardData{}, nil
	}

	apiCards, err := s.fetcher.CardsBySet(ctx, setCode)
	if err != nil {
		return nil, fmt.Errorf("fetch set %s: %w", setCode, err)
	}

	data := make([]*CardData, 0, len(apiCards))
	for _, c := range apiCards {
		data = append(data, FromTCGIO(c))
	}

	if s.store != nil {
		if err := s.store.SaveSet(ctx, setCode, data); err != nil {
			// The fetched data is still usable without persistence.
			log.Printf("card store: save set %s: %v", setCode, err)
		}
	}
	if s.cache != nil {
		s.cache.Set(setCode, data)
	}
	return data, nil
}
