package helpsearch

import (
	"sync"
	"time"
)

// CacheConfig конфигурация кэша результатов поиска
type CacheConfig struct {
	Enabled bool          `json:"enabled"`
	TTL     time.Duration `json:"ttl"`
	MaxSize int           `json:"max_size"`
}

// DefaultCacheConfig возвращает конфигурацию кэша по умолчанию
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Enabled: true,
		TTL:     15 * time.Minute,
		MaxSize: 500,
	}
}

type cacheEntry struct {
	result     *SearchResult
	expiration time.Time
}

// Cache кэш результатов поиска с TTL.
// Кэшируются только ответы внешнего поисковика, не данные таблицы.
type Cache struct {
	config *CacheConfig
	data   map[string]*cacheEntry
	mutex  sync.RWMutex
	hits   int64
	misses int64
}

// NewCache создает новый кэш
func NewCache(config *CacheConfig) *Cache {
	if config == nil {
		config = DefaultCacheConfig()
	}
	return &Cache{
		config: config,
		data:   make(map[string]*cacheEntry),
	}
}

// Get возвращает результат из кэша
func (c *Cache) Get(key string) (*SearchResult, bool) {
	if !c.config.Enabled {
		return nil, false
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.data[key]
	if !exists || time.Now().After(entry.expiration) {
		c.misses++
		return nil, false
	}
	c.hits++
	return entry.result, true
}

// Set сохраняет результат в кэш
func (c *Cache) Set(key string, result *SearchResult) {
	if !c.config.Enabled {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	// При переполнении выбрасываем просроченные записи, затем произвольную
	if c.config.MaxSize > 0 && len(c.data) >= c.config.MaxSize {
		now := time.Now()
		for k, e := range c.data {
			if now.After(e.expiration) {
				delete(c.data, k)
			}
		}
		if len(c.data) >= c.config.MaxSize {
			for k := range c.data {
				delete(c.data, k)
				break
			}
		}
	}

	c.data[key] = &cacheEntry{
		result:     result,
		expiration: time.Now().Add(c.config.TTL),
	}
}

// Stats возвращает счетчики попаданий и промахов
func (c *Cache) Stats() (hits, misses int64, size int) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.hits, c.misses, len(c.data)
}
