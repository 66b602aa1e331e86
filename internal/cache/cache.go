package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"
)

// Store es la caché de lecturas de la API. Los valores viajan como JSON
// para que la implementación en memoria y la de Redis se comporten igual.
type Store interface {
	// Get rellena dest y devuelve true si la clave existe y no ha expirado
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

type cacheItem struct {
	value      []byte
	expiration int64
}

// Memory es la caché local del proceso
type Memory struct {
	items map[string]cacheItem
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

// NewMemory crea la caché y arranca la limpieza periódica de expirados.
// Llamar a Close para pararla.
func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	c := &Memory{
		items: make(map[string]cacheItem),
		ttl:   defaultTTL,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go c.cleanupExpired(cleanupInterval)
	}
	return c
}

// Set guarda value serializado. ttl <= 0 usa el TTL por defecto.
func (c *Memory) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = c.ttl
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheItem{
		value:      data,
		expiration: c.now().Add(ttl).UnixNano(),
	}
	return nil
}

func (c *Memory) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.RLock()
	item, found := c.items[key]
	c.mu.RUnlock()

	if !found || c.now().UnixNano() > item.expiration {
		return false, nil
	}
	if err := json.Unmarshal(item.value, dest); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteByPrefix elimina todas las claves que empiecen con un prefijo
func (c *Memory) DeleteByPrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
	return nil
}

// Size retorna el número de items en caché, expirados incluidos
func (c *Memory) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Close para la limpieza periódica
func (c *Memory) Close() error {
	c.once.Do(func() { close(c.stop) })
	return nil
}

func (c *Memory) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.purge()
		}
	}
}

func (c *Memory) purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now().UnixNano()
	for key, item := range c.items {
		if now > item.expiration {
			delete(c.items, key)
		}
	}
}
