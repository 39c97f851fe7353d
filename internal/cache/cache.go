package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type CacheItem struct {
	Value      interface{}
	Expiration int64
}

// Cache guarda respuestas ya serializadas de la tienda
type Cache struct {
	items map[string]CacheItem
	mu    sync.RWMutex
	ttl   time.Duration
	gen   uint64
	stop  chan struct{}
	once  sync.Once
}

// New crea un caché con TTL por defecto y arranca la limpieza periódica
func New(defaultTTL time.Duration) *Cache {
	c := &Cache{
		items: make(map[string]CacheItem),
		ttl:   defaultTTL,
		stop:  make(chan struct{}),
	}
	go c.cleanupExpired(cleanupInterval(defaultTTL))
	return c
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 || ttl > 5*time.Minute {
		return 5 * time.Minute
	}
	return ttl
}

// set guarda un valor; el llamador tiene el lock
func (c *Cache) set(key string, value interface{}, ttl ...time.Duration) {
	duration := c.ttl
	if len(ttl) > 0 {
		duration = ttl[0]
	}

	expiration := time.Now().Add(duration).UnixNano()
	c.items[key] = CacheItem{
		Value:      value,
		Expiration: expiration,
	}
}

// GetValue obtiene un valor del caché
func (c *Cache) GetValue(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}

	// Verificar si expiró
	if time.Now().UnixNano() > item.Expiration {
		return nil, false
	}

	return item.Value, true
}

// GetBytes obtiene un valor guardado con Marshal
func (c *Cache) GetBytes(key string) ([]byte, bool) {
	value, found := c.GetValue(key)
	if !found {
		return nil, false
	}
	data, ok := value.([]byte)
	return data, ok
}

// DeleteByPrefix elimina todas las claves que empiecen con un prefijo
// y avanza la generación
func (c *Cache) DeleteByPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++

	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

// Stop detiene la limpieza periódica
func (c *Cache) Stop() {
	c.once.Do(func() { close(c.stop) })
}

// cleanupExpired limpia items expirados periódicamente
func (c *Cache) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *Cache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for key, item := range c.items {
		if now > item.Expiration {
			delete(c.items, key)
		}
	}
}

// Size retorna el número de items en caché
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Generation devuelve la generación actual. Se toma antes de leer los datos
// que se van a cachear.
func (c *Cache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// Marshal serializa y guarda en caché, salvo que hubo una invalidación
// desde la generación gen; en ese caso solo devuelve los bytes.
func (c *Cache) Marshal(key string, value interface{}, gen uint64, ttl ...time.Duration) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return data, nil
	}
	c.set(key, data, ttl...)
	return data, nil
}
