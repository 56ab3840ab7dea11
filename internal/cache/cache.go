package cache

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harborlight/teamlens/internal/monitoring"
)

// Item is a cached response body with expiration.
type Item struct {
	Data      []byte
	ExpiresAt time.Time
}

// IsExpired reports whether the item is past its TTL.
func (i *Item) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}

// Cache is a thread-safe TTL response cache for read-only endpoints. The
// roster and dashboard change slowly; caching them keeps the sqlite read
// path off the hot loop.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*Item
	ttl   time.Duration
}

// New creates a cache with the given TTL and starts background cleanup.
func New(ttl time.Duration) *Cache {
	c := &Cache{
		items: make(map[string]*Item),
		ttl:   ttl,
	}
	go c.cleanup()
	return c
}

func (c *Cache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		for key, item := range c.items {
			if item.IsExpired() {
				delete(c.items, key)
			}
		}
		c.mu.Unlock()
	}
}

// Get retrieves a cached response body.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[key]
	if !exists || item.IsExpired() {
		return nil, false
	}
	return item.Data, true
}

// Set stores a response body under key.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = &Item{Data: data, ExpiresAt: time.Now().Add(c.ttl)}
}

// Invalidate removes every cached entry. Called after a new submission so
// dashboard listings never serve stale rows for the full TTL.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*Item)
}

// Stats returns cache statistics.
func (c *Cache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	expired := 0
	for _, item := range c.items {
		if item.IsExpired() {
			expired++
		}
	}

	return map[string]interface{}{
		"total_items":   len(c.items),
		"expired_items": expired,
		"ttl_seconds":   c.ttl.Seconds(),
	}
}

// Middleware caches successful GET responses for the listed paths, keyed by
// path, query string, and the authenticated unit scope (so one supervisor's
// filtered dashboard never leaks into another's).
func (c *Cache) Middleware(metrics *monitoring.Metrics, paths ...string) gin.HandlerFunc {
	cacheable := make(map[string]bool, len(paths))
	for _, p := range paths {
		cacheable[p] = true
	}

	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet || !cacheable[ctx.Request.URL.Path] {
			ctx.Next()
			return
		}

		key := cacheKey(ctx)
		if data, found := c.Get(key); found {
			metrics.IncrementCacheHit()
			ctx.Data(http.StatusOK, "application/json", data)
			ctx.Abort()
			return
		}
		metrics.IncrementCacheMiss()

		wrapper := &responseWriter{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
		ctx.Writer = wrapper
		ctx.Next()

		if ctx.Writer.Status() == http.StatusOK {
			c.Set(key, wrapper.body.Bytes())
		}
	}
}

func cacheKey(ctx *gin.Context) string {
	unit := ctx.GetString("unit")
	hash := md5.Sum([]byte(ctx.Request.URL.Path + "?" + ctx.Request.URL.RawQuery + "#" + unit))
	return fmt.Sprintf("%x", hash)
}

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
