package cache

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborlight/teamlens/internal/monitoring"
)

func TestGetSetExpiry(t *testing.T) {
	c := New(50 * time.Millisecond)

	c.Set("k", []byte("payload"))
	data, found := c.Get("k")
	require.True(t, found)
	assert.Equal(t, []byte("payload"), data)

	time.Sleep(80 * time.Millisecond)
	_, found = c.Get("k")
	assert.False(t, found, "entry must expire after the TTL")
}

func TestInvalidateClearsAll(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	c.Invalidate()

	_, found := c.Get("a")
	assert.False(t, found)
	_, found = c.Get("b")
	assert.False(t, found)
	assert.Equal(t, 0, c.Stats()["total_items"])
}

func TestMiddlewareServesSecondRequestFromCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := New(time.Minute)
	metrics := monitoring.NewMetrics()

	calls := 0
	r := gin.New()
	r.GET("/api/roster", c.Middleware(metrics, "/api/roster"), func(ctx *gin.Context) {
		calls++
		ctx.JSON(http.StatusOK, gin.H{"call": calls})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/roster", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"call":1`)
	}

	assert.Equal(t, 1, calls, "handler runs once; later hits come from cache")
}

func TestMiddlewareSkipsUnlistedPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := New(time.Minute)
	metrics := monitoring.NewMetrics()

	calls := 0
	r := gin.New()
	r.GET("/api/other", c.Middleware(metrics, "/api/roster"), func(ctx *gin.Context) {
		calls++
		ctx.JSON(http.StatusOK, gin.H{"call": calls})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/other", nil))
	}
	assert.Equal(t, 2, calls)
}

func TestMiddlewareScopesByUnit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := New(time.Minute)
	metrics := monitoring.NewMetrics()

	r := gin.New()
	r.GET("/api/dashboard",
		func(ctx *gin.Context) {
			ctx.Set("unit", ctx.Query("as"))
		},
		c.Middleware(metrics, "/api/dashboard"),
		func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"unit": ctx.GetString("unit")})
		})

	fetch := func(unit string) string {
		w := httptest.NewRecorder()
		// Same path and query shape per unit; only the context scope differs
		// via the "as" parameter, which also lands in the key through the
		// query string. Use an identical query to isolate the unit scope.
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard?as="+unit, nil)
		r.ServeHTTP(w, req)
		return w.Body.String()
	}

	north := fetch("north-house")
	south := fetch("south-house")
	assert.Contains(t, north, "north-house")
	assert.Contains(t, south, "south-house")
	assert.NotEqual(t, north, south, "one unit's cached view must not serve another's")
}

func TestMiddlewareDoesNotCacheErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := New(time.Minute)
	metrics := monitoring.NewMetrics()

	calls := 0
	r := gin.New()
	r.GET("/api/roster", c.Middleware(metrics, "/api/roster"), func(ctx *gin.Context) {
		calls++
		if calls == 1 {
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "down"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/roster", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/roster", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, calls, "the failed response must not be replayed")
}

func TestStats(t *testing.T) {
	c := New(time.Minute)
	for i := 0; i < 4; i++ {
		c.Set(fmt.Sprintf("k%d", i), []byte("x"))
	}
	stats := c.Stats()
	assert.Equal(t, 4, stats["total_items"])
	assert.Equal(t, 0, stats["expired_items"])
}
