package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	appredis "thinklie-backend/internal/redis"
	"thinklie-backend/internal/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, cfg appredis.RateLimitConfig) *appredis.RateLimiter {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return appredis.NewRateLimiter(client, cfg)
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func TestAuthRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := newTestLimiter(t, appredis.RateLimitConfig{
		AuthLimit:  2,
		AuthWindow: time.Minute,
	})

	r := gin.New()
	r.POST("/auth/login", AuthRateLimitMiddleware(limiter), okHandler)

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
		return w
	}

	// Allowed requests carry the window headers and count down.
	w := do()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))

	w = do()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	// Window exhausted.
	w = do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	reset, err := strconv.Atoi(w.Header().Get("X-RateLimit-Reset"))
	require.NoError(t, err)
	assert.Greater(t, reset, 0)
}

func TestMessageRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := newTestLimiter(t, appredis.RateLimitConfig{
		MessageLimit:  1,
		MessageWindow: time.Minute,
	})

	alice := uuid.New()
	bob := uuid.New()

	injectUser := func(userID uuid.UUID) gin.HandlerFunc {
		return func(c *gin.Context) {
			ctx := services.WithUserContext(c.Request.Context(), userID)
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		}
	}

	send := func(userID uuid.UUID) *httptest.ResponseRecorder {
		r := gin.New()
		r.POST("/message", injectUser(userID), MessageRateLimitMiddleware(limiter), okHandler)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/message", nil))
		return w
	}

	assert.Equal(t, http.StatusOK, send(alice).Code)

	w := send(alice)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "message rate limit exceeded")

	// The window is per user, so another user is unaffected.
	assert.Equal(t, http.StatusOK, send(bob).Code)
}

func TestRateLimitMiddlewareDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/auth/login", AuthRateLimitMiddleware(nil), okHandler)
	r.POST("/message", MessageRateLimitMiddleware(nil), okHandler)

	for _, path := range []string{"/auth/login", "/message"} {
		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
		}
	}
}
