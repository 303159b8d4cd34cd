package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ats-backend/internal/domain"
	"ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/fail", func(c *gin.Context) {
		c.Error(apperror.Invalid(domain.ErrValidation, domain.MsgInvalidPayload, errors.New("bad")))
	})
	return r
}

func get(r http.Handler, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddlewareInMemory(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := RateLimitConfig{
		Limit:     2,
		Window:    time.Minute,
		KeyPrefix: "rl:test:",
		KeyFunc:   func(c *gin.Context) string { return "client" },
	}
	r := newEngine(RequestID(), RateLimitMiddleware(ctx, cfg))

	assert.Equal(t, http.StatusOK, get(r, "/ping", nil).Code)
	w := get(r, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = get(r, "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), msgRateLimited)
}

func TestMemoryStoreWindowReset(t *testing.T) {
	store := &memoryStore{}
	cfg := RateLimitConfig{Limit: 1, Window: time.Second}
	now := time.Now()

	count, _ := store.check("k", cfg, now)
	assert.Equal(t, 1, count)
	count, _ = store.check("k", cfg, now)
	assert.Equal(t, 2, count)

	count, _ = store.check("k", cfg, now.Add(2*time.Second))
	assert.Equal(t, 1, count)
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	t.Run("Generated when absent", func(t *testing.T) {
		w := get(r, "/ping", nil)
		_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
		assert.NoError(t, err)
	})

	t.Run("Reuses a valid incoming id", func(t *testing.T) {
		id := uuid.NewString()
		w := get(r, "/ping", map[string]string{RequestIDHeader: id})
		assert.Equal(t, id, w.Header().Get(RequestIDHeader))
	})

	t.Run("Replaces a malformed incoming id", func(t *testing.T) {
		w := get(r, "/ping", map[string]string{RequestIDHeader: "not-a-uuid"})
		assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
	})
}

func TestErrorHandler(t *testing.T) {
	r := newEngine(RequestID(), ErrorHandler())

	w := get(r, "/fail", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"bad"`)
	assert.Contains(t, w.Body.String(), domain.MsgInvalidPayload)
	assert.Contains(t, w.Body.String(), w.Header().Get(RequestIDHeader))
}

func TestCORSMiddleware(t *testing.T) {
	r := newEngine(CORSMiddleware([]string{"http://allowed.test"}))

	w := get(r, "/ping", map[string]string{"Origin": "http://allowed.test"})
	assert.Equal(t, "http://allowed.test", w.Header().Get("Access-Control-Allow-Origin"))

	w = get(r, "/ping", map[string]string{"Origin": "http://evil.test"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://evil.test")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	w := get(newEngine(SecurityHeadersMiddleware(false)), "/ping", nil)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))

	w = get(newEngine(SecurityHeadersMiddleware(true)), "/ping", nil)
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}
