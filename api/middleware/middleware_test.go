package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/wacul/ptr"

	"github.com/blnkfinance/purchase-lookup/config"
)

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString(RequestIDKey)})
	})
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	r := newTestRouter(RateLimitMiddleware(&config.Configuration{}))
	for i := 0; i < 5; i++ {
		resp := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, resp.Code)
	}
}

func TestRateLimitMiddleware_RejectsOverBurst(t *testing.T) {
	rps := 1.0
	conf := &config.Configuration{RateLimit: config.RateLimitConfig{
		RequestsPerSecond:  &rps,
		Burst:              ptr.Int(1),
		CleanupIntervalSec: ptr.Int(60),
	}}
	r := newTestRouter(RateLimitMiddleware(conf))

	first := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("wildcard", func(t *testing.T) {
		r := newTestRouter(CORSMiddleware([]string{"*"}))
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://example.com")
		resp := serve(r, req)
		assert.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("listed origin is reflected", func(t *testing.T) {
		r := newTestRouter(CORSMiddleware([]string{"https://a.example.com"}))
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://a.example.com")
		resp := serve(r, req)
		assert.Equal(t, "https://a.example.com", resp.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin gets no header", func(t *testing.T) {
		r := newTestRouter(CORSMiddleware([]string{"https://a.example.com"}))
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://b.example.com")
		resp := serve(r, req)
		assert.Empty(t, resp.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("preflight", func(t *testing.T) {
		r := newTestRouter(CORSMiddleware([]string{"*"}))
		resp := serve(r, httptest.NewRequest(http.MethodOptions, "/ping", nil))
		assert.Equal(t, http.StatusNoContent, resp.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	r := newTestRouter(RequestIDMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	resp := serve(r, req)
	assert.Equal(t, "req-123", resp.Header().Get(RequestIDHeader))
	assert.Contains(t, resp.Body.String(), "req-123")

	resp = serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, resp.Header().Get(RequestIDHeader), 36)
}

func TestLoggerMiddleware(t *testing.T) {
	r := newTestRouter(RequestIDMiddleware(), LoggerMiddleware())
	resp := serve(r, httptest.NewRequest(http.MethodGet, "/ping?ssn=123", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
}
