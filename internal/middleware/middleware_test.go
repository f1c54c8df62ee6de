package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/ledger_engine/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.Default()))
	r.Use(handlers...)
	r.POST("/api/ledger/account/get", func(c *gin.Context) {
		subject, _ := GetSubjectFromContext(c)
		logged := GetLoggerFromCtx(c.Request.Context()) != nil
		c.JSON(http.StatusOK, gin.H{"subject": subject, "logger": logged})
	})
	return r
}

func TestStructuredLoggingRequestID(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ledger/account/get", nil)
	req.Header.Set("X-Request-ID", "req-42")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"subject":"","logger":true}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/ledger/account/get", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAuthMiddleware(t *testing.T) {
	r := newEngine(AuthMiddleware("s3cret", "ledger-engine"))
	valid, err := utils.GenerateJWT("ops", "s3cret", time.Hour, "ledger-engine")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/ledger/account/get", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"subject":"ops","logger":true}`, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"kind":"Unauthorized"`)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	lim, err := NewRateLimiter("2-M")
	require.NoError(t, err)
	r := newEngine(RateLimit(lim))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/ledger/account/get", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = NewRateLimiter("lots")
	assert.Error(t, err)
}

func TestPosthogMiddlewareDisabled(t *testing.T) {
	r := newEngine(PosthogMiddleware(&utils.PosthogClientWrapper{}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/ledger/account/get", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEventName(t *testing.T) {
	assert.Equal(t, "ledger_account_add", EventName("/api/ledger/account/add"))
	assert.Equal(t, "health", EventName("/health"))
	assert.Equal(t, "", EventName(""))
}
