package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/ledger_engine/internal/utils"
	"github.com/gin-gonic/gin"
)

// anonymousCaller is the distinct id of requests made without authentication.
const anonymousCaller = "anonymous"

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// EventName turns a route such as /api/ledger/account/add into ledger_account_add.
func EventName(fullPath string) string {
	name := strings.TrimPrefix(fullPath, "/api/")
	name = strings.TrimPrefix(name, "/")
	return strings.ReplaceAll(name, "/", "_")
}

// PosthogMiddleware creates a Gin middleware handler that records successful ledger operations
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		eventName := EventName(c.FullPath())
		// unmatched routes have no full path
		if eventName == "" {
			return
		}

		subject, ok := GetSubjectFromContext(c)
		if !ok {
			subject = anonymousCaller
		}

		posthogClient.Enqueue(subject, eventName, map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		})
	}
}
