package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// subjectKey stores the authenticated caller in the Gin and request contexts.
const subjectKey = contextKey("subject")

// GetSubjectFromContext retrieves the authenticated caller from the Gin context.
// It returns the subject and a boolean indicating if it was found.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(subjectKey)); exists {
		subject, ok := v.(string)
		return subject, ok
	}
	return GetSubjectFromCtx(c.Request.Context())
}

// GetSubjectFromCtx retrieves the authenticated caller from a request context.
func GetSubjectFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok && subject != ""
}
