// Package middlewares holds the HTTP middleware shared across routes.
package middlewares

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/dimasprtm/wa-reminder/internal/api/respond"
)

// userIDKey is the context key the auth middleware stores the caller under.
const userIDKey = "user_id"

// CORSMiddleware allows cross-origin requests from the web client.
func CORSMiddleware() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-User-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Auth reads the caller's identity from the X-User-ID header. Requests
// without a valid user UUID are rejected before reaching the handlers.
func Auth() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id, err := uuid.Parse(c.GetHeader("X-User-ID"))
		if err != nil || id == uuid.Nil {
			respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("missing or invalid X-User-ID header"))
			c.Abort()
			return
		}

		c.Set(userIDKey, id)
		c.Next()
	}
}

// UserID returns the authenticated caller's ID stored by Auth.
func UserID(c *ginext.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}
