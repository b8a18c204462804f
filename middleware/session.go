package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "norvila_session"

// SessionMiddleware assigns an anonymous session id cookie. The cart store
// and language preference are keyed by it; signed-in users keep the same
// session id so their cart survives login.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			// 30 days, lax, not readable from scripts.
			c.SetCookie(sessionCookie, sessionID, 30*24*3600, "/", "", false, true)
		}
		c.Set("sessionID", sessionID)
		c.Next()
	}
}

// GetSessionID returns the session id set by SessionMiddleware.
func GetSessionID(c *gin.Context) string {
	if id, exists := c.Get("sessionID"); exists {
		return id.(string)
	}
	return ""
}
