package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ethuang3393/MyVibeSaaS/handlers"
)

// AuthRequired guards the authenticated routes. A missing or invalid
// session cookie sends the browser back to the login page; valid
// sessions have their identity injected into the request context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("vibesaas_jwt")
		if err != nil || tokenString == "" {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		session, err := handlers.ParseSessionToken(tokenString)
		if err != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set("userID", session.UserID)
		c.Set("userName", session.UserName)
		c.Set("tier", session.Tier)
		c.Next()
	}
}
