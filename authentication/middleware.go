package authentication

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "session"

// IdentityKey is where the middleware stores the authenticated username.
const IdentityKey = "username"

// RequirePage gates HTML routes: anonymous requests are redirected to the
// login page before any other component runs.
func RequirePage(auth *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		sess, err := auth.Authorize(c.Request.Context(), token)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(IdentityKey, sess.Username)
		c.Next()
	}
}

// RequireJSON gates API routes with a 401 body instead of a redirect.
func RequireJSON(auth *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized"})
			return
		}

		sess, err := auth.Authorize(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized"})
			return
		}

		c.Set(IdentityKey, sess.Username)
		c.Next()
	}
}
