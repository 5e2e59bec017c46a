package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/RAFA-RIKI/first-site-i-made/internal/web/flash"
)

// Session keys for the authenticated user. Absence of SessionKeyLoggedIn
// means anonymous.
const (
	SessionKeyLoggedIn = "logged_in"
	SessionKeyUserID   = "user_id"
	SessionKeyName     = "name"
	SessionKeyEmail    = "email"
)

// RequireLogin redirects unauthenticated callers to the login page with a
// flash message. Authenticated requests pass through untouched.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		loggedIn, _ := session.Get(SessionKeyLoggedIn).(bool)
		if !loggedIn {
			flash.Add(c, flash.CategoryError, "You need to log in to access this page.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUserID retrieves the authenticated user's id from the session.
func CurrentUserID(c *gin.Context) (int64, bool) {
	session := sessions.Default(c)
	id, ok := session.Get(SessionKeyUserID).(int64)
	return id, ok
}

// CurrentUserName retrieves the authenticated user's display name from the
// session, if any.
func CurrentUserName(c *gin.Context) (string, bool) {
	session := sessions.Default(c)
	name, ok := session.Get(SessionKeyName).(string)
	return name, ok && name != ""
}
