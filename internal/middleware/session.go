// Package middleware provides the gin middleware for session-backed
// identity: per-request view-model hydration and the login gate.
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Mythos223/Blog-Website-Project/internal/repository"
)

// Session value keys.
const (
	SessionUsername       = "username"
	SessionWelcomeMessage = "welcomeMessage"
	SessionShowWelcome    = "showWelcome"
)

// ContextUser is the gin context key holding the *domain.UserView for the
// current request, or nothing when anonymous.
const ContextUser = "currentUser"

// CurrentUser re-derives the public user view-model on every request from
// the session username plus the stored record, so the session is never the
// sole source of display data. Any miss degrades to anonymous.
func CurrentUser(users repository.UserRepository) gin.HandlerFunc {
	if users == nil {
		panic("UserRepository cannot be nil for CurrentUser middleware")
	}

	return func(c *gin.Context) {
		session := sessions.Default(c)
		username, _ := session.Get(SessionUsername).(string)
		if username == "" {
			c.Next()
			return
		}

		user, err := users.FindByUsername(c.Request.Context(), username)
		if err != nil {
			// Stale session or storage trouble; treat as anonymous.
			logrus.WithError(err).WithField("username", username).
				Warn("CurrentUser middleware: session user not resolvable")
			c.Next()
			return
		}

		c.Set(ContextUser, user.View())
		c.Next()
	}
}

// RequireAuth redirects anonymous requests to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if username, _ := session.Get(SessionUsername).(string); username == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
