package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pasarkita/marketplace/internal/domain"
	"github.com/pasarkita/marketplace/internal/session"
)

// CtxUserKey is where RequireSession stores the authenticated user.
const CtxUserKey = "sessionUser"

// RequireSession admits a request only when its cookie resolves to a live
// session. Anything else is diverted to the login page before any handler
// side effects can happen.
func RequireSession(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := m.Current(c.Request.Context(), c.Request)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()

			return
		}

		c.Set(CtxUserKey, user)
		c.Next()
	}
}

// CurrentUser reads the user RequireSession stored on the context.
func CurrentUser(c *gin.Context) (domain.User, bool) {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return domain.User{}, false
	}

	user, ok := v.(domain.User)

	return user, ok
}
