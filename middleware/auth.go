package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront/models"
	"github.com/junaidrashid-git/storefront/repository"
	"github.com/junaidrashid-git/storefront/services"
	"github.com/junaidrashid-git/storefront/session"
)

const (
	userIDKey = "user_id"
	userKey   = "user"
)

// LoadSession resolves the session cookie and, when it is live, stores the
// user id on the request context. It never rejects a request.
func LoadSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				log.Printf("❌ Session lookup failed: %v", err)
			}
			c.Next()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// RequireUser loads the signed-in user's document for protected routes.
// Anonymous requests get the login page instead of an error.
func RequireUser(accounts *services.Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !loadUser(c, accounts) {
			return
		}
		if _, ok := CurrentUser(c); !ok {
			c.HTML(http.StatusOK, "login.html", gin.H{})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalUser loads the user when there is one and lets anonymous requests
// through.
func OptionalUser(accounts *services.Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		if loadUser(c, accounts) {
			c.Next()
		}
	}
}

// loadUser returns false when it already answered the request.
func loadUser(c *gin.Context, accounts *services.Accounts) bool {
	userID := c.GetString(userIDKey)
	if userID == "" {
		return true
	}

	user, err := accounts.User(c.Request.Context(), userID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		// session outlived its user
		return true
	case err != nil:
		log.Println("❌ Failed to load user:", err)
		c.Redirect(http.StatusFound, "/")
		c.Abort()
		return false
	}

	c.Set(userKey, user)
	return true
}

// CurrentUser returns the user loaded for this request.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}
