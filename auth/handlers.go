package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/junaidrashid-git/storefront/middleware"
	"github.com/junaidrashid-git/storefront/services"
	"github.com/junaidrashid-git/storefront/session"
)

const (
	stateCookie = "oauth_state"
	statePath   = "/auth"
	stateMaxAge = 600
)

// Begin sends the browser to the provider's consent page. The state value is
// kept in a short-lived cookie and checked by Callback.
func Begin(p Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := uuid.NewString()
		c.SetCookie(stateCookie, state, stateMaxAge, statePath, "", false, true)
		c.Redirect(http.StatusFound, p.AuthCodeURL(state))
	}
}

// Callback finishes the flow: identify the account, find or create its user
// and start a session. Any failure goes back to the home page.
func Callback(p Provider, accounts *services.Accounts, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := c.Cookie(stateCookie)
		c.SetCookie(stateCookie, "", -1, statePath, "", false, true)
		if err != nil || state == "" || c.Query("state") != state {
			log.Printf("❌ %s callback with invalid state", p.Name())
			c.Redirect(http.StatusFound, "/")
			return
		}
		if reason := c.Query("error"); reason != "" {
			log.Printf("❌ %s login denied: %s", p.Name(), reason)
			c.Redirect(http.StatusFound, "/")
			return
		}

		ctx := c.Request.Context()
		identity, err := p.Identify(ctx, c.Query("code"))
		if err != nil {
			log.Printf("❌ %s identify failed: %v", p.Name(), err)
			c.Redirect(http.StatusFound, "/")
			return
		}

		user, err := accounts.FederatedLogin(ctx, p.Name(), identity.ExternalID, identity.DisplayName)
		if err != nil {
			log.Printf("❌ %s login failed: %v", p.Name(), err)
			c.Redirect(http.StatusFound, "/")
			return
		}

		if err := middleware.StartSession(c, sessions, user.ID); err != nil {
			log.Printf("❌ Failed to start session: %v", err)
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.Redirect(http.StatusFound, "/userPage")
	}
}
