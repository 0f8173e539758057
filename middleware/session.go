package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront/session"
)

// StartSession issues a session for userID and sets its cookie.
func StartSession(c *gin.Context, sessions *session.Manager, userID string) error {
	token, err := sessions.Issue(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, int(sessions.TTL().Seconds()), "/", "", sessions.SecureCookie, true)
	return nil
}

// EndSession revokes the current session, if any, and clears its cookie.
func EndSession(c *gin.Context, sessions *session.Manager) error {
	token, _ := c.Cookie(session.CookieName)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", sessions.SecureCookie, true)
	return sessions.Revoke(c.Request.Context(), token)
}
