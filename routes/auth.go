package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront/auth"
)

// SetupAuthRoutes registers the OAuth redirect and callback pair for every
// configured provider.
func SetupAuthRoutes(r *gin.Engine, d *Deps) {
	authGroup := r.Group("/auth")
	for _, p := range d.Providers {
		name := string(p.Name())
		authGroup.GET("/"+name, auth.Begin(p))
		authGroup.GET("/"+name+"/userPage", auth.Callback(p, d.Accounts, d.Sessions))
	}
}
