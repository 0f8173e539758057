package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront/auth"
	orderControllers "github.com/junaidrashid-git/storefront/controllers/order"
	"github.com/junaidrashid-git/storefront/models"
	"github.com/junaidrashid-git/storefront/repository"
	"github.com/junaidrashid-git/storefront/services"
	"github.com/junaidrashid-git/storefront/session"
)

// Deps is everything the handlers need.
type Deps struct {
	Store     repository.Store
	Accounts  *services.Accounts
	Catalog   *services.Catalog
	Shop      *services.Shop
	Reviews   *services.Reviews
	Sessions  *session.Manager
	Providers []auth.Provider
	Orders    *orderControllers.Hub

	AdminAPIKey string
}

// ProviderNames lists the enabled login providers, for the login page links.
func (d *Deps) ProviderNames() []models.Provider {
	names := make([]models.Provider, 0, len(d.Providers))
	for _, p := range d.Providers {
		names = append(names, p.Name())
	}
	return names
}

// SetupRoutes is the single entry point that wires up the storefront, auth and admin route groups.
func SetupRoutes(r *gin.Engine, d *Deps) {
	// 1️⃣ Login flows (no session needed)
	SetupAuthRoutes(r, d)

	// 2️⃣ Storefront pages (session-aware)
	SetupUserRoutes(r, d)

	// 3️⃣ Admin routes (API-Key-protected)
	SetupAdminRoutes(r, d)
}
