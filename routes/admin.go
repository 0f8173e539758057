package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/junaidrashid-git/storefront/controllers/product"
	userControllers "github.com/junaidrashid-git/storefront/controllers/user"
	"github.com/junaidrashid-git/storefront/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, d *Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(d.AdminAPIKey))
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(d.Accounts))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(d.Catalog))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(d.Catalog))
			productAdmin.GET("", productcontroller.GetProducts(d.Catalog))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(d.Catalog))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(d.Catalog))
		}

		// ─────────── Live order feed ───────────
		if d.Orders != nil {
			adminGroup.GET("/ws/orders", d.Orders.OrderWebSocketHandler)
		}
	}
}
