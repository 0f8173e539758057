package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/junaidrashid-git/storefront/controllers/cart"
	healthControllers "github.com/junaidrashid-git/storefront/controllers/health"
	orderControllers "github.com/junaidrashid-git/storefront/controllers/order"
	productcontroller "github.com/junaidrashid-git/storefront/controllers/product"
	userControllers "github.com/junaidrashid-git/storefront/controllers/user"
	"github.com/junaidrashid-git/storefront/middleware"
	"github.com/junaidrashid-git/storefront/services"
)

// SetupUserRoutes registers the storefront pages. Pages behind RequireUser
// answer anonymous visitors with the login form.
func SetupUserRoutes(r *gin.Engine, d *Deps) {
	r.GET("/healthz", healthControllers.Healthz(d.Store))

	site := r.Group("/")
	site.Use(middleware.LoadSession(d.Sessions))
	{
		// ──────────────── Public ────────────────
		site.GET("/login", userControllers.Page("login.html"))
		site.GET("/register", userControllers.Page("register.html"))
		site.GET("/workInProgress", userControllers.Page("workInProgress.html"))
		site.POST("/register", userControllers.Register(d.Accounts, d.Sessions))
		site.POST("/login", userControllers.Login(d.Accounts, d.Sessions))
		site.GET("/logout", userControllers.Logout(d.Sessions))

		// ──────────────── Browse (session optional) ────────────────
		browse := site.Group("/")
		browse.Use(middleware.OptionalUser(d.Accounts))
		{
			browse.GET("/", productcontroller.Home(d.Catalog))
			browse.POST("/productDetails", productcontroller.ProductDetails(d.Catalog))
		}

		// ──────────────── Signed-in user ────────────────
		user := site.Group("/")
		user.Use(middleware.RequireUser(d.Accounts))
		{
			user.GET("/userPage", productcontroller.UserPage(d.Catalog))
			user.POST("/buyNow", productcontroller.BuyNow(d.Catalog))
			user.POST("/postReview", productcontroller.PostReview(d.Reviews))

			user.GET("/address", userControllers.Address)
			user.POST("/address", userControllers.UpdateAddress(d.Shop))

			user.GET("/wishList", cartControllers.WishList)
			user.POST("/wishList", cartControllers.AddToList(d.Shop, services.WishList))
			user.POST("/removeProductFromList", cartControllers.RemoveFromList(d.Shop, services.WishList, "/wishList"))

			user.GET("/userCart", cartControllers.UserCart)
			user.POST("/userCart", cartControllers.AddToList(d.Shop, services.Cart))
			user.POST("/removeProductFromCart", cartControllers.RemoveFromList(d.Shop, services.Cart, "/userCart"))

			user.GET("/placeOrder", cartControllers.PlaceOrder)
			user.POST("/orderPayment", orderControllers.OrderPayment(d.Shop))
			user.POST("/orderPaymentFromCart", orderControllers.OrderPaymentFromCart(d.Shop))
			user.GET("/myOrders", orderControllers.MyOrders)
			user.GET("/thankYou", orderControllers.ThankYou)
		}
	}
}
