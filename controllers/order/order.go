package orderControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront/middleware"
	"github.com/junaidrashid-git/storefront/repository"
	"github.com/junaidrashid-git/storefront/services"
)

// POST /orderPayment
func OrderPayment(shop *services.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		if _, err := shop.PlaceOrderDirect(c.Request.Context(), user, c.PostForm("prodID")); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				log.Printf("❌ Order for unknown product %q", c.PostForm("prodID"))
			} else {
				log.Printf("❌ Failed to place order: %v", err)
			}
			c.Redirect(http.StatusFound, "/")
			return
		}

		c.Redirect(http.StatusFound, "/thankYou")
	}
}

// POST /orderPaymentFromCart
func OrderPaymentFromCart(shop *services.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		orders, err := shop.PlaceOrderFromCart(c.Request.Context(), user)
		if err != nil {
			log.Printf("❌ Failed to place cart order: %v", err)
			c.Redirect(http.StatusFound, "/")
			return
		}

		log.Printf("✅ %d orders placed for user %s", len(orders), user.ID)
		c.Redirect(http.StatusFound, "/thankYou")
	}
}

// GET /myOrders
func MyOrders(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.HTML(http.StatusOK, "myOrders.html", gin.H{
		"list":   user.Orders,
		"person": user.Profile.Name,
		"count":  len(user.Orders),
	})
}

// GET /thankYou
func ThankYou(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.HTML(http.StatusOK, "thankYou.html", gin.H{
		"person": user.Profile.Name,
	})
}
