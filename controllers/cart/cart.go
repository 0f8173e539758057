package cartControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront/middleware"
	"github.com/junaidrashid-git/storefront/repository"
	"github.com/junaidrashid-git/storefront/services"
)

// POST /wishList, POST /userCart
func AddToList(shop *services.Shop, list services.ListName) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		productID := c.PostForm("prodID")

		if err := shop.AddToList(c.Request.Context(), list, user, productID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				log.Printf("❌ Cannot add unknown product %q to %s", productID, list)
			} else {
				log.Printf("❌ Failed to update %s: %v", list, err)
			}
			c.Redirect(http.StatusFound, "/")
			return
		}

		c.Redirect(http.StatusFound, "/userPage")
	}
}

// POST /removeProductFromList, POST /removeProductFromCart
func RemoveFromList(shop *services.Shop, list services.ListName, next string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		if err := shop.RemoveFromList(c.Request.Context(), list, user, c.PostForm("prodID")); err != nil {
			log.Printf("❌ Failed to update %s: %v", list, err)
			c.Redirect(http.StatusFound, "/")
			return
		}

		c.Redirect(http.StatusFound, next)
	}
}

// GET /wishList
func WishList(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.HTML(http.StatusOK, "wishList.html", gin.H{
		"list":   user.WishList,
		"person": user.Profile.Name,
		"count":  len(user.WishList),
	})
}

// GET /userCart
func UserCart(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.HTML(http.StatusOK, "userCart.html", gin.H{
		"list":   user.Cart,
		"person": user.Profile.Name,
		"sum":    services.CartTotal(user.Cart),
	})
}

// GET /placeOrder
func PlaceOrder(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.HTML(http.StatusOK, "placeOrder.html", gin.H{
		"list":      user.Cart,
		"person":    user.Profile.Name,
		"sum":       services.CartTotal(user.Cart),
		"foundUser": user,
	})
}
