package productcontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront/middleware"
	"github.com/junaidrashid-git/storefront/repository"
	"github.com/junaidrashid-git/storefront/services"
)

// POST /productDetails
func ProductDetails(catalog *services.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		details, err := catalog.ProductDetails(c.Request.Context(), c.PostForm("prodID"))
		if err != nil {
			logLookup(err, c.PostForm("prodID"))
			c.Redirect(http.StatusFound, "/")
			return
		}

		data := gin.H{
			"product":    details.Product,
			"reviewList": details.Product.Reviews,
			"avgRating":  details.AverageRating,
			"countItems": details.RatedReviews,
		}

		if user, ok := middleware.CurrentUser(c); ok {
			data["person"] = user.Profile.Name
			c.HTML(http.StatusOK, "productDetails.html", data)
			return
		}
		c.HTML(http.StatusOK, "productDetailsTwo.html", data)
	}
}

// POST /buyNow
func BuyNow(catalog *services.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		product, err := catalog.GetProduct(c.Request.Context(), c.PostForm("prodID"))
		if err != nil {
			logLookup(err, c.PostForm("prodID"))
			c.Redirect(http.StatusFound, "/")
			return
		}

		c.HTML(http.StatusOK, "buyNow.html", gin.H{
			"person":  user,
			"product": product,
		})
	}
}

func logLookup(err error, productID string) {
	if errors.Is(err, repository.ErrNotFound) {
		log.Printf("❌ Product %q not found", productID)
		return
	}
	log.Printf("❌ Failed to load product %q: %v", productID, err)
}
