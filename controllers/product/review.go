package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront/middleware"
	"github.com/junaidrashid-git/storefront/services"
)

// POST /postReview
func PostReview(reviews *services.Reviews) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		productID := c.PostForm("prodID")

		err := reviews.PostReview(c.Request.Context(), user, productID,
			c.PostForm("title"),
			services.ParseRating(c.PostForm("rating")),
			c.PostForm("summary"),
		)
		if err != nil {
			logLookup(err, productID)
		}

		c.Redirect(http.StatusFound, "/")
	}
}
