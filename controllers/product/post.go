package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront/models"
	"github.com/junaidrashid-git/storefront/services"
)

type ProductInput struct {
	ProductName string   `json:"productName" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Rating      float64  `json:"rating" binding:"gte=0,lte=5"`
	ImgSrc      string   `json:"imgSrc"`
}

// POST /admin/products
func CreateProduct(catalog *services.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			ProductName: input.ProductName,
			Description: input.Description,
			Price:       *input.Price,
			Rating:      input.Rating,
			ImgSrc:      input.ImgSrc,
		}
		if err := catalog.CreateProduct(c.Request.Context(), &product); err != nil {
			log.Printf("❌ Failed to create product: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
