package productcontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront/repository"
	"github.com/junaidrashid-git/storefront/services"
)

type UpdateProductInput struct {
	ProductName *string  `json:"productName"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Rating      *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	ImgSrc      *string  `json:"imgSrc"`
}

// UpdateProduct changes the given fields of an existing product. Reviews are
// left alone.
//
// PUT /admin/products/:id
func UpdateProduct(catalog *services.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := catalog.GetProduct(c.Request.Context(), c.Param("id"))
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			log.Printf("❌ Failed to load product: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.ProductName != nil && *input.ProductName != "" {
			product.ProductName = *input.ProductName
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Rating != nil {
			product.Rating = *input.Rating
		}
		if input.ImgSrc != nil {
			product.ImgSrc = *input.ImgSrc
		}

		if err := catalog.SaveProduct(c.Request.Context(), product); err != nil {
			log.Printf("❌ Failed to update product: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
