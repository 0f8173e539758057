package productcontroller

import (
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront/middleware"
	"github.com/junaidrashid-git/storefront/models"
	"github.com/junaidrashid-git/storefront/services"
)

// featuredCount is how many products the signed-in landing page highlights.
const featuredCount = 4

// GET /
func Home(catalog *services.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := catalog.ListProducts(c.Request.Context())
		if err != nil {
			log.Printf("❌ Failed to list products: %v", err)
			c.String(http.StatusServiceUnavailable, "Service unavailable")
			return
		}

		if user, ok := middleware.CurrentUser(c); ok {
			c.HTML(http.StatusOK, "userHome.html", gin.H{
				"person": user.Profile.Name,
				"items":  items,
			})
			return
		}
		c.HTML(http.StatusOK, "Home.html", gin.H{"items": items})
	}
}

// GET /userPage
func UserPage(catalog *services.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		items, err := catalog.ListProducts(c.Request.Context())
		if err != nil {
			log.Printf("❌ Failed to list products: %v", err)
			c.Redirect(http.StatusFound, "/")
			return
		}

		c.HTML(http.StatusOK, "userPage.html", gin.H{
			"person": user.Profile.Name,
			"items":  items,
			"count":  featuredCount,
		})
	}
}

// GET /admin/products
func GetProducts(catalog *services.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := strings.ToLower(c.Query("search"))
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		minPrice, maxPrice := -1.0, -1.0
		if minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			minPrice = mp
		}
		if maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			maxPrice = mp
		}

		less, ok := productOrder[sortBy]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_by"})
			return
		}

		products, err := catalog.ListProducts(c.Request.Context())
		if err != nil {
			log.Printf("❌ Failed to list products: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if search != "" &&
				!strings.Contains(strings.ToLower(p.ProductName), search) &&
				!strings.Contains(strings.ToLower(p.Description), search) {
				continue
			}
			if minPrice >= 0 && p.Price < minPrice {
				continue
			}
			if maxPrice >= 0 && p.Price > maxPrice {
				continue
			}
			filtered = append(filtered, p)
		}

		sort.SliceStable(filtered, func(i, j int) bool {
			if sortOrder == "asc" {
				return less(filtered[i], filtered[j])
			}
			return less(filtered[j], filtered[i])
		})

		c.JSON(http.StatusOK, gin.H{
			"products": filtered,
			"total":    len(filtered),
		})
	}
}

var productOrder = map[string]func(a, b models.Product) bool{
	"created_at": func(a, b models.Product) bool { return a.CreatedAt.Before(b.CreatedAt) },
	"price":      func(a, b models.Product) bool { return a.Price < b.Price },
	"rating":     func(a, b models.Product) bool { return a.Rating < b.Rating },
	"name":       func(a, b models.Product) bool { return a.ProductName < b.ProductName },
}
