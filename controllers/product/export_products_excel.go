package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/junaidrashid-git/storefront/services"
)

// GET /admin/products/export-excel
func ExportProductsToExcel(catalog *services.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListProducts(c.Request.Context())
		if err != nil {
			log.Printf("❌ Failed to list products: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headerRow := sheet.AddRow()
		for _, h := range append(productColumns, "Reviews", "AverageRating", "CreatedAt") {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for i := range products {
			p := &products[i]
			avg, _ := services.ComputeAverageRating(p)

			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.ProductName)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.ImgSrc)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(len(p.Reviews))
			row.AddCell().SetValue(avg)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			log.Printf("❌ Failed to write Excel file: %v", err)
		}
	}
}
