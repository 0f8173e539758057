package productcontroller

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/junaidrashid-git/storefront/models"
	"github.com/junaidrashid-git/storefront/repository"
	"github.com/junaidrashid-git/storefront/services"
)

// productColumns is the export layout. Import finds these columns by header
// name, so their order in an uploaded sheet does not matter.
var productColumns = []string{"ID", "ProductName", "Price", "Rating", "ImgSrc", "Description"}

// importRow is one parsed spreadsheet row.
type importRow struct {
	ID          string
	ProductName string
	Price       float64
	Rating      float64
	ImgSrc      string
	Description string
}

// columnIndex maps the header cells to their positions.
func columnIndex(header *xlsx.Row) map[string]int {
	index := make(map[string]int, len(productColumns))
	if header == nil {
		return index
	}
	for i, cell := range header.Cells {
		name := strings.TrimSpace(cell.String())
		for _, col := range productColumns {
			if strings.EqualFold(name, col) {
				if _, seen := index[col]; !seen {
					index[col] = i
				}
			}
		}
	}
	return index
}

// parseImportRow applies the same rules as the JSON create endpoint: a name,
// a finite non-negative price and, when present, a finite rating in 0..5.
func parseImportRow(get func(col string) string) (importRow, bool) {
	row := importRow{
		ID:          get("ID"),
		ProductName: get("ProductName"),
		ImgSrc:      get("ImgSrc"),
		Description: get("Description"),
	}
	if row.ProductName == "" {
		return row, false
	}

	price, err := strconv.ParseFloat(get("Price"), 64)
	if err != nil || !finite(price) || price < 0 {
		return row, false
	}
	row.Price = price

	if raw := get("Rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || !finite(rating) || rating < 0 || rating > 5 {
			return row, false
		}
		row.Rating = rating
	}
	return row, true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// POST /admin/products/import-excel
func ImportProductsFromExcel(catalog *services.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		columns := columnIndex(sheet.Rows[0])
		for _, required := range []string{"ProductName", "Price"} {
			if _, ok := columns[required]; !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is missing the " + required + " column"})
				return
			}
		}

		ctx := c.Request.Context()
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < len(sheet.Rows); i++ {
			row := sheet.Rows[i]

			get := func(col string) string {
				index, ok := columns[col]
				if ok && row != nil && index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			parsed, ok := parseImportRow(get)
			if !ok {
				skippedCount++
				continue
			}
			idStr := parsed.ID

			if idStr != "" {
				existing, err := catalog.GetProduct(ctx, idStr)
				if err == nil {
					existing.ProductName = parsed.ProductName
					existing.Price = parsed.Price
					existing.Rating = parsed.Rating
					existing.ImgSrc = parsed.ImgSrc
					existing.Description = parsed.Description
					if err := catalog.SaveProduct(ctx, existing); err == nil {
						updatedCount++
					} else {
						log.Printf("❌ Failed to update product %s: %v", idStr, err)
						skippedCount++
					}
					continue
				}
				if !errors.Is(err, repository.ErrNotFound) {
					log.Printf("❌ Failed to load product %s: %v", idStr, err)
					skippedCount++
					continue
				}
			}

			// Insert new product
			product := models.Product{
				ProductName: parsed.ProductName,
				Price:       parsed.Price,
				Rating:      parsed.Rating,
				ImgSrc:      parsed.ImgSrc,
				Description: parsed.Description,
			}
			if err := catalog.CreateProduct(ctx, &product); err == nil {
				createdCount++
			} else {
				log.Printf("❌ Failed to create product %q: %v", parsed.ProductName, err)
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
