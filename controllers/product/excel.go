package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/feohuman/squishcart/models"
)

// ImportProductsFromExcel bulk-creates or updates catalog entries from a
// spreadsheet with the same columns ExportProductsToExcel emits. Rows are
// matched on the (name, expiration_date) pair.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			name := get(1)
			price, err1 := strconv.ParseFloat(get(2), 64)
			stock, err2 := strconv.Atoi(get(3))
			category := get(4)
			expiration, err3 := parseExpiration(get(5))

			if name == "" || err1 != nil || err2 != nil || err3 != nil || price < 0 || stock < 0 {
				skippedCount++
				continue
			}

			var product models.Product
			err := db.Where("name = ? AND expiration_date = ?", name, expiration).First(&product).Error
			if err == gorm.ErrRecordNotFound {
				product = models.Product{
					Name:           name,
					Price:          price,
					Stock:          stock,
					Category:       category,
					ExpirationDate: expiration,
				}
				if err := db.Create(&product).Error; err != nil {
					skippedCount++
					continue
				}
				createdCount++
				continue
			}
			if err != nil {
				skippedCount++
				continue
			}

			product.Price = price
			product.Stock = stock
			product.Category = category
			if err := db.Save(&product).Error; err != nil {
				skippedCount++
				continue
			}
			updatedCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
