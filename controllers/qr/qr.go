package qrcontroller

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/feohuman/squishcart/models"
)

const payloadDateFormat = "2006-01-02"

// Payload is what gets encoded into a product's QR code and what the scan
// endpoint expects back: name, unit price and expiration date, one per line.
func Payload(p models.Product) string {
	return p.Name + "\n" +
		strconv.FormatFloat(p.Price, 'f', -1, 64) + "\n" +
		p.ExpirationDate.Format(payloadDateFormat)
}

// ParsePayload extracts the product name and expiration date from a decoded
// QR payload. The price line is informational and ignored on the way in.
func ParsePayload(data string) (string, time.Time, error) {
	lines := strings.Split(strings.TrimSpace(data), "\n")
	if len(lines) < 3 {
		return "", time.Time{}, fmt.Errorf("malformed QR payload: expected 3 lines, got %d", len(lines))
	}
	name := strings.TrimSpace(lines[0])
	if name == "" {
		return "", time.Time{}, fmt.Errorf("malformed QR payload: empty product name")
	}
	expiration, err := time.Parse(payloadDateFormat, strings.TrimSpace(lines[2]))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("malformed QR payload: %w", err)
	}
	return name, expiration, nil
}

// GenerateProductQR renders a product's QR PNG into the upload directory and
// records it, returning the public URL.
// POST /admin/qr/:product_id
func GenerateProductQR(db *gorm.DB, uploadDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		// Sanitize filename: remove any special chars
		re := regexp.MustCompile(`[^\w\d\-_\.]`)
		cleanName := re.ReplaceAllString(product.Name, "_")
		filename := fmt.Sprintf("%d_%s.png", time.Now().Unix(), cleanName)

		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to create upload folder: %v", err),
			})
			return
		}

		savePath := filepath.Join(uploadDir, filename)
		if err := qrcode.WriteFile(Payload(product), qrcode.Medium, 256, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to generate QR code: %v", err),
			})
			return
		}

		fileURL := fmt.Sprintf("%s/qrfiles/%s", publicBaseURL, filename)

		qrFile, err := models.SaveQRFile(db, product.ID, filename, fileURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save QR file record"})
			return
		}

		log.Printf("🧾 QR generated for product %q -> %s", product.Name, fileURL)
		c.JSON(http.StatusCreated, qrFile)
	}
}

// GET /admin/qr
func ListQRFiles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		files, err := models.GetAllQRFiles(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch QR files"})
			return
		}
		c.JSON(http.StatusOK, files)
	}
}
