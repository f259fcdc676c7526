package qrcontroller

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feohuman/squishcart/models"
)

// DeleteQRFile removes a generated QR code, both the PNG on disk and its
// database record. A file already missing from disk is not an error.
// DELETE /admin/qr/:id
func DeleteQRFile(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}

		var qrFile models.QRFile
		if err := db.First(&qrFile, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "QR file not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query QR file"})
			return
		}

		path := filepath.Join(uploadDir, qrFile.FileName)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file from disk"})
			return
		}

		if err := db.Delete(&qrFile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete QR file record"})
			return
		}

		log.Printf("🗑️ QR file deleted: %s", qrFile.FileName)
		c.JSON(http.StatusOK, gin.H{"message": "QR file deleted"})
	}
}
