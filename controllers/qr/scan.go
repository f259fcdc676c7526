package qrcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	basketControllers "github.com/feohuman/squishcart/controllers/basket"
	"github.com/feohuman/squishcart/ledger"
	"github.com/feohuman/squishcart/models"
)

type ScanInput struct {
	// Data is the decoded QR payload from the client-side scanner.
	Data     string `json:"data" binding:"required"`
	Quantity int    `json:"quantity"`
}

// ScanProduct resolves a scanned QR payload to a catalog product and drops it
// into the caller's basket.
// POST /user/scan
func ScanProduct(db *gorm.DB, svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		basket, ok := basketControllers.UserBasket(db, c)
		if !ok {
			return
		}

		var input ScanInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		quantity := input.Quantity
		if quantity == 0 {
			quantity = 1
		}

		name, expiration, err := ParsePayload(input.Data)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var product models.Product
		if err := db.Where("name = ? AND expiration_date = ?", name, expiration).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Scanned product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up product"})
			return
		}

		item, err := svc.AddItem(basket.ID, product.ID, quantity)
		if err != nil {
			basketControllers.RespondLedgerError(c, err)
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}
