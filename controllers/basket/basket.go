package basketControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feohuman/squishcart/ledger"
	"github.com/feohuman/squishcart/models"
)

// UserBasket resolves the authenticated user's basket, writing the error
// response itself when that fails.
func UserBasket(db *gorm.DB, c *gin.Context) (*models.Basket, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	userID := userIDVal.(uint)

	var basket models.Basket
	if err := db.Where("user_id = ?", userID).First(&basket).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User basket not found"})
		return nil, false
	}
	return &basket, true
}

// RespondLedgerError translates ledger sentinel errors to HTTP statuses.
func RespondLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough stock available"})
	case errors.Is(err, ledger.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
	case errors.Is(err, ledger.ErrEmptyBasket):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Basket is empty"})
	case errors.Is(err, ledger.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}

// GET /user/basket
func GetUserBasket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		basket, ok := UserBasket(db, c)
		if !ok {
			return
		}

		if err := db.Preload("Items").First(basket, basket.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch basket"})
			return
		}

		c.JSON(http.StatusOK, basket)
	}
}

// DELETE /user/basket
// Clearing goes through the ledger line by line so every unit returns to
// product stock.
func ClearUserBasket(db *gorm.DB, svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		basket, ok := UserBasket(db, c)
		if !ok {
			return
		}

		var items []models.BasketItem
		if err := db.Where("basket_id = ?", basket.ID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch basket items"})
			return
		}

		for _, item := range items {
			if err := svc.DeleteItem(basket.ID, item.ID); err != nil {
				RespondLedgerError(c, err)
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Basket cleared"})
	}
}

// GET /admin/user-basket/:user_id
func GetAdminUserBasket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
			return
		}

		var basket models.Basket
		if err := db.Preload("Items").Where("user_id = ?", uint(userID)).First(&basket).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User basket not found"})
			return
		}

		c.JSON(http.StatusOK, basket)
	}
}
