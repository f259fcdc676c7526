package basketControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feohuman/squishcart/ledger"
)

type BasketItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// POST /user/basket/items
func AddBasketItem(db *gorm.DB, svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		basket, ok := UserBasket(db, c)
		if !ok {
			return
		}

		var input BasketItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := svc.AddItem(basket.ID, input.ProductID, input.Quantity)
		if err != nil {
			RespondLedgerError(c, err)
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// PUT /user/basket/items/:item_id/remove/:quantity
func RemoveBasketItem(db *gorm.DB, svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		basket, ok := UserBasket(db, c)
		if !ok {
			return
		}

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item_id"})
			return
		}
		quantity, err := strconv.Atoi(c.Param("quantity"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}

		item, err := svc.RemoveItem(basket.ID, uint(itemID), quantity)
		if err != nil {
			RespondLedgerError(c, err)
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/basket/items/:item_id
func DeleteBasketItem(db *gorm.DB, svc *ledger.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		basket, ok := UserBasket(db, c)
		if !ok {
			return
		}

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item_id"})
			return
		}

		if err := svc.DeleteItem(basket.ID, uint(itemID)); err != nil {
			RespondLedgerError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
	}
}
