package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feohuman/squishcart/ledger"
	"github.com/feohuman/squishcart/models"
)

type StockInput struct {
	Stock int `json:"stock" binding:"required,min=1"`
}

// PUT /admin/products/:id/stock/increase
func IncreaseStock(svc *ledger.Service) gin.HandlerFunc {
	return stockHandler(svc.IncreaseStock)
}

// PUT /admin/products/:id/stock/decrease
func DecreaseStock(svc *ledger.Service) gin.HandlerFunc {
	return stockHandler(svc.DecreaseStock)
}

func stockHandler(adjust func(productID uint, amount int) (*models.Product, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input StockInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := adjust(uint(id), input.Stock)
		if err != nil {
			switch {
			case errors.Is(err, ledger.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			case errors.Is(err, ledger.ErrInsufficientStock):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough stock available"})
			case errors.Is(err, ledger.ErrInvalidQuantity):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock amount"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust stock"})
			}
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
