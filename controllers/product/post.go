package productcontroller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feohuman/squishcart/models"
)

type ProductInput struct {
	Name           string  `json:"name" binding:"required"`
	Price          float64 `json:"price" binding:"min=0"`
	Stock          int     `json:"stock" binding:"min=0"`
	Category       string  `json:"category"`
	ExpirationDate string  `json:"expiration_date" binding:"required"` // YYYY-MM-DD
}

func parseExpiration(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// CreateProduct registers a new catalog entry. A product is identified by its
// (name, expiration_date) pair; duplicates are rejected.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		expiration, err := parseExpiration(input.ExpirationDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expiration_date, expected YYYY-MM-DD"})
			return
		}

		var existing models.Product
		err = db.Where("name = ? AND expiration_date = ?", input.Name, expiration).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product already registered"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check product"})
			return
		}

		product := models.Product{
			Name:           input.Name,
			Price:          input.Price,
			Stock:          input.Stock,
			Category:       input.Category,
			ExpirationDate: expiration,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
