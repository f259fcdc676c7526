package recommendController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feohuman/squishcart/recommend"
	"github.com/feohuman/squishcart/store"
)

// GET /user/recommendations
// Returns the current top-3 document as last persisted.
func GetRecommendations(docs *store.JSONStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := docs.Recommendations()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read recommendations"})
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

// GET /admin/recipes
func GetRecipes(docs *store.JSONStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := docs.Recipes()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read recipes"})
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

// POST /admin/recommendations/refresh
// Reranks against the full purchase history on demand, e.g. after editing the
// recipe catalog.
func RefreshRecommendations(refresher *recommend.Refresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		top, err := refresher.Refresh()
		if err != nil {
			if errors.Is(err, recommend.ErrInsufficientCatalog) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh recommendations"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"recipes": top})
	}
}
