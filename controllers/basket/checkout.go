package basketControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feohuman/squishcart/ledger"
	"github.com/feohuman/squishcart/models"
	"github.com/feohuman/squishcart/recommend"
	"github.com/feohuman/squishcart/store"
)

// POST /user/basket/checkout
// Empties the basket into the purchase history, then reranks the recipe
// recommendations against the grown history.
func Checkout(db *gorm.DB, svc *ledger.Service, docs *store.JSONStore, refresher *recommend.Refresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		basket, ok := UserBasket(db, c)
		if !ok {
			return
		}

		// History is written inside the checkout transaction: a failed
		// append rolls the basket back instead of losing the purchase.
		entries, ref, err := svc.Checkout(basket.ID, docs.AppendHistory)
		if err != nil {
			RespondLedgerError(c, err)
			return
		}

		recommendations, err := refresher.Refresh()
		if err != nil {
			// The purchase itself went through; surface stale recommendations
			// rather than failing the checkout.
			log.Printf("⚠️ Recommendation refresh failed after checkout %s: %v", ref, err)
			recommendations = nil
		}

		broadcastCheckout(CheckoutEvent{
			Reference: ref,
			UserID:    basket.UserID,
			Entries:   entries,
		})

		c.JSON(http.StatusOK, gin.H{
			"message":         "Checkout complete",
			"reference":       ref,
			"entries":         entries,
			"recommendations": recommendations,
		})
	}
}

// CheckoutEvent is what the websocket feed broadcasts after each completed
// checkout.
type CheckoutEvent struct {
	Reference string                 `json:"reference"`
	UserID    uint                   `json:"user_id"`
	Entries   []models.PurchaseEntry `json:"entries"`
}
