package routes

import (
	"github.com/gin-gonic/gin"

	basketControllers "github.com/feohuman/squishcart/controllers/basket"
	productcontroller "github.com/feohuman/squishcart/controllers/product"
	qrcontroller "github.com/feohuman/squishcart/controllers/qr"
	recommendController "github.com/feohuman/squishcart/controllers/recommend"
	userControllers "github.com/feohuman/squishcart/controllers/user"
	"github.com/feohuman/squishcart/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(deps.DB))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(deps.DB)) // PUT /user/

		// ──────────────── Basket ────────────────
		basketGroup := userGroup.Group("/basket")
		{
			basketGroup.GET("/", basketControllers.GetUserBasket(deps.DB))
			basketGroup.DELETE("/", basketControllers.ClearUserBasket(deps.DB, deps.Ledger))
			basketGroup.POST("/items", basketControllers.AddBasketItem(deps.DB, deps.Ledger))
			basketGroup.PUT("/items/:item_id/remove/:quantity", basketControllers.RemoveBasketItem(deps.DB, deps.Ledger))
			basketGroup.DELETE("/items/:item_id", basketControllers.DeleteBasketItem(deps.DB, deps.Ledger))
			basketGroup.POST("/checkout", basketControllers.Checkout(deps.DB, deps.Ledger, deps.Docs, deps.Refresher))
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productcontroller.GetProducts(deps.DB))
		userGroup.GET("/products/:id", productcontroller.GetProductByID(deps.DB))

		// ──────────────── QR Scanner ────────────────
		userGroup.POST("/scan", qrcontroller.ScanProduct(deps.DB, deps.Ledger))

		// ──────────────── Recommendations ────────────────
		userGroup.GET("/recommendations", recommendController.GetRecommendations(deps.Docs))
	}
}
