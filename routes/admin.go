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

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(deps.DB))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(deps.DB))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(deps.DB))
			productAdmin.GET("", productcontroller.GetProducts(deps.DB))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(deps.DB))
			productAdmin.PUT("/:id/stock/increase", productcontroller.IncreaseStock(deps.Ledger))
			productAdmin.PUT("/:id/stock/decrease", productcontroller.DecreaseStock(deps.Ledger))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(deps.DB))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.DB))
		}

		// ─────────── QR Codes ───────────
		qrAdmin := adminGroup.Group("/qr")
		{
			qrAdmin.POST("/:product_id", qrcontroller.GenerateProductQR(deps.DB, deps.QRUploadDir, deps.PublicBaseURL))
			qrAdmin.GET("", qrcontroller.ListQRFiles(deps.DB))
			qrAdmin.DELETE("/:id", qrcontroller.DeleteQRFile(deps.DB, deps.QRUploadDir))
		}

		// ─────────── Recipes & Recommendations ───────────
		adminGroup.GET("/recipes", recommendController.GetRecipes(deps.Docs))
		adminGroup.POST("/recommendations/refresh", recommendController.RefreshRecommendations(deps.Refresher))

		// ─────────── Basket Inspection ───────────
		adminGroup.GET("/user-basket/:user_id", basketControllers.GetAdminUserBasket(deps.DB))
	}
}
