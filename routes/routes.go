package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	basketControllers "github.com/feohuman/squishcart/controllers/basket"
	"github.com/feohuman/squishcart/ledger"
	"github.com/feohuman/squishcart/recommend"
	"github.com/feohuman/squishcart/store"
)

// Deps bundles the shared collaborators the route groups hand to handlers.
type Deps struct {
	DB            *gorm.DB
	Ledger        *ledger.Service
	Docs          *store.JSONStore
	Refresher     *recommend.Refresher
	QRUploadDir   string
	PublicBaseURL string
}

// SetupRoutes is the single entry‐point that wires up Auth, User, and Admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// 2️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, deps)

	// 3️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, deps)

	// websocket endpoint for real-time checkout updates
	r.GET("/ws/checkouts", basketControllers.CheckoutWebSocketHandler)
}
