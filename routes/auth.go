package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/feohuman/squishcart/auth"
)

// SetupAuthRoutes registers the public credential endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	r.POST("/register", auth.RegisterHandler(deps.DB))
	r.POST("/login", auth.LoginHandler(deps.DB))
}
