package dashboard

import (
	"go-sfm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.GET("/team-summary", middleware.RBACAuthorize(rbacService, "reports", "read"), h.TeamSummary)
	}
}
