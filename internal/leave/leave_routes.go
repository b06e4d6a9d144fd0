package leave

import (
	"go-sfm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.POST("/apply", middleware.RBACAuthorize(rbacService, "leaves", "apply"), h.Apply)
		leaves.GET("/my-history", middleware.RBACAuthorize(rbacService, "leaves", "read"), h.MyHistory)
		leaves.GET("/team-requests", middleware.RBACAuthorize(rbacService, "leaves", "decide"), h.TeamRequests)
		leaves.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "leaves", "decide"), h.UpdateStatus)
	}
}
