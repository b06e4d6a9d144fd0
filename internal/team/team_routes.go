package team

import (
	"go-sfm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	teams := r.Group("/teams")
	teams.Use(middleware.AuthMiddleware())
	{
		teams.POST("", middleware.RBACAuthorize(rbacService, "teams", "write"), h.Create)
		teams.GET("", middleware.RBACAuthorize(rbacService, "teams", "read"), h.ListMine)
		teams.PUT("/:id/members", middleware.RBACAuthorize(rbacService, "teams", "write"), h.UpdateMembers)
		teams.DELETE("/:id", middleware.RBACAuthorize(rbacService, "teams", "write"), h.Delete)
	}
}
