package target

import (
	"go-sfm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	targets := r.Group("/targets")
	targets.Use(middleware.AuthMiddleware())
	{
		targets.POST("", middleware.RBACAuthorize(rbacService, "targets", "write"), h.Set)
		targets.GET("/team", middleware.RBACAuthorize(rbacService, "targets", "write"), h.TeamTargets)
		targets.GET("/my", middleware.RBACAuthorize(rbacService, "targets", "read"), h.MyTargets)
		targets.PUT("/:id", middleware.RBACAuthorize(rbacService, "targets", "write"), h.Update)
		targets.DELETE("/:id", middleware.RBACAuthorize(rbacService, "targets", "write"), h.Delete)
	}
}
