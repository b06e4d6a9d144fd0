package notification

import (
	"go-sfm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", middleware.RBACAuthorize(rbacService, "notifications", "read"), h.ListMine)
		notifications.POST("/mark-read", middleware.RBACAuthorize(rbacService, "notifications", "read"), h.MarkAllRead)
	}
}
