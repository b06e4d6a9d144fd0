package attendance

import (
	"go-sfm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.POST("", middleware.RBACAuthorize(rbacService, "attendance", "write"), h.Mark)
		attendances.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetForMonth)
	}
}
