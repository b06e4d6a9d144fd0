package user

import (
	"go-sfm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/my-executives", middleware.RBACAuthorize(rbacService, "users", "read"), h.ListMyExecutives)
		users.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "users", "write"), h.SetActive)
	}
}
