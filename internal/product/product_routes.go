package product

import (
	"go-sfm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	products := r.Group("/products")
	products.Use(middleware.AuthMiddleware())
	{
		products.GET("", middleware.RBACAuthorize(rbacService, "products", "read"), h.GetOptions)
		products.GET("/:id", middleware.RBACAuthorize(rbacService, "products", "read"), h.GetByID)
		products.POST("", middleware.RBACAuthorize(rbacService, "products", "write"), h.Create)
		products.PUT("/:id", middleware.RBACAuthorize(rbacService, "products", "write"), h.Update)
		products.DELETE("/:id", middleware.RBACAuthorize(rbacService, "products", "write"), h.Delete)
	}
}
