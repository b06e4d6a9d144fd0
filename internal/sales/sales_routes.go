package sales

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"go-sfm/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	salesGroup := r.Group("/sales")
	salesGroup.Use(middleware.AuthMiddleware())
	{
		// Record is retried by flaky mobile clients; the idempotency key
		// keeps a double-submit from double-counting.
		salesGroup.POST("",
			middleware.RBACAuthorize(rbacService, "sales", "write"),
			middleware.Idempotency(rdb),
			h.Record,
		)
		salesGroup.GET("/my-sales", middleware.RBACAuthorize(rbacService, "sales", "read"), h.MySales)
		salesGroup.GET("/team-sales", middleware.RBACAuthorize(rbacService, "sales", "read"), h.TeamSales)
	}
}
