package app

import (
	"database/sql"

	"go-sfm/internal/attendance"
	"go-sfm/internal/auth"
	"go-sfm/internal/dashboard"
	"go-sfm/internal/leave"
	"go-sfm/internal/messaging/kafka"
	"go-sfm/internal/notification"
	"go-sfm/internal/product"
	"go-sfm/internal/rbac"
	"go-sfm/internal/report"
	"go-sfm/internal/sales"
	"go-sfm/internal/shared/counter"
	"go-sfm/internal/target"
	"go-sfm/internal/team"
	"go-sfm/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	teamRepo := team.NewRepository(gormDB)
	productRepo := product.NewRepository(gormDB)
	targetRepo := target.NewRepository(gormDB)
	salesRepo := sales.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	counterRepo := counter.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo)
	teamService := team.NewService(teamRepo, userRepo)
	productService := product.NewService(productRepo, rdb)
	attendanceService := attendance.NewService(attendanceRepo)
	notificationService := notification.NewService(db, notificationRepo, outboxRepo)
	salesService := sales.NewService(salesRepo, userRepo, productRepo, teamRepo, counterRepo)
	targetService := target.NewService(targetRepo, userRepo, salesService)
	leaveService := leave.NewService(db, leaveRepo, userRepo, attendanceService, notificationService)
	reportService := report.NewService(salesService)
	dashboardService := dashboard.NewService(userRepo, salesService, targetRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	teamHandler := team.NewHandler(teamService)
	productHandler := product.NewHandler(productService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	notificationHandler := notification.NewHandler(notificationService)
	salesHandler := sales.NewHandlerWithRedis(salesService, rdb)
	targetHandler := target.NewHandler(targetService)
	leaveHandler := leave.NewHandler(leaveService)
	reportHandler := report.NewHandler(reportService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler, rbacService)
		team.RegisterRoutes(api, teamHandler, rbacService)
		product.RegisterRoutes(api, productHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		notification.RegisterRoutes(api, notificationHandler, rbacService)
		sales.RegisterRoutes(api, salesHandler, rbacService, rdb)
		target.RegisterRoutes(api, targetHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		report.RegisterRoutes(api, reportHandler, rbacService)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService)
	}

	return nil
}
