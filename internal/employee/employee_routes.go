package employee

import (
	"go-hotel/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	employees := r.Group("/employees")

	read := middleware.RBACAuthorize(rbacService, "employee", "read")
	employees.GET("", middleware.RateLimitByUser(3, 10), read, handler.GetAll)
	employees.GET("/options", middleware.RateLimitByUser(5, 20), read, handler.GetOptions)
	employees.GET("/:id", middleware.RateLimitByUser(3, 10), read, handler.GetById)

	employees.POST("", middleware.RateLimitByUser(0.5, 2),
		middleware.RBACAuthorize(rbacService, "employee", "create"), handler.Create)
	employees.PUT("/:id", middleware.RateLimitByUser(0.5, 2),
		middleware.RBACAuthorize(rbacService, "employee", "update"), handler.Update)
	employees.DELETE("/:id", middleware.RateLimitByUser(0.2, 1),
		middleware.RBACAuthorize(rbacService, "employee", "delete"), handler.Delete)
}
