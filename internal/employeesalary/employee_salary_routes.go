package employeesalary

import (
	"go-hotel/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Salary rows feed payroll, so writes are throttled harder than reads.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	canRead := middleware.RBACAuthorize(rbacService, "salary", "read")
	canWrite := middleware.RBACAuthorize(rbacService, "salary", "update")
	writeLimit := middleware.RateLimitByUser(0.1, 1)

	salaries := r.Group("/employee-salaries")
	salaries.GET("", middleware.RateLimitByUser(1, 5), canRead, handler.GetAll)
	salaries.GET("/effective", middleware.RateLimitByUser(2, 5), canRead, handler.GetEffective)
	salaries.GET("/:id", middleware.RateLimitByUser(2, 5), canRead, handler.GetById)
	salaries.POST("", writeLimit, canWrite, handler.Create)
	salaries.PUT("/:id", writeLimit, canWrite, handler.Update)
	salaries.DELETE("/:id", middleware.RateLimitByUser(0.05, 1), canWrite, handler.Delete)
}
