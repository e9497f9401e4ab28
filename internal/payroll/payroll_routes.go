package payroll

import (
	"go-hotel/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.GetAll,
		)
		payrolls.GET("/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.Export,
		)
		payrolls.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.GetById,
		)
		payrolls.GET("/:id/breakdown",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.GetBreakdown,
		)
		payrolls.GET("/:id/payslip",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.DownloadPayslip,
		)
		payrolls.POST("/calculate",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.Calculate,
		)

		createChain := []gin.HandlerFunc{middleware.RateLimitByUser(0.5, 2)}
		if redisClient != nil {
			createChain = append(createChain, middleware.Idempotency(redisClient))
		}
		createChain = append(createChain,
			middleware.RBACAuthorize(rbacService, "payroll", "create"),
			handler.Create,
		)
		payrolls.POST("", createChain...)

		payrolls.POST("/batch",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "payroll", "create"),
			handler.CreateBatch,
		)
		payrolls.POST("/:id/recalculate",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "create"),
			handler.Recalculate,
		)
		payrolls.POST("/:id/process",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "approve"),
			handler.Process,
		)
		payrolls.POST("/:id/mark-paid",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "pay"),
			handler.MarkPaid,
		)
		payrolls.POST("/:id/cancel",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "approve"),
			handler.Cancel,
		)
		payrolls.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "payroll", "delete"),
			handler.Delete,
		)
	}
}
