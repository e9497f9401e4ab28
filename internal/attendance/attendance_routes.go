package attendance

import (
	"go-hotel/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	attendances := r.Group("/attendances")
	{
		attendances.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			h.GetAll,
		)
		attendances.GET("/summary",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			h.Summary,
		)
		attendances.POST("/clock-in",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
			h.ClockIn,
		)
		attendances.POST("/clock-out",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
			h.ClockOut,
		)
	}
}
