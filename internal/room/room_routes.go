package room

import (
	"go-hotel/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	rooms := r.Group("/rooms")
	{
		rooms.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "room", "read"),
			handler.GetAll,
		)
		rooms.GET("/summary",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "room", "read"),
			handler.GetStatusSummary,
		)
		rooms.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "room", "read"),
			handler.GetById,
		)
		rooms.GET("/:id/status-history",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "room", "read"),
			handler.GetStatusHistory,
		)
		rooms.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "room", "create"),
			handler.Create,
		)
		rooms.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "room", "update"),
			handler.Update,
		)
		rooms.POST("/:id/status",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "room", "change_status"),
			handler.ChangeStatus,
		)
		rooms.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "room", "delete"),
			handler.Delete,
		)
	}
}
