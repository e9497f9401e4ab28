package roomtype

import (
	"go-hotel/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	roomTypes := r.Group("/room-types")
	{
		roomTypes.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "room_type", "read"),
			handler.GetAll,
		)
		roomTypes.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "room_type", "read"),
			handler.GetById,
		)
		roomTypes.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "room_type", "create"),
			handler.Create,
		)
		roomTypes.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "room_type", "update"),
			handler.Update,
		)
		roomTypes.PUT("/:id/amenities",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "room_type", "update"),
			handler.SetAmenities,
		)
		roomTypes.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "room_type", "delete"),
			handler.Delete,
		)
	}
}
