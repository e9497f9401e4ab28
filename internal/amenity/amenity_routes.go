package amenity

import (
	"go-hotel/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	amenities := r.Group("/amenities")
	{
		amenities.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "amenity", "read"),
			handler.GetAll,
		)
		amenities.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "amenity", "read"),
			handler.GetById,
		)
		amenities.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "amenity", "create"),
			handler.Create,
		)
		amenities.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "amenity", "update"),
			handler.Update,
		)
		amenities.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "amenity", "delete"),
			handler.Delete,
		)
	}
}
