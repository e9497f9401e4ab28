package photo

import (
	"go-hotel/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	photos := r.Group("/photos")
	{
		photos.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "photo", "read"),
			handler.List,
		)
		photos.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "photo", "read"),
			handler.GetById,
		)
		photos.GET("/:id/file",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "photo", "read"),
			handler.Download,
		)
		photos.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "photo", "create"),
			handler.Upload,
		)
		photos.PUT("/:id/primary",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "photo", "update"),
			handler.SetPrimary,
		)
		photos.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "photo", "delete"),
			handler.Delete,
		)
	}
}
