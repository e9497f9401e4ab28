package evaluation

import (
	"go-hotel/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	evaluations := r.Group("/evaluations")
	{
		evaluations.GET("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "evaluation", "read"),
			h.GetAll,
		)
		evaluations.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "evaluation", "read"),
			h.GetById,
		)
		evaluations.POST("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "evaluation", "create"),
			h.Create,
		)
		evaluations.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "evaluation", "update"),
			h.Update,
		)
		evaluations.POST("/:id/complete",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "evaluation", "update"),
			h.Complete,
		)
		evaluations.POST("/:id/review",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "evaluation", "review"),
			h.Review,
		)
		evaluations.POST("/:id/approve",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "evaluation", "approve"),
			h.Approve,
		)
		// ownership is checked by the service, any authenticated employee may call it
		evaluations.POST("/:id/acknowledge",
			middleware.RateLimitByUser(0.5, 2),
			h.Acknowledge,
		)
		evaluations.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "evaluation", "delete"),
			h.Delete,
		)
	}
}
