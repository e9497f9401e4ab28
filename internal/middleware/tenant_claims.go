package middleware

import (
	"net/http"

	"go-hotel/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActorIDKey holds the employee acting on the request once RequireTenant passed.
const ActorIDKey = "actor_id"

var ErrInvalidClaims = apperror.New("INVALID_CLAIMS", "Token claims do not identify a company employee", http.StatusUnauthorized)

// RequireTenant runs after AuthMiddleware. Repositories compare company_id
// and actor columns as uuid, so malformed claims are rejected here instead
// of failing deep inside a query.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, key := range []string{"company_id", "employee_id"} {
			if _, err := uuid.Parse(c.GetString(key)); err != nil {
				abortWith(c, ErrInvalidClaims.WithDetails(key+" is not a valid id"))
				return
			}
		}

		c.Set(ActorIDKey, c.GetString("employee_id"))
		c.Next()
	}
}
