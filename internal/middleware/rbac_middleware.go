package middleware

import (
	"net/http"

	"go-hotel/internal/domain"
	"go-hotel/internal/shared/apperror"
	"go-hotel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContextKey string

const (
	ContextEmployeeID ContextKey = "employee_id"
	ContextCompanyID  ContextKey = "company_id"
)

// RBACService is satisfied by anything that can answer an enforce request.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetString(string(ContextEmployeeID))
		companyID := c.GetString(string(ContextCompanyID))

		if employeeID == "" || companyID == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			EmployeeID: employeeID,
			CompanyID:  companyID,
			Resource:   resource,
			Action:     action,
		})
		if err != nil {
			zap.L().Error("rbac enforce failed",
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, apperror.ErrInternal.Message, nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, apperror.ErrForbidden.Message, gin.H{
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// HasPermission reports whether the caller holds resource:action. Handlers use
// it to widen a query (e.g. read everyone's rows) without a separate route.
func HasPermission(c *gin.Context, service RBACService, resource, action string) bool {
	employeeID := c.GetString(string(ContextEmployeeID))
	companyID := c.GetString(string(ContextCompanyID))
	if service == nil || employeeID == "" || companyID == "" {
		return false
	}

	allowed, err := service.Enforce(domain.EnforceRequest{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Resource:   resource,
		Action:     action,
	})
	return err == nil && allowed
}
