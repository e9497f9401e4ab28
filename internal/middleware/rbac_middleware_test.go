package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hotel/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRBAC struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func newRBACRouter(svc RBACService, withIdentity bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/rooms", func(c *gin.Context) {
		if withIdentity {
			c.Set("employee_id", "emp-1")
			c.Set("company_id", "company-1")
		}
		c.Next()
	}, RBACAuthorize(svc, "room", "read"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRBACAuthorize(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		svc := &fakeRBAC{allowed: true}
		w := httptest.NewRecorder()
		newRBACRouter(svc, true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.EnforceRequest{
			EmployeeID: "emp-1",
			CompanyID:  "company-1",
			Resource:   "room",
			Action:     "read",
		}, svc.got)
	})

	t.Run("forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRBACRouter(&fakeRBAC{}, true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "room:read")
	})

	t.Run("missing identity", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRBACRouter(&fakeRBAC{allowed: true}, false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("enforcer failure", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRBACRouter(&fakeRBAC{err: errors.New("db down")}, true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db down")
	})
}
