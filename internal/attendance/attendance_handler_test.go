package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hotel/internal/attendance"
	"go-hotel/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	clockInFn  func(ctx context.Context, companyID, employeeID string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error)
	clockOutFn func(ctx context.Context, companyID, employeeID string, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error)
	getAllFn   func(ctx context.Context, companyID, actorID string, canReadAll bool, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error)
	summaryFn  func(ctx context.Context, companyID, employeeID string, month, year int) (attendance.MonthlySummary, error)
}

func (f *fakeService) ClockIn(ctx context.Context, companyID, employeeID string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	return f.clockInFn(ctx, companyID, employeeID, req)
}
func (f *fakeService) ClockOut(ctx context.Context, companyID, employeeID string, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	return f.clockOutFn(ctx, companyID, employeeID, req)
}
func (f *fakeService) GetAll(ctx context.Context, companyID, actorID string, canReadAll bool, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	return f.getAllFn(ctx, companyID, actorID, canReadAll, filter)
}
func (f *fakeService) Summary(ctx context.Context, companyID, employeeID string, month, year int) (attendance.MonthlySummary, error) {
	return f.summaryFn(ctx, companyID, employeeID, month, year)
}
func (f *fakeService) CountWorkingDays(ctx context.Context, companyID, employeeID string, month, year int) (int, error) {
	s, err := f.summaryFn(ctx, companyID, employeeID, month, year)
	return s.WorkingDays, err
}

type staticRBAC struct {
	allowed map[string]bool
}

func (s staticRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	return s.allowed[req.Resource+":"+req.Action], nil
}

func TestHandler_ClockInAndGetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	var sawReadAll bool
	svc := &fakeService{
		clockInFn: func(ctx context.Context, cid, eid string, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, employeeID, eid)
			return attendance.AttendanceResponse{ID: uuid.New().String(), EmployeeID: eid, CompanyID: cid}, nil
		},
		getAllFn: func(ctx context.Context, cid, actor string, canReadAll bool, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
			sawReadAll = canReadAll
			assert.Equal(t, 3, filter.Month)
			return []attendance.AttendanceResponse{{ID: uuid.New().String()}, {ID: uuid.New().String()}}, nil
		},
	}

	h := attendance.NewHandler(svc, staticRBAC{allowed: map[string]bool{"attendance:read_all": true}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", companyID)
	c.Set("employee_id", employeeID)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendances/clock-in", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.ClockIn(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Set("company_id", companyID)
	c2.Set("employee_id", employeeID)
	c2.Request = httptest.NewRequest(http.MethodGet, "/attendances?page=1&page_size=1&month=3&year=2026", nil)
	h.GetAll(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "\"meta\"")
	assert.True(t, sawReadAll)
}

func TestHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()
	self := uuid.New().String()
	other := uuid.New().String()

	svc := &fakeService{
		summaryFn: func(ctx context.Context, cid, eid string, month, year int) (attendance.MonthlySummary, error) {
			return attendance.MonthlySummary{EmployeeID: eid, Month: month, Year: year, WorkingDays: 20}, nil
		},
	}

	serve := func(rbac staticRBAC, target string) *httptest.ResponseRecorder {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set("company_id", companyID)
			c.Set("employee_id", self)
			c.Next()
		})
		r.GET("/attendances/summary", attendance.NewHandler(svc, rbac).Summary)

		url := "/attendances/summary?month=3&year=2026"
		if target != "" {
			url += "&employee_id=" + target
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		return w
	}

	t.Run("own summary", func(t *testing.T) {
		w := serve(staticRBAC{}, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), self)
		assert.Contains(t, w.Body.String(), `"working_days":20`)
	})

	t.Run("someone else without read_all", func(t *testing.T) {
		w := serve(staticRBAC{}, other)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("someone else with read_all", func(t *testing.T) {
		w := serve(staticRBAC{allowed: map[string]bool{"attendance:read_all": true}}, other)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), other)
	})

	t.Run("missing month", func(t *testing.T) {
		r := gin.New()
		r.GET("/attendances/summary", attendance.NewHandler(svc, staticRBAC{}).Summary)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attendances/summary?year=2026", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
