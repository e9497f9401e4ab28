package attendance

import (
	"net/http"
	"strconv"

	"go-hotel/internal/middleware"
	"go-hotel/internal/shared/apperror"
	"go-hotel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rbac    middleware.RBACService
	logger  *zap.Logger
}

func NewHandler(service Service, rbac middleware.RBACService, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, rbac: rbac, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func actorID(c *gin.Context) string {
	return c.GetString("employee_id")
}

func (h *Handler) ClockIn(c *gin.Context) {
	var req ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.FromBinding(err))
		return
	}

	resp, err := h.service.ClockIn(c.Request.Context(), c.GetString("company_id"), actorID(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ClockOut(c *gin.Context) {
	var req ClockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.FromBinding(err))
		return
	}

	resp, err := h.service.ClockOut(c.Request.Context(), c.GetString("company_id"), actorID(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))
	filter := ListFilter{
		EmployeeID: c.Query("employee_id"),
		Month:      month,
		Year:       year,
	}
	canReadAll := middleware.HasPermission(c, h.rbac, "attendance", "read_all")

	resp, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"), actorID(c), canReadAll, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, pageSize := response.PageParams(c)
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

// Summary answers GET /attendances/summary?month=&year=[&employee_id=].
// Asking about someone else requires attendance:read_all.
func (h *Handler) Summary(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		h.writeServiceError(c, apperror.InvalidField("month"))
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		h.writeServiceError(c, apperror.InvalidField("year"))
		return
	}

	employeeID := actorID(c)
	if target := c.Query("employee_id"); target != "" && target != employeeID {
		if !middleware.HasPermission(c, h.rbac, "attendance", "read_all") {
			h.writeServiceError(c, apperror.ErrForbidden)
			return
		}
		employeeID = target
	}

	resp, err := h.service.Summary(c.Request.Context(), c.GetString("company_id"), employeeID, month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
