package photo

import (
	"errors"
	"net/http"

	photoerrors "go-hotel/internal/photo/errors"
	"go-hotel/internal/shared/apperror"
	"go-hotel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("photo.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("photo.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("photo request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Upload accepts a multipart form with a "file" part plus owner fields.
func (h *Handler) Upload(c *gin.Context) {
	var req UploadPhotoRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeServiceError(c, apperror.FromBinding(err))
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			h.writeServiceError(c, photoerrors.ErrFileRequired)
			return
		}
		h.writeServiceError(c, apperror.FromBinding(err))
		return
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Error("open uploaded photo failed", zap.Error(err))
		h.writeServiceError(c, err)
		return
	}
	defer file.Close()

	resp, err := h.service.Upload(
		c.Request.Context(),
		c.GetString("company_id"),
		c.GetString("employee_id"),
		req,
		FileInput{Name: header.Filename, Size: header.Size, Reader: file},
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.writeServiceError(c, apperror.FromBinding(err))
		return
	}

	resp, err := h.service.List(c.Request.Context(), c.GetString("company_id"), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Download(c *gin.Context) {
	rc, photo, err := h.service.Open(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, photo.SizeBytes, photo.ContentType, rc, map[string]string{
		"Content-Disposition": `inline; filename="` + photo.FileName + `"`,
		"Cache-Control":       "private, max-age=3600",
	})
}

func (h *Handler) SetPrimary(c *gin.Context) {
	resp, err := h.service.SetPrimary(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
