package response

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ApiEnvelope is the body of every JSON response.
type ApiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  any             `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error *ErrorBody      `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

type PaginationMeta struct {
	Total      int64 `json:"total,omitempty"`
	TotalPages int   `json:"totalPages,omitempty"`
	Page       int   `json:"page,omitempty"`
	PageSize   int   `json:"pageSize,omitempty"`
}

func Success(c *gin.Context, status int, data any, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{Ok: true, Data: data, Meta: meta})
}

func Error(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Error: &ErrorBody{Code: code, Message: message, Details: details},
	})
}

// PageParams reads page and page_size from the query string. Bad values fall
// back to page 1 of 10; page_size is capped at 100.
func PageParams(c *gin.Context) (page, pageSize int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err = strconv.Atoi(c.Query("page_size"))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	return page, min(pageSize, maxPageSize)
}

// Paginate returns one page of an in-memory result set with its meta.
func Paginate[T any](items []T, page, pageSize int) ([]T, PaginationMeta) {
	start := min((page-1)*pageSize, len(items))
	end := min(start+pageSize, len(items))

	meta := PaginationMeta{Total: int64(len(items)), Page: page, PageSize: pageSize}
	if pageSize > 0 {
		meta.TotalPages = (len(items) + pageSize - 1) / pageSize
	}
	return items[start:end], meta
}
