package response

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// PageParams holds normalized pagination parameters parsed from a request.
type PageParams struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the current page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePageParams parses "page" and "limit" query parameters.
// Page is 1-indexed; limit is clamped to [1, MaxPageSize].
func ParsePageParams(c *gin.Context) PageParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))
	if err != nil || limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return PageParams{Page: page, Limit: limit}
}
