package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/shared/constants"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// Offset returns the number of rows preceding the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ValidatePagination checks a 1-based page and a page size within [1, maxPageSize].
func ValidatePagination(page, pageSize, maxPageSize int) (Pagination, error) {
	if page < 1 {
		return Pagination{}, errors.NewValidationError("page must be greater than or equal to 1")
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return Pagination{}, errors.NewValidationError(
			fmt.Sprintf("page_size must be between 1 and %d", maxPageSize))
	}
	return Pagination{Page: page, PageSize: pageSize}, nil
}

// ParsePaginationWithLimits reads page and page_size from the query string,
// applying defaults for absent values and rejecting malformed or out-of-range ones.
func ParsePaginationWithLimits(c *gin.Context, defaultPageSize, maxPageSize int) (Pagination, error) {
	page, err := parseQueryInt(c, "page", constants.DefaultPage)
	if err != nil {
		return Pagination{}, err
	}
	pageSize, err := parseQueryInt(c, "page_size", defaultPageSize)
	if err != nil {
		return Pagination{}, err
	}
	return ValidatePagination(page, pageSize, maxPageSize)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewValidationError(fmt.Sprintf("%s must be an integer", key))
	}
	return n, nil
}
