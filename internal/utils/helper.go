package utils

import (
	"net/http"
	"strconv"

	"github.com/aurumlabs/gold-commerce-platform/internal/errors"
)

// ParseID reads a positive int64 path value.
func ParseID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, errors.BadRequestError("Missing " + name + " in path")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.BadRequestError("Invalid " + name).WithError(err)
	}

	return id, nil
}

// Pagination reads page/pageSize query parameters with the usual clamping.
func Pagination(r *http.Request) (page, size int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	size, _ = strconv.Atoi(r.URL.Query().Get("pageSize"))
	if size < 1 || size > 100 {
		size = 10
	}

	return page, size
}
